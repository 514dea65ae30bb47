package contentunderstanding

import (
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/azure-samples/azure-ai-content-understanding-go/pkg/convert"
)

const (
	apiVersionName    = "api-version"
	defaultApiVersion = "2025-05-01-preview"
)

type apiVersionPolicy struct {
	apiVersion string
}

// Policy to ensure the service api-version is set on all HTTP requests.
func NewApiVersionPolicy(apiVersion *string) policy.Policy {
	if apiVersion == nil {
		apiVersion = convert.RefOf(defaultApiVersion)
	}

	return &apiVersionPolicy{
		apiVersion: *apiVersion,
	}
}

// Sets the api-version query parameter on the underlying request
func (p *apiVersionPolicy) Do(req *policy.Request) (*http.Response, error) {
	rawRequest := req.Raw()
	queryString := rawRequest.URL.Query()
	queryString.Set(apiVersionName, p.apiVersion)
	rawRequest.URL.RawQuery = queryString.Encode()

	return req.Next()
}
