package contentunderstanding

import (
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

const apiKeyHeader = "Ocp-Apim-Subscription-Key"

type keyCredentialPolicy struct {
	key string
}

// Policy that authenticates requests with a resource api key instead of an
// AAD bearer token.
func NewKeyCredentialPolicy(key string) policy.Policy {
	return &keyCredentialPolicy{
		key: key,
	}
}

func (p *keyCredentialPolicy) Do(req *policy.Request) (*http.Response, error) {
	req.Raw().Header.Set(apiKeyHeader, p.key)

	return req.Next()
}
