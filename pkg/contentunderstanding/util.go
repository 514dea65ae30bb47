package contentunderstanding

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/azure-samples/azure-ai-content-understanding-go/pkg/convert"
)

// SetHttpRequestBody marshals the specified value as the JSON body of the request.
func SetHttpRequestBody(req *policy.Request, value any) error {
	body, err := convert.ToHttpRequestBody(value)
	if err != nil {
		return err
	}

	return req.SetBody(body, "application/json")
}
