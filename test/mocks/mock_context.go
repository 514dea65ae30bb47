package mocks

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/azure-samples/azure-ai-content-understanding-go/test/mocks/mockhttp"
)

type MockContext struct {
	Context           *context.Context
	HttpClient        *mockhttp.MockHttpClient
	Credentials       *MockCredentials
	CoreClientOptions *azcore.ClientOptions
	ArmClientOptions  *arm.ClientOptions
}

func NewMockContext(ctx context.Context) *MockContext {
	httpClient := mockhttp.NewMockHttpClient()

	// Client options are assembled by hand rather than through
	// azsdk.ClientOptionsBuilder to keep this package import-cycle free.
	coreOptions := &azcore.ClientOptions{
		Transport: httpClient,
		Retry: policy.RetryOptions{
			// Fail fast in tests instead of retrying transient-looking mocks
			MaxRetries: -1,
		},
	}

	armOptions := &arm.ClientOptions{
		ClientOptions: *coreOptions,
	}

	return &MockContext{
		Context:           &ctx,
		HttpClient:        httpClient,
		Credentials:       &MockCredentials{},
		CoreClientOptions: coreOptions,
		ArmClientOptions:  armOptions,
	}
}
