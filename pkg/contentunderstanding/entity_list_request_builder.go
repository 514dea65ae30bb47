package contentunderstanding

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

type EntityListRequestBuilder[T any] struct {
	builder *T
	client  *contentUnderstandingClient
}

// Creates a new EntityListRequestBuilder that provides common functionality for list operations
func newEntityListRequestBuilder[T any](
	builder *T,
	client *contentUnderstandingClient,
) *EntityListRequestBuilder[T] {
	return &EntityListRequestBuilder[T]{
		builder: builder,
		client:  client,
	}
}

// Creates a HTTP request for the specified method and relative path
func (b *EntityListRequestBuilder[T]) createRequest(
	ctx context.Context,
	method string,
	path string,
) (*policy.Request, error) {
	return b.client.createRequest(ctx, method, path)
}
