package contentunderstanding

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

type EntityItemRequestBuilder[T any] struct {
	builder *T
	client  *contentUnderstandingClient
	id      string
}

// Creates a new EntityItemRequestBuilder
// builder - The parent entity builder
// id - The identifier of the entity
func newEntityItemRequestBuilder[T any](
	builder *T,
	client *contentUnderstandingClient,
	id string,
) *EntityItemRequestBuilder[T] {
	return &EntityItemRequestBuilder[T]{
		builder: builder,
		client:  client,
		id:      id,
	}
}

// Creates a HTTP request for the specified method and relative path
func (b *EntityItemRequestBuilder[T]) createRequest(
	ctx context.Context,
	method string,
	path string,
) (*policy.Request, error) {
	return b.client.createRequest(ctx, method, path)
}

// ID returns the entity identifier this builder addresses.
func (b *EntityItemRequestBuilder[T]) ID() string {
	return b.id
}
