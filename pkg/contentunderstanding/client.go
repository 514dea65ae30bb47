// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package contentunderstanding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// ContentUnderstandingClient is a thin data-plane client for the Content
// Understanding REST API. Operations map 1:1 to REST endpoints and are
// exposed through request builders.
type ContentUnderstandingClient interface {
	Analyzers() *AnalyzerListRequestBuilder
	AnalyzerByID(analyzerID string) *AnalyzerItemRequestBuilder
	Classifiers() *ClassifierListRequestBuilder
	ClassifierByID(classifierID string) *ClassifierItemRequestBuilder
}

type contentUnderstandingClient struct {
	endpoint string
	pipeline runtime.Pipeline
}

// ClientOptions configures optional behavior of the client.
type ClientOptions struct {
	// ApiVersion overrides the default service api-version.
	ApiVersion *string

	// ClientOptions configures the underlying azcore pipeline (transport,
	// retries, extra policies).
	ClientOptions *azcore.ClientOptions
}

// NewContentUnderstandingClient creates a client that authenticates with an
// AAD token credential.
func NewContentUnderstandingClient(
	endpoint string,
	credential azcore.TokenCredential,
	options *ClientOptions,
) (ContentUnderstandingClient, error) {
	endpoint, coreOptions, err := prepareOptions(endpoint, options)
	if err != nil {
		return nil, err
	}

	return &contentUnderstandingClient{
		endpoint: endpoint,
		pipeline: NewPipeline(credential, ServiceConfig, coreOptions),
	}, nil
}

// NewContentUnderstandingClientWithKey creates a client that authenticates
// with a resource api key.
func NewContentUnderstandingClientWithKey(
	endpoint string,
	key string,
	options *ClientOptions,
) (ContentUnderstandingClient, error) {
	if key == "" {
		return nil, errors.New("api key is required")
	}

	endpoint, coreOptions, err := prepareOptions(endpoint, options)
	if err != nil {
		return nil, err
	}

	return &contentUnderstandingClient{
		endpoint: endpoint,
		pipeline: NewKeyPipeline(key, coreOptions),
	}, nil
}

func prepareOptions(endpoint string, options *ClientOptions) (string, *azcore.ClientOptions, error) {
	if strings.TrimSpace(endpoint) == "" {
		return "", nil, errors.New("endpoint is required")
	}

	if options == nil {
		options = &ClientOptions{}
	}

	coreOptions := options.ClientOptions
	if coreOptions == nil {
		coreOptions = &azcore.ClientOptions{}
	}

	coreOptions.PerCallPolicies = append(coreOptions.PerCallPolicies, NewApiVersionPolicy(options.ApiVersion))

	return strings.TrimSuffix(endpoint, "/"), coreOptions, nil
}

func (c *contentUnderstandingClient) Analyzers() *AnalyzerListRequestBuilder {
	return newAnalyzerListRequestBuilder(c)
}

func (c *contentUnderstandingClient) AnalyzerByID(analyzerID string) *AnalyzerItemRequestBuilder {
	return newAnalyzerItemRequestBuilder(c, analyzerID)
}

func (c *contentUnderstandingClient) Classifiers() *ClassifierListRequestBuilder {
	return newClassifierListRequestBuilder(c)
}

func (c *contentUnderstandingClient) ClassifierByID(classifierID string) *ClassifierItemRequestBuilder {
	return newClassifierItemRequestBuilder(c, classifierID)
}

func (c *contentUnderstandingClient) createRequest(
	ctx context.Context,
	httpMethod string,
	path string,
) (*policy.Request, error) {
	req, err := runtime.NewRequest(ctx, httpMethod, fmt.Sprintf("%s/%s", c.endpoint, path))
	if err != nil {
		return nil, fmt.Errorf("failed creating request: %w", err)
	}

	return req, nil
}
