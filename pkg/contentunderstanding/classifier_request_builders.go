// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package contentunderstanding

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/azure-samples/azure-ai-content-understanding-go/pkg/httputil"
)

// Classifiers
type ClassifierListRequestBuilder struct {
	*EntityListRequestBuilder[ClassifierListRequestBuilder]
}

func newClassifierListRequestBuilder(client *contentUnderstandingClient) *ClassifierListRequestBuilder {
	builder := &ClassifierListRequestBuilder{}
	builder.EntityListRequestBuilder = newEntityListRequestBuilder(builder, client)

	return builder
}

// Gets the list of classifiers on the resource.
func (c *ClassifierListRequestBuilder) Get(ctx context.Context) (*ClassifierListResponse, error) {
	req, err := c.createRequest(ctx, http.MethodGet, "contentunderstanding/classifiers")
	if err != nil {
		return nil, fmt.Errorf("failed creating request: %w", err)
	}

	res, err := c.client.pipeline.Do(req)
	if err != nil {
		return nil, err
	}

	if !runtime.HasStatusCode(res, http.StatusOK) {
		return nil, runtime.NewResponseError(res)
	}

	return httputil.ReadRawResponse[ClassifierListResponse](res)
}

type ClassifierItemRequestBuilder struct {
	*EntityItemRequestBuilder[ClassifierItemRequestBuilder]
}

func newClassifierItemRequestBuilder(client *contentUnderstandingClient, classifierID string) *ClassifierItemRequestBuilder {
	builder := &ClassifierItemRequestBuilder{}
	builder.EntityItemRequestBuilder = newEntityItemRequestBuilder(builder, client, classifierID)

	return builder
}

// Gets the classifier with the specified identifier
func (c *ClassifierItemRequestBuilder) Get(ctx context.Context) (*Classifier, error) {
	req, err := c.createRequest(ctx, http.MethodGet, fmt.Sprintf("contentunderstanding/classifiers/%s", c.id))
	if err != nil {
		return nil, fmt.Errorf("failed creating request: %w", err)
	}

	res, err := c.client.pipeline.Do(req)
	if err != nil {
		return nil, err
	}

	if !runtime.HasStatusCode(res, http.StatusOK) {
		return nil, runtime.NewResponseError(res)
	}

	return httputil.ReadRawResponse[Classifier](res)
}

// Begins creating or replacing the classifier from the specified definition
// and returns a poller to check for completion
func (c *ClassifierItemRequestBuilder) BeginCreateOrReplace(
	ctx context.Context,
	classifier *Classifier,
) (*runtime.Poller[*Classifier], error) {
	req, err := c.createRequest(ctx, http.MethodPut, fmt.Sprintf("contentunderstanding/classifiers/%s", c.id))
	if err != nil {
		return nil, fmt.Errorf("failed creating request: %w", err)
	}

	if err := SetHttpRequestBody(req, classifier); err != nil {
		return nil, err
	}

	res, err := c.client.pipeline.Do(req)
	if err != nil {
		return nil, err
	}

	defer res.Body.Close()

	if !runtime.HasStatusCode(res, http.StatusCreated, http.StatusOK) {
		return nil, runtime.NewResponseError(res)
	}

	return newOperationPoller[Classifier](c.client.pipeline, res)
}

// Creates or replaces the classifier and waits for the operation to complete
func (c *ClassifierItemRequestBuilder) CreateOrReplace(ctx context.Context, classifier *Classifier) (*Classifier, error) {
	poller, err := c.BeginCreateOrReplace(ctx, classifier)
	if err != nil {
		return nil, err
	}

	result, err := poller.PollUntilDone(ctx, &runtime.PollUntilDoneOptions{
		Frequency: defaultPollingFrequency,
	})
	if err != nil {
		return nil, err
	}

	if result == nil {
		return c.Get(ctx)
	}

	return result, nil
}

// Deletes the classifier with the specified identifier
func (c *ClassifierItemRequestBuilder) Delete(ctx context.Context) error {
	req, err := c.createRequest(ctx, http.MethodDelete, fmt.Sprintf("contentunderstanding/classifiers/%s", c.id))
	if err != nil {
		return fmt.Errorf("failed creating request: %w", err)
	}

	res, err := c.client.pipeline.Do(req)
	if err != nil {
		return err
	}

	if !runtime.HasStatusCode(res, http.StatusNoContent) {
		return runtime.NewResponseError(res)
	}

	return nil
}

// Begins classifying the specified input and returns a poller to check for
// the result
func (c *ClassifierItemRequestBuilder) BeginClassify(
	ctx context.Context,
	input AnalyzeInput,
) (*runtime.Poller[*ClassifyResult], error) {
	req, err := c.createRequest(ctx, http.MethodPost, fmt.Sprintf("contentunderstanding/classifiers/%s:classify", c.id))
	if err != nil {
		return nil, fmt.Errorf("failed creating request: %w", err)
	}

	if err := setAnalyzeInputBody(req, input); err != nil {
		return nil, err
	}

	res, err := c.client.pipeline.Do(req)
	if err != nil {
		return nil, err
	}

	defer res.Body.Close()

	if !runtime.HasStatusCode(res, http.StatusAccepted) {
		return nil, runtime.NewResponseError(res)
	}

	return newOperationPoller[ClassifyResult](c.client.pipeline, res)
}

// Classifies the specified input and waits for the result
func (c *ClassifierItemRequestBuilder) Classify(ctx context.Context, input AnalyzeInput) (*ClassifyResult, error) {
	poller, err := c.BeginClassify(ctx, input)
	if err != nil {
		return nil, err
	}

	result, err := poller.PollUntilDone(ctx, &runtime.PollUntilDoneOptions{
		Frequency: defaultPollingFrequency,
	})
	if err != nil {
		return nil, err
	}

	if result == nil {
		return nil, errors.New("classify operation succeeded but reported no result")
	}

	return result, nil
}
