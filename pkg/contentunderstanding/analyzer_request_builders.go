// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package contentunderstanding

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/streaming"
	"github.com/azure-samples/azure-ai-content-understanding-go/pkg/httputil"
)

// Analyzers
type AnalyzerListRequestBuilder struct {
	*EntityListRequestBuilder[AnalyzerListRequestBuilder]
}

func newAnalyzerListRequestBuilder(client *contentUnderstandingClient) *AnalyzerListRequestBuilder {
	builder := &AnalyzerListRequestBuilder{}
	builder.EntityListRequestBuilder = newEntityListRequestBuilder(builder, client)

	return builder
}

// Gets the list of analyzers on the resource, prebuilt and custom.
func (c *AnalyzerListRequestBuilder) Get(ctx context.Context) (*AnalyzerListResponse, error) {
	req, err := c.createRequest(ctx, http.MethodGet, "contentunderstanding/analyzers")
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

	return httputil.ReadRawResponse[AnalyzerListResponse](res)
}

type AnalyzerItemRequestBuilder struct {
	*EntityItemRequestBuilder[AnalyzerItemRequestBuilder]
}

func newAnalyzerItemRequestBuilder(client *contentUnderstandingClient, analyzerID string) *AnalyzerItemRequestBuilder {
	builder := &AnalyzerItemRequestBuilder{}
	builder.EntityItemRequestBuilder = newEntityItemRequestBuilder(builder, client, analyzerID)

	return builder
}

// Gets the analyzer with the specified identifier
func (c *AnalyzerItemRequestBuilder) Get(ctx context.Context) (*Analyzer, error) {
	req, err := c.createRequest(ctx, http.MethodGet, fmt.Sprintf("contentunderstanding/analyzers/%s", c.id))
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

	return httputil.ReadRawResponse[Analyzer](res)
}

// Begins creating or replacing the analyzer from the specified definition and
// returns a poller to check for completion
func (c *AnalyzerItemRequestBuilder) BeginCreateOrReplace(
	ctx context.Context,
	analyzer *Analyzer,
) (*runtime.Poller[*Analyzer], error) {
	req, err := c.createRequest(ctx, http.MethodPut, fmt.Sprintf("contentunderstanding/analyzers/%s", c.id))
	if err != nil {
		return nil, fmt.Errorf("failed creating request: %w", err)
	}

	if err := SetHttpRequestBody(req, analyzer); err != nil {
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

	return newOperationPoller[Analyzer](c.client.pipeline, res)
}

// Creates or replaces the analyzer and waits for the operation to complete
func (c *AnalyzerItemRequestBuilder) CreateOrReplace(ctx context.Context, analyzer *Analyzer) (*Analyzer, error) {
	poller, err := c.BeginCreateOrReplace(ctx, analyzer)
	if err != nil {
		return nil, err
	}

	result, err := poller.PollUntilDone(ctx, &runtime.PollUntilDoneOptions{
		Frequency: defaultPollingFrequency,
	})
	if err != nil {
		return nil, err
	}

	// Some api-versions report success without embedding the analyzer
	if result == nil {
		return c.Get(ctx)
	}

	return result, nil
}

// Deletes the analyzer with the specified identifier
func (c *AnalyzerItemRequestBuilder) Delete(ctx context.Context) error {
	req, err := c.createRequest(ctx, http.MethodDelete, fmt.Sprintf("contentunderstanding/analyzers/%s", c.id))
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

// Begins analyzing the specified input with this analyzer and returns a
// poller to check for the result
func (c *AnalyzerItemRequestBuilder) BeginAnalyze(
	ctx context.Context,
	input AnalyzeInput,
) (*runtime.Poller[*AnalyzeResult], error) {
	req, err := c.createRequest(ctx, http.MethodPost, fmt.Sprintf("contentunderstanding/analyzers/%s:analyze", c.id))
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

	return newOperationPoller[AnalyzeResult](c.client.pipeline, res)
}

// Analyzes the specified input and waits for the result
func (c *AnalyzerItemRequestBuilder) Analyze(ctx context.Context, input AnalyzeInput) (*AnalyzeResult, error) {
	poller, err := c.BeginAnalyze(ctx, input)
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
		return nil, errors.New("analyze operation succeeded but reported no result")
	}

	return result, nil
}

// GetResultFile downloads a file produced by a prior analyze operation, such
// as a video keyframe image.
func (c *AnalyzerItemRequestBuilder) GetResultFile(ctx context.Context, resultID string, filePath string) ([]byte, error) {
	req, err := c.createRequest(
		ctx,
		http.MethodGet,
		fmt.Sprintf("contentunderstanding/analyzers/%s/results/%s/files/%s", c.id, resultID, filePath),
	)
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

	return runtime.Payload(res)
}

type analyzeUrlRequest struct {
	Url string `json:"url"`
}

func setAnalyzeInputBody(req *policy.Request, input AnalyzeInput) error {
	if input.URL != "" && input.Data != nil {
		return errors.New("analyze input must set either URL or Data, not both")
	}

	if input.URL != "" {
		return SetHttpRequestBody(req, analyzeUrlRequest{Url: input.URL})
	}

	if len(input.Data) == 0 {
		return errors.New("analyze input requires a URL or content bytes")
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	body := streaming.NopCloser(bytes.NewReader(input.Data))

	return req.SetBody(body, contentType)
}
