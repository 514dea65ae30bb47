// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package contentunderstanding

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/azure-samples/azure-ai-content-understanding-go/pkg/httputil"
)

const operationLocationHeader = "Operation-Location"

// OperationState is the status reported by a long-running operation.
// The service has emitted both `Succeeded` and `succeeded` across
// api-versions, so states compare case-insensitively.
type OperationState string

const (
	OperationStateNotStarted OperationState = "NotStarted"
	OperationStateRunning    OperationState = "Running"
	OperationStateSucceeded  OperationState = "Succeeded"
	OperationStateFailed     OperationState = "Failed"
)

func (s OperationState) Is(other OperationState) bool {
	return strings.EqualFold(string(s), string(other))
}

// Operation is the status document served at an Operation-Location URL.
// On success the operation result is embedded in the document.
type Operation[T any] struct {
	ID     string         `json:"id,omitempty"`
	Status OperationState `json:"status"`
	Error  *ErrorDetail   `json:"error,omitempty"`
	Result *T             `json:"result,omitempty"`
}

// operationIDSetter is implemented by result payloads that record the id of
// the operation that produced them.
type operationIDSetter interface {
	setOperationID(id string)
}

// OperationError is returned when a long-running operation reports a
// Failed terminal status.
type OperationError struct {
	OperationID string
	Code        string
	Message     string
}

func (e *OperationError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("operation %s failed: %s: %s", e.OperationID, e.Code, e.Message)
	}

	return fmt.Sprintf("operation %s failed: %s", e.OperationID, e.Message)
}

// Implementation of a Go SDK polling handler for Content Understanding
// long-running operations. The begin call returns 201/202 with an
// Operation-Location header; the handler polls that location until the
// status is terminal.
type operationPollingHandler[T any] struct {
	pipeline runtime.Pipeline
	location string
	result   *T
	done     bool
}

func newOperationPollingHandler[T any](
	pipeline runtime.Pipeline,
	response *http.Response,
) (*operationPollingHandler[T], error) {
	location := response.Header.Get(operationLocationHeader)
	if strings.TrimSpace(location) == "" {
		return nil, fmt.Errorf("missing %s polling header", operationLocationHeader)
	}

	return &operationPollingHandler[T]{
		pipeline: pipeline,
		location: location,
	}, nil
}

// Checks whether the long running operation reached a terminal status
func (h *operationPollingHandler[T]) Done() bool {
	return h.done
}

// Executes the polling logic to check the status of the operation
func (h *operationPollingHandler[T]) Poll(ctx context.Context) (*http.Response, error) {
	req, err := runtime.NewRequest(ctx, http.MethodGet, h.location)
	if err != nil {
		return nil, err
	}

	response, err := h.pipeline.Do(req)
	if err != nil {
		return nil, err
	}

	if !runtime.HasStatusCode(response, http.StatusOK, http.StatusAccepted) {
		return nil, runtime.NewResponseError(response)
	}

	operation, err := httputil.ReadRawResponse[Operation[T]](response)
	if err != nil {
		return nil, err
	}

	switch {
	case operation.Status.Is(OperationStateSucceeded):
		h.done = true
		h.result = operation.Result

		// Result files are fetched by the operation id, so results that
		// support file retrieval capture it here.
		if setter, ok := any(h.result).(operationIDSetter); ok && h.result != nil {
			setter.setOperationID(operation.ID)
		}
	case operation.Status.Is(OperationStateFailed):
		operationError := &OperationError{
			OperationID: operation.ID,
			Message:     "no error detail reported",
		}
		if operation.Error != nil {
			operationError.Code = operation.Error.Code
			operationError.Message = operation.Error.Message
		}

		return nil, operationError
	}

	// NotStarted and Running keep polling

	return response, nil
}

// Gets the result of the completed operation
func (h *operationPollingHandler[T]) Result(ctx context.Context, out **T) error {
	*out = h.result

	return nil
}

// newOperationPoller wires the polling handler into an azcore poller for the
// specified begin response.
func newOperationPoller[T any](
	pipeline runtime.Pipeline,
	response *http.Response,
) (*runtime.Poller[*T], error) {
	handler, err := newOperationPollingHandler[T](pipeline, response)
	if err != nil {
		return nil, err
	}

	var finalResponse *T

	return runtime.NewPoller(response, pipeline, &runtime.NewPollerOptions[*T]{
		Response: &finalResponse,
		Handler:  handler,
	})
}
