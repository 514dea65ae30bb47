// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package contentunderstanding_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/azure-samples/azure-ai-content-understanding-go/pkg/contentunderstanding"
	"github.com/azure-samples/azure-ai-content-understanding-go/test/mocks"
	"github.com/azure-samples/azure-ai-content-understanding-go/test/mocks/mockhttp"
	"github.com/stretchr/testify/require"
)

func Test_Classifier_List(t *testing.T) {
	expected := contentunderstanding.ClassifierListResponse{
		Value: []*contentunderstanding.Classifier{
			{
				ClassifierID: "my-loan-classifier",
				Description:  "Splits loan application packets.",
			},
		},
	}

	mockContext := mocks.NewMockContext(context.Background())
	registerGetListMock(mockContext, "contentunderstanding/classifiers", &expected)
	client := createTestClient(t, mockContext)

	response, err := client.Classifiers().Get(*mockContext.Context)
	require.NoError(t, err)
	require.NotNil(t, response)
	require.Len(t, response.Value, 1)
	require.Equal(t, "my-loan-classifier", response.Value[0].ClassifierID)
}

func Test_Classifier_Get(t *testing.T) {
	expected := contentunderstanding.Classifier{
		ClassifierID: "my-loan-classifier",
		SplitMode:    "auto",
		Categories: map[string]*contentunderstanding.ClassifierCategory{
			"Loan application": {Description: "Main applicant form."},
			"Pay stub":         {AnalyzerID: "my-paystub-analyzer"},
		},
	}

	mockContext := mocks.NewMockContext(context.Background())
	mockContext.HttpClient.When(isRequestFor(http.MethodGet, "/contentunderstanding/classifiers/my-loan-classifier")).
		RespondFn(func(request *http.Request) (*http.Response, error) {
			return mockhttp.CreateHttpResponseWithBody(http.StatusOK, expected)
		})
	client := createTestClient(t, mockContext)

	classifier, err := client.ClassifierByID("my-loan-classifier").Get(*mockContext.Context)
	require.NoError(t, err)
	require.NotNil(t, classifier)
	require.Equal(t, "auto", classifier.SplitMode)
	require.Len(t, classifier.Categories, 2)
}

func Test_Classifier_CreateOrReplace(t *testing.T) {
	classifier := &contentunderstanding.Classifier{
		ClassifierID: "my-loan-classifier",
		Categories: map[string]*contentunderstanding.ClassifierCategory{
			"Loan application": {},
		},
	}

	mockContext := mocks.NewMockContext(context.Background())
	registerOperationLocationMock(
		mockContext,
		isRequestFor(http.MethodPut, "/contentunderstanding/classifiers/my-loan-classifier"),
		http.StatusCreated,
		"classifiers/my-loan-classifier/operations/op-1",
	)
	mockContext.HttpClient.When(isRequestFor(http.MethodGet, "/operations/op-1")).
		RespondFn(func(request *http.Request) (*http.Response, error) {
			return mockhttp.CreateHttpResponseWithBody(http.StatusOK, contentunderstanding.Operation[contentunderstanding.Classifier]{
				ID:     "op-1",
				Status: contentunderstanding.OperationStateSucceeded,
				Result: classifier,
			})
		})
	client := createTestClient(t, mockContext)

	result, err := client.ClassifierByID("my-loan-classifier").CreateOrReplace(*mockContext.Context, classifier)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, "my-loan-classifier", result.ClassifierID)
}

func Test_Classifier_Delete(t *testing.T) {
	mockContext := mocks.NewMockContext(context.Background())
	mockContext.HttpClient.When(isRequestFor(http.MethodDelete, "/contentunderstanding/classifiers/my-loan-classifier")).
		RespondFn(func(request *http.Request) (*http.Response, error) {
			return mockhttp.CreateEmptyHttpResponse(http.StatusNoContent)
		})
	client := createTestClient(t, mockContext)

	err := client.ClassifierByID("my-loan-classifier").Delete(*mockContext.Context)
	require.NoError(t, err)
}

func Test_Classifier_Classify(t *testing.T) {
	t.Run("Succeeded", func(t *testing.T) {
		mockContext := mocks.NewMockContext(context.Background())
		registerOperationLocationMock(
			mockContext,
			isRequestFor(http.MethodPost, "/contentunderstanding/classifiers/my-loan-classifier:classify"),
			http.StatusAccepted,
			"classifierResults/result-1",
		)
		mockContext.HttpClient.When(isRequestFor(http.MethodGet, "/classifierResults/result-1")).
			RespondFn(func(request *http.Request) (*http.Response, error) {
				return mockhttp.CreateHttpResponseWithBody(http.StatusOK, contentunderstanding.Operation[contentunderstanding.ClassifyResult]{
					ID:     "result-1",
					Status: contentunderstanding.OperationStateSucceeded,
					Result: &contentunderstanding.ClassifyResult{
						ClassifierID: "my-loan-classifier",
						Contents: []*contentunderstanding.MediaContent{
							{Category: "Loan application", StartPageNumber: 1, EndPageNumber: 3},
							{Category: "Pay stub", StartPageNumber: 4, EndPageNumber: 4},
						},
					},
				})
			})
		client := createTestClient(t, mockContext)

		result, err := client.ClassifierByID("my-loan-classifier").Classify(*mockContext.Context, contentunderstanding.AnalyzeInput{
			URL: "https://example.com/packet.pdf",
		})
		require.NoError(t, err)
		require.NotNil(t, result)
		require.Len(t, result.Contents, 2)
		require.Equal(t, "Loan application", result.Contents[0].Category)
	})

	t.Run("Failed", func(t *testing.T) {
		mockContext := mocks.NewMockContext(context.Background())
		registerOperationLocationMock(
			mockContext,
			isRequestFor(http.MethodPost, "/contentunderstanding/classifiers/my-loan-classifier:classify"),
			http.StatusAccepted,
			"classifierResults/result-2",
		)
		mockContext.HttpClient.When(isRequestFor(http.MethodGet, "/classifierResults/result-2")).
			RespondFn(func(request *http.Request) (*http.Response, error) {
				return mockhttp.CreateHttpResponseWithBody(http.StatusOK, contentunderstanding.Operation[contentunderstanding.ClassifyResult]{
					ID:     "result-2",
					Status: "failed",
					Error: &contentunderstanding.ErrorDetail{
						Code:    "InternalServerError",
						Message: "An unexpected error occurred.",
					},
				})
			})
		client := createTestClient(t, mockContext)

		result, err := client.ClassifierByID("my-loan-classifier").Classify(*mockContext.Context, contentunderstanding.AnalyzeInput{
			URL: "https://example.com/packet.pdf",
		})
		require.Error(t, err)
		require.Nil(t, result)

		var operationErr *contentunderstanding.OperationError
		require.True(t, errors.As(err, &operationErr))
		require.Equal(t, "InternalServerError", operationErr.Code)
	})
}
