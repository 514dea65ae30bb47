package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/azure-samples/azure-ai-content-understanding-go/test/mocks"
	"github.com/stretchr/testify/require"
)

func Test_BlobClient_ContainerUrl(t *testing.T) {
	t.Run("DefaultEndpoint", func(t *testing.T) {
		client := NewBlobClient(AccountConfig{
			AccountName:   "trainingdata",
			ContainerName: "receipts",
		}, &mocks.MockCredentials{}, nil)

		require.Equal(t, "https://trainingdata.blob.core.windows.net/receipts", client.ContainerUrl())
	})

	t.Run("CustomEndpoint", func(t *testing.T) {
		client := NewBlobClient(AccountConfig{
			AccountName:   "trainingdata",
			ContainerName: "receipts",
			Endpoint:      "blob.core.usgovcloudapi.net",
		}, &mocks.MockCredentials{}, nil)

		require.Equal(t, "https://trainingdata.blob.core.usgovcloudapi.net/receipts", client.ContainerUrl())
	})
}

func Test_BlobClient_Items(t *testing.T) {
	listBlobsResponse := `<?xml version="1.0" encoding="utf-8"?>
<EnumerationResults ServiceEndpoint="https://trainingdata.blob.core.windows.net/" ContainerName="receipts">
  <Blobs>
    <Blob>
      <Name>labeled/receipt-1.pdf</Name>
      <Properties>
        <Creation-Time>Wed, 01 Jan 2025 10:00:00 GMT</Creation-Time>
        <Last-Modified>Thu, 02 Jan 2025 11:30:00 GMT</Last-Modified>
        <Etag>0x8DCEF1</Etag>
      </Properties>
    </Blob>
    <Blob>
      <Name>labeled/receipt-1.pdf.labels.json</Name>
      <Properties>
        <Creation-Time>Wed, 01 Jan 2025 10:00:05 GMT</Creation-Time>
        <Last-Modified>Thu, 02 Jan 2025 11:30:05 GMT</Last-Modified>
        <Etag>0x8DCEF2</Etag>
      </Properties>
    </Blob>
  </Blobs>
  <NextMarker />
</EnumerationResults>`

	mockContext := mocks.NewMockContext(context.Background())
	mockContext.HttpClient.When(func(request *http.Request) bool {
		return request.Method == http.MethodGet &&
			strings.Contains(request.URL.RawQuery, "comp=list") &&
			strings.Contains(request.URL.Path, "receipts")
	}).RespondFn(func(request *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"application/xml"}},
			Body:       io.NopCloser(bytes.NewBufferString(listBlobsResponse)),
		}, nil
	})

	client := NewBlobClient(AccountConfig{
		AccountName:   "trainingdata",
		ContainerName: "receipts",
	}, mockContext.Credentials, &azblob.ClientOptions{
		ClientOptions: *mockContext.CoreClientOptions,
	})

	blobs, err := client.Items(*mockContext.Context)
	require.NoError(t, err)
	require.Len(t, blobs, 2)
	require.Equal(t, "receipt-1.pdf", blobs[0].Name)
	require.Equal(t, "labeled/receipt-1.pdf", blobs[0].Path)
	require.Equal(t, "receipt-1.pdf.labels.json", blobs[1].Name)
}
