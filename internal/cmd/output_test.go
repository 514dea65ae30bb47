// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ReadAnalyzeInput(t *testing.T) {
	t.Run("Url", func(t *testing.T) {
		input, err := readAnalyzeInput("", "https://example.com/invoice.pdf")
		require.NoError(t, err)
		require.Equal(t, "https://example.com/invoice.pdf", input.URL)
		require.Nil(t, input.Data)
	})

	t.Run("File", func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "receipt.pdf")
		require.NoError(t, os.WriteFile(filePath, []byte("%PDF-1.7"), 0644))

		input, err := readAnalyzeInput(filePath, "")
		require.NoError(t, err)
		require.Equal(t, []byte("%PDF-1.7"), input.Data)
		require.Equal(t, "application/pdf", input.ContentType)
	})

	t.Run("UnknownExtension", func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "data.unknownext")
		require.NoError(t, os.WriteFile(filePath, []byte("raw"), 0644))

		input, err := readAnalyzeInput(filePath, "")
		require.NoError(t, err)
		require.Equal(t, "application/octet-stream", input.ContentType)
	})

	t.Run("BothOrNeither", func(t *testing.T) {
		_, err := readAnalyzeInput("", "")
		require.Error(t, err)

		_, err = readAnalyzeInput("file.pdf", "https://example.com/file.pdf")
		require.Error(t, err)
	})
}

func Test_SaveJson(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "results", "analyze.json")

	err := saveJson(outPath, map[string]string{"status": "Succeeded"})
	require.NoError(t, err)

	saved, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(saved), `"status": "Succeeded"`)
}
