// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/azure-samples/azure-ai-content-understanding-go/pkg/contentunderstanding"
	"github.com/fatih/color"
)

// printJson pretty-prints the value as indented JSON.
func printJson(value any) error {
	jsonBytes, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed serializing result: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

// saveJson writes the value as indented JSON to the specified path,
// creating parent directories as needed.
func saveJson(path string, value any) error {
	jsonBytes, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed serializing result: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed creating output directory: %w", err)
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed writing '%s': %w", path, err)
	}

	color.Green("Saved result to %s", path)
	return nil
}

// outputResult prints the value and optionally saves it when outputPath is
// set.
func outputResult(value any, outputPath string) error {
	if err := printJson(value); err != nil {
		return err
	}

	if outputPath != "" {
		return saveJson(outputPath, value)
	}

	return nil
}

// readAnalyzeInput builds the analyze input from either a local file or a
// URL. Exactly one of the two must be set.
func readAnalyzeInput(filePath string, url string) (contentunderstanding.AnalyzeInput, error) {
	if (filePath == "") == (url == "") {
		return contentunderstanding.AnalyzeInput{}, fmt.Errorf("specify exactly one of --file or --url")
	}

	if url != "" {
		return contentunderstanding.AnalyzeInput{URL: url}, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return contentunderstanding.AnalyzeInput{}, fmt.Errorf("failed reading '%s': %w", filePath, err)
	}

	return contentunderstanding.AnalyzeInput{
		Data:        data,
		ContentType: contentTypeForFile(filePath),
	}, nil
}

func contentTypeForFile(filePath string) string {
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(filePath)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return contentType
}
