// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// The run helpers back both the subcommands and the interactive menu, so
// input validation must fire before any configuration or client setup.
func Test_RunHelpers_ValidateInputFirst(t *testing.T) {
	ctx := context.Background()

	err := runAnalyze(ctx, &analyzeFlags{analyzer: "my-analyzer"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "--file or --url")

	err = runClassify(ctx, &classifyFlags{id: "my-classifier"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "--file or --url")

	err = runVideoKeyframes(ctx, &videoKeyframesFlags{analyzer: "my-analyzer"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "--file or --url")

	err = runAudioTranscript(ctx, &audioTranscriptFlags{analyzer: "my-analyzer"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "--file or --url")
}
