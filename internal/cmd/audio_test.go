// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"testing"

	"github.com/azure-samples/azure-ai-content-understanding-go/pkg/contentunderstanding"
	"github.com/stretchr/testify/require"
)

func Test_FormatTranscript(t *testing.T) {
	t.Run("PrefersPhrases", func(t *testing.T) {
		result := &contentunderstanding.AnalyzeResult{
			Contents: []*contentunderstanding.MediaContent{
				{
					Markdown: "```WEBVTT\nignored\n```",
					TranscriptPhrases: []*contentunderstanding.TranscriptPhrase{
						{Speaker: "Speaker 1", StartTimeMs: 0, EndTimeMs: 1000, Text: "Hello."},
					},
				},
			},
		}

		document, err := formatTranscript(result)
		require.NoError(t, err)
		require.Contains(t, document, "<v Speaker 1>Hello.")
		require.NotContains(t, document, "ignored")
	})

	t.Run("MarkdownFallback", func(t *testing.T) {
		result := &contentunderstanding.AnalyzeResult{
			Contents: []*contentunderstanding.MediaContent{
				{Markdown: "```WEBVTT\n00:00:00.000 --> 00:00:01.000\nHello.\n```"},
			},
		}

		document, err := formatTranscript(result)
		require.NoError(t, err)
		require.Contains(t, document, "WEBVTT\n")
		require.Contains(t, document, "Hello.")
	})

	t.Run("NoTranscript", func(t *testing.T) {
		result := &contentunderstanding.AnalyzeResult{
			Contents: []*contentunderstanding.MediaContent{
				{Markdown: "# Audio\n\nNothing here."},
			},
		}

		_, err := formatTranscript(result)
		require.Error(t, err)
	})
}
