// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package webvtt formats analyze-result transcripts as WEBVTT documents.
// Transcripts arrive in two shapes: structured phrase lists on audio
// results, and a fenced WEBVTT code block embedded in result markdown.
package webvtt

import (
	"fmt"
	"strings"

	"github.com/azure-samples/azure-ai-content-understanding-go/pkg/contentunderstanding"
)

const header = "WEBVTT"

// Timestamp formats a millisecond offset as a WEBVTT cue timestamp
// (HH:MM:SS.mmm).
func Timestamp(ms int64) string {
	if ms < 0 {
		ms = 0
	}

	hours := ms / 3_600_000
	minutes := (ms % 3_600_000) / 60_000
	seconds := (ms % 60_000) / 1_000
	millis := ms % 1_000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

// FromPhrases renders the structured transcript phrases of an audio result
// as a WEBVTT document. Speakers are rendered as voice spans.
func FromPhrases(phrases []*contentunderstanding.TranscriptPhrase) string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")

	for _, phrase := range phrases {
		if phrase == nil || phrase.Text == "" {
			continue
		}

		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s --> %s\n", Timestamp(phrase.StartTimeMs), Timestamp(phrase.EndTimeMs)))

		if phrase.Speaker != "" {
			sb.WriteString(fmt.Sprintf("<v %s>%s\n", phrase.Speaker, phrase.Text))
		} else {
			sb.WriteString(phrase.Text)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// FromMarkdown extracts the fenced WEBVTT transcript block embedded in
// result markdown. The returned document always begins with the WEBVTT
// header line. The second return value reports whether a transcript block
// was found.
func FromMarkdown(markdown string) (string, bool) {
	const fence = "```"

	remaining := markdown
	for {
		start := strings.Index(remaining, fence)
		if start == -1 {
			return "", false
		}

		remaining = remaining[start+len(fence):]

		end := strings.Index(remaining, fence)
		if end == -1 {
			return "", false
		}

		block := remaining[:end]
		remaining = remaining[end+len(fence):]

		// The transcript fence is tagged with the WEBVTT language label
		firstLine, rest, _ := strings.Cut(block, "\n")
		if !strings.EqualFold(strings.TrimSpace(firstLine), header) {
			continue
		}

		body := strings.TrimRight(rest, "\n \t")
		if body == "" {
			return header + "\n", true
		}

		return header + "\n" + body + "\n", true
	}
}
