// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/azure-samples/azure-ai-content-understanding-go/internal/config"
	"github.com/azure-samples/azure-ai-content-understanding-go/pkg/contentunderstanding"
	"github.com/azure-samples/azure-ai-content-understanding-go/pkg/webvtt"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newAudioCommand() *cobra.Command {
	audioCmd := &cobra.Command{
		Use:   "audio <command> [options]",
		Short: "Audio analysis samples.",
	}

	audioCmd.AddCommand(newAudioTranscriptCommand())

	return audioCmd
}

type audioTranscriptFlags struct {
	analyzer string
	file     string
	url      string
	out      string
}

func newAudioTranscriptCommand() *cobra.Command {
	flags := &audioTranscriptFlags{}

	transcriptCmd := &cobra.Command{
		Use:   "transcript --analyzer <id> --file <path>|--url <url> [options]",
		Short: "Analyze audio and format the transcript as WEBVTT.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudioTranscript(cmd.Context(), flags)
		},
	}

	transcriptCmd.Flags().StringVar(&flags.analyzer, "analyzer", "", "Identifier of the audio analyzer to run")
	transcriptCmd.Flags().StringVar(&flags.file, "file", "", "Path of a local audio file")
	transcriptCmd.Flags().StringVar(&flags.url, "url", "", "URL of the audio")
	transcriptCmd.Flags().StringVar(&flags.out, "out", "", "Path to save the WEBVTT transcript")
	_ = transcriptCmd.MarkFlagRequired("analyzer")

	return transcriptCmd
}

// runAudioTranscript analyzes the audio and prints the transcript as WEBVTT.
// Shared by the transcript command and the interactive menu.
func runAudioTranscript(ctx context.Context, flags *audioTranscriptFlags) error {
	input, err := readAnalyzeInput(flags.file, flags.url)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := createClient(ctx, cfg)
	if err != nil {
		return err
	}

	opCtx, cancel := operationContext(ctx)
	defer cancel()

	color.Cyan("Analyzing audio with %s...", flags.analyzer)

	result, err := client.AnalyzerByID(flags.analyzer).Analyze(opCtx, input)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	document, err := formatTranscript(result)
	if err != nil {
		return err
	}

	fmt.Println(document)

	if flags.out != "" {
		if err := os.WriteFile(flags.out, []byte(document), 0644); err != nil {
			return fmt.Errorf("failed writing '%s': %w", flags.out, err)
		}

		color.Green("Saved transcript to %s", flags.out)
	}

	return nil
}

// formatTranscript renders the transcript of an analyze result as WEBVTT.
// Structured phrases are preferred; older analyzer configurations only embed
// the transcript in the result markdown.
func formatTranscript(result *contentunderstanding.AnalyzeResult) (string, error) {
	phrases := []*contentunderstanding.TranscriptPhrase{}
	for _, content := range result.Contents {
		phrases = append(phrases, content.TranscriptPhrases...)
	}

	if len(phrases) > 0 {
		return webvtt.FromPhrases(phrases), nil
	}

	for _, content := range result.Contents {
		if document, ok := webvtt.FromMarkdown(content.Markdown); ok {
			return document, nil
		}
	}

	return "", fmt.Errorf("the analyze result contains no transcript")
}
