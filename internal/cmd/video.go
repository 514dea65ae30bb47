// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/azure-samples/azure-ai-content-understanding-go/internal/config"
	"github.com/azure-samples/azure-ai-content-understanding-go/pkg/keyframes"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newVideoCommand() *cobra.Command {
	videoCmd := &cobra.Command{
		Use:   "video <command> [options]",
		Short: "Video analysis samples.",
	}

	videoCmd.AddCommand(newVideoKeyframesCommand())

	return videoCmd
}

type videoKeyframesFlags struct {
	analyzer string
	file     string
	url      string
	outDir   string
}

func newVideoKeyframesCommand() *cobra.Command {
	flags := &videoKeyframesFlags{}

	keyframesCmd := &cobra.Command{
		Use:   "keyframes --analyzer <id> --file <path>|--url <url> [options]",
		Short: "Analyze a video and download the extracted keyframe images.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVideoKeyframes(cmd.Context(), flags)
		},
	}

	keyframesCmd.Flags().StringVar(&flags.analyzer, "analyzer", "", "Identifier of the video analyzer to run")
	keyframesCmd.Flags().StringVar(&flags.file, "file", "", "Path of a local video file")
	keyframesCmd.Flags().StringVar(&flags.url, "url", "", "URL of the video")
	keyframesCmd.Flags().StringVar(&flags.outDir, "out", "keyframes", "Directory to save keyframe images")
	_ = keyframesCmd.MarkFlagRequired("analyzer")

	return keyframesCmd
}

// runVideoKeyframes analyzes the video, derives the keyframe file names from
// the result markdown and downloads each image. Shared by the keyframes
// command and the interactive menu.
func runVideoKeyframes(ctx context.Context, flags *videoKeyframesFlags) error {
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

	color.Cyan("Analyzing video with %s...", flags.analyzer)

	analyzer := client.AnalyzerByID(flags.analyzer)
	result, err := analyzer.Analyze(opCtx, input)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	ids := []string{}
	for _, content := range result.Contents {
		ids = append(ids, keyframes.IDs(content.Markdown)...)
	}

	if len(ids) == 0 {
		color.Yellow("The result markdown references no keyframes")
		return nil
	}

	if err := os.MkdirAll(flags.outDir, 0755); err != nil {
		return fmt.Errorf("failed creating output directory: %w", err)
	}

	color.Cyan("Downloading %d keyframes...", len(ids))

	for _, id := range ids {
		fileName := keyframes.FileName(id)

		imageBytes, err := analyzer.GetResultFile(opCtx, result.ResultID, fileName)
		if err != nil {
			return fmt.Errorf("failed downloading '%s': %w", fileName, err)
		}

		outPath := filepath.Join(flags.outDir, fileName)
		if err := os.WriteFile(outPath, imageBytes, 0644); err != nil {
			return fmt.Errorf("failed writing '%s': %w", outPath, err)
		}

		color.Green("Saved %s", outPath)
	}

	return nil
}
