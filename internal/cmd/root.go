// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"io"
	"log"
	"time"

	"github.com/spf13/cobra"
)

type rootFlagsDefinition struct {
	Debug   bool
	Timeout time.Duration
}

var rootFlags rootFlagsDefinition

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "content-understanding <command> [options]",
		Short:         "Samples for the Azure AI Content Understanding service.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !rootFlags.Debug {
				log.SetOutput(io.Discard)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation drops into the interactive menu
			return runMenu(cmd.Context())
		},
	}

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.PersistentFlags().BoolVar(
		&rootFlags.Debug,
		"debug",
		false,
		"Enable debug logging",
	)
	rootCmd.PersistentFlags().DurationVar(
		&rootFlags.Timeout,
		"timeout",
		10*time.Minute,
		"Bound on the total wait for a long-running operation",
	)

	rootCmd.AddCommand(newAnalyzerCommand())
	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newClassifierCommand())
	rootCmd.AddCommand(newVideoCommand())
	rootCmd.AddCommand(newAudioCommand())
	rootCmd.AddCommand(newTrainDataCommand())
	rootCmd.AddCommand(newResourcesCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
