// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"github.com/azure-samples/azure-ai-content-understanding-go/internal"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the version of the samples CLI.",
		RunE: func(cmd *cobra.Command, args []string) error {
			color.Cyan("Azure AI Content Understanding Samples")
			color.White("Version: %s", internal.Version)
			return nil
		},
	}
}
