// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/azure-samples/azure-ai-content-understanding-go/internal/config"
	"github.com/azure-samples/azure-ai-content-understanding-go/pkg/contentunderstanding"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newAnalyzerCommand() *cobra.Command {
	analyzerCmd := &cobra.Command{
		Use:   "analyzer <command> [options]",
		Short: "Manage custom analyzers.",
	}

	analyzerCmd.AddCommand(newAnalyzerCreateCommand())
	analyzerCmd.AddCommand(newAnalyzerListCommand())
	analyzerCmd.AddCommand(newAnalyzerGetCommand())
	analyzerCmd.AddCommand(newAnalyzerDeleteCommand())

	return analyzerCmd
}

type analyzerCreateFlags struct {
	id       string
	template string
	unique   bool
}

func newAnalyzerCreateCommand() *cobra.Command {
	flags := &analyzerCreateFlags{}

	createCmd := &cobra.Command{
		Use:   "create --id <id> --template <file>",
		Short: "Create or replace an analyzer from a JSON template.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			client, err := createClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			analyzer, err := readAnalyzerTemplate(flags.template)
			if err != nil {
				return err
			}

			analyzerID := flags.id
			if flags.unique {
				// Avoid collisions when the sample is run repeatedly
				analyzerID = fmt.Sprintf("%s-%s", analyzerID, uuid.NewString())
			}

			ctx, cancel := operationContext(cmd.Context())
			defer cancel()

			color.Cyan("Creating analyzer %s...", analyzerID)

			result, err := client.AnalyzerByID(analyzerID).CreateOrReplace(ctx, analyzer)
			if err != nil {
				return fmt.Errorf("failed creating analyzer '%s': %w", analyzerID, err)
			}

			color.Green("Created analyzer %s", analyzerID)
			return printJson(result)
		},
	}

	createCmd.Flags().StringVar(&flags.id, "id", "", "Identifier of the analyzer")
	createCmd.Flags().StringVar(&flags.template, "template", "", "Path to the analyzer JSON template")
	createCmd.Flags().BoolVar(&flags.unique, "unique", false, "Append a random suffix to the analyzer id")
	_ = createCmd.MarkFlagRequired("id")
	_ = createCmd.MarkFlagRequired("template")

	return createCmd
}

func newAnalyzerListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the analyzers on the resource.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			client, err := createClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			response, err := client.Analyzers().Get(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed listing analyzers: %w", err)
			}

			color.Cyan("Found %d analyzers", len(response.Value))
			return printJson(response.Value)
		},
	}
}

func newAnalyzerGetCommand() *cobra.Command {
	var analyzerID string

	getCmd := &cobra.Command{
		Use:   "get --id <id>",
		Short: "Show the details of an analyzer.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			client, err := createClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			analyzer, err := client.AnalyzerByID(analyzerID).Get(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed getting analyzer '%s': %w", analyzerID, err)
			}

			return printJson(analyzer)
		},
	}

	getCmd.Flags().StringVar(&analyzerID, "id", "", "Identifier of the analyzer")
	_ = getCmd.MarkFlagRequired("id")

	return getCmd
}

func newAnalyzerDeleteCommand() *cobra.Command {
	var analyzerID string

	deleteCmd := &cobra.Command{
		Use:   "delete --id <id>",
		Short: "Delete an analyzer.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			client, err := createClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if err := client.AnalyzerByID(analyzerID).Delete(cmd.Context()); err != nil {
				return fmt.Errorf("failed deleting analyzer '%s': %w", analyzerID, err)
			}

			color.Green("Deleted analyzer %s", analyzerID)
			return nil
		},
	}

	deleteCmd.Flags().StringVar(&analyzerID, "id", "", "Identifier of the analyzer")
	_ = deleteCmd.MarkFlagRequired("id")

	return deleteCmd
}

// readAnalyzerTemplate loads an analyzer definition from a JSON template
// file.
func readAnalyzerTemplate(path string) (*contentunderstanding.Analyzer, error) {
	templateBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed reading template '%s': %w", path, err)
	}

	var analyzer contentunderstanding.Analyzer
	if err := json.Unmarshal(templateBytes, &analyzer); err != nil {
		return nil, fmt.Errorf("failed parsing template '%s': %w", path, err)
	}

	return &analyzer, nil
}
