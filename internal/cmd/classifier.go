// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/azure-samples/azure-ai-content-understanding-go/internal/config"
	"github.com/azure-samples/azure-ai-content-understanding-go/pkg/contentunderstanding"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newClassifierCommand() *cobra.Command {
	classifierCmd := &cobra.Command{
		Use:   "classifier <command> [options]",
		Short: "Manage classifiers and classify documents.",
	}

	classifierCmd.AddCommand(newClassifierCreateCommand())
	classifierCmd.AddCommand(newClassifierListCommand())
	classifierCmd.AddCommand(newClassifierGetCommand())
	classifierCmd.AddCommand(newClassifierDeleteCommand())
	classifierCmd.AddCommand(newClassifierClassifyCommand())

	return classifierCmd
}

type classifierCreateFlags struct {
	id       string
	template string
	unique   bool
}

func newClassifierCreateCommand() *cobra.Command {
	flags := &classifierCreateFlags{}

	createCmd := &cobra.Command{
		Use:   "create --id <id> --template <file>",
		Short: "Create or replace a classifier from a JSON template.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			client, err := createClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			classifier, err := readClassifierTemplate(flags.template)
			if err != nil {
				return err
			}

			classifierID := flags.id
			if flags.unique {
				classifierID = fmt.Sprintf("%s-%s", classifierID, uuid.NewString())
			}

			ctx, cancel := operationContext(cmd.Context())
			defer cancel()

			color.Cyan("Creating classifier %s...", classifierID)

			result, err := client.ClassifierByID(classifierID).CreateOrReplace(ctx, classifier)
			if err != nil {
				return fmt.Errorf("failed creating classifier '%s': %w", classifierID, err)
			}

			color.Green("Created classifier %s", classifierID)
			return printJson(result)
		},
	}

	createCmd.Flags().StringVar(&flags.id, "id", "", "Identifier of the classifier")
	createCmd.Flags().StringVar(&flags.template, "template", "", "Path to the classifier JSON template")
	createCmd.Flags().BoolVar(&flags.unique, "unique", false, "Append a random suffix to the classifier id")
	_ = createCmd.MarkFlagRequired("id")
	_ = createCmd.MarkFlagRequired("template")

	return createCmd
}

func newClassifierListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the classifiers on the resource.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			client, err := createClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			response, err := client.Classifiers().Get(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed listing classifiers: %w", err)
			}

			color.Cyan("Found %d classifiers", len(response.Value))
			return printJson(response.Value)
		},
	}
}

func newClassifierGetCommand() *cobra.Command {
	var classifierID string

	getCmd := &cobra.Command{
		Use:   "get --id <id>",
		Short: "Show the details of a classifier.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			client, err := createClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			classifier, err := client.ClassifierByID(classifierID).Get(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed getting classifier '%s': %w", classifierID, err)
			}

			return printJson(classifier)
		},
	}

	getCmd.Flags().StringVar(&classifierID, "id", "", "Identifier of the classifier")
	_ = getCmd.MarkFlagRequired("id")

	return getCmd
}

func newClassifierDeleteCommand() *cobra.Command {
	var classifierID string

	deleteCmd := &cobra.Command{
		Use:   "delete --id <id>",
		Short: "Delete a classifier.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			client, err := createClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if err := client.ClassifierByID(classifierID).Delete(cmd.Context()); err != nil {
				return fmt.Errorf("failed deleting classifier '%s': %w", classifierID, err)
			}

			color.Green("Deleted classifier %s", classifierID)
			return nil
		},
	}

	deleteCmd.Flags().StringVar(&classifierID, "id", "", "Identifier of the classifier")
	_ = deleteCmd.MarkFlagRequired("id")

	return deleteCmd
}

type classifyFlags struct {
	id     string
	file   string
	url    string
	output string
}

func newClassifierClassifyCommand() *cobra.Command {
	flags := &classifyFlags{}

	classifyCmd := &cobra.Command{
		Use:   "classify --id <id> --file <path>|--url <url> [options]",
		Short: "Classify a document and print the categorized sections.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd.Context(), flags)
		},
	}

	classifyCmd.Flags().StringVar(&flags.id, "id", "", "Identifier of the classifier to run")
	classifyCmd.Flags().StringVar(&flags.file, "file", "", "Path of a local file to classify")
	classifyCmd.Flags().StringVar(&flags.url, "url", "", "URL of the content to classify")
	classifyCmd.Flags().StringVar(&flags.output, "output", "", "Path to save the JSON result")
	_ = classifyCmd.MarkFlagRequired("id")

	return classifyCmd
}

// runClassify submits the input to the classifier, waits for the result and
// prints the categorized sections. Shared by the classify command and the
// interactive menu.
func runClassify(ctx context.Context, flags *classifyFlags) error {
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

	color.Cyan("Classifying with %s...", flags.id)

	result, err := client.ClassifierByID(flags.id).Classify(opCtx, input)
	if err != nil {
		return fmt.Errorf("classify failed: %w", err)
	}

	for _, content := range result.Contents {
		color.White("Pages %d-%d: %s", content.StartPageNumber, content.EndPageNumber, content.Category)
	}

	return outputResult(result, flags.output)
}

// readClassifierTemplate loads a classifier definition from a JSON template
// file.
func readClassifierTemplate(path string) (*contentunderstanding.Classifier, error) {
	templateBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed reading template '%s': %w", path, err)
	}

	var classifier contentunderstanding.Classifier
	if err := json.Unmarshal(templateBytes, &classifier); err != nil {
		return nil, fmt.Errorf("failed parsing template '%s': %w", path, err)
	}

	return &classifier, nil
}
