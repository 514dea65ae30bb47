// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/azure-samples/azure-ai-content-understanding-go/internal/config"
	"github.com/fatih/color"
)

type menuAction struct {
	label string
	run   func(ctx context.Context) error
}

// runMenu drives the interactive sample menu shown on a bare invocation.
// Each action prompts for its required inputs and runs the same code path
// as the matching subcommand.
func runMenu(ctx context.Context) error {
	actions := []menuAction{
		{label: "List analyzers", run: menuListAnalyzers},
		{label: "List classifiers", run: menuListClassifiers},
		{label: "Analyze a file", run: menuAnalyze},
		{label: "Classify a file", run: menuClassify},
		{label: "Extract video keyframes", run: menuVideoKeyframes},
		{label: "Format an audio transcript", run: menuAudioTranscript},
		{label: "Upload training data", run: menuTrainDataUpload},
		{label: "Exit", run: nil},
	}

	labels := make([]string, 0, len(actions))
	for _, action := range actions {
		labels = append(labels, action.label)
	}

	for {
		var selectedIndex int
		err := survey.AskOne(&survey.Select{
			Message: "What would you like to do?",
			Options: labels,
		}, &selectedIndex)
		if err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}

			return fmt.Errorf("prompting for action: %w", err)
		}

		action := actions[selectedIndex]
		if action.run == nil {
			return nil
		}

		if err := action.run(ctx); err != nil {
			color.Red("Error: %v", err)
		}
	}
}

func menuListAnalyzers(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := createClient(ctx, cfg)
	if err != nil {
		return err
	}

	response, err := client.Analyzers().Get(ctx)
	if err != nil {
		return fmt.Errorf("failed listing analyzers: %w", err)
	}

	for _, analyzer := range response.Value {
		color.White("%s  %s", analyzer.AnalyzerID, analyzer.Description)
	}

	return nil
}

func menuListClassifiers(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := createClient(ctx, cfg)
	if err != nil {
		return err
	}

	response, err := client.Classifiers().Get(ctx)
	if err != nil {
		return fmt.Errorf("failed listing classifiers: %w", err)
	}

	for _, classifier := range response.Value {
		color.White("%s  %s", classifier.ClassifierID, classifier.Description)
	}

	return nil
}

func menuAnalyze(ctx context.Context) error {
	analyzerID, err := promptString("Analyzer id:")
	if err != nil {
		return err
	}

	filePath, err := promptString("File to analyze:")
	if err != nil {
		return err
	}

	return runAnalyze(ctx, &analyzeFlags{analyzer: analyzerID, file: filePath})
}

func menuClassify(ctx context.Context) error {
	classifierID, err := promptString("Classifier id:")
	if err != nil {
		return err
	}

	filePath, err := promptString("File to classify:")
	if err != nil {
		return err
	}

	return runClassify(ctx, &classifyFlags{id: classifierID, file: filePath})
}

func menuVideoKeyframes(ctx context.Context) error {
	analyzerID, err := promptString("Video analyzer id:")
	if err != nil {
		return err
	}

	filePath, err := promptString("Video file:")
	if err != nil {
		return err
	}

	return runVideoKeyframes(ctx, &videoKeyframesFlags{
		analyzer: analyzerID,
		file:     filePath,
		outDir:   "keyframes",
	})
}

func menuAudioTranscript(ctx context.Context) error {
	analyzerID, err := promptString("Audio analyzer id:")
	if err != nil {
		return err
	}

	filePath, err := promptString("Audio file:")
	if err != nil {
		return err
	}

	return runAudioTranscript(ctx, &audioTranscriptFlags{analyzer: analyzerID, file: filePath})
}

func menuTrainDataUpload(ctx context.Context) error {
	dir, err := promptString("Training data directory:")
	if err != nil {
		return err
	}

	return runTrainDataUpload(ctx, &trainDataUploadFlags{dir: dir})
}

func promptString(message string) (string, error) {
	var value string
	if err := survey.AskOne(&survey.Input{
		Message: message,
	}, &value, survey.WithValidator(survey.Required)); err != nil {
		return "", fmt.Errorf("prompting for input: %w", err)
	}

	return value, nil
}
