// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/azure-samples/azure-ai-content-understanding-go/internal"
	"github.com/azure-samples/azure-ai-content-understanding-go/internal/config"
	"github.com/azure-samples/azure-ai-content-understanding-go/pkg/azsdk"
	"github.com/azure-samples/azure-ai-content-understanding-go/pkg/azsdk/storage"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newTrainDataCommand() *cobra.Command {
	trainDataCmd := &cobra.Command{
		Use:   "traindata <command> [options]",
		Short: "Manage analyzer training data in blob storage.",
	}

	trainDataCmd.AddCommand(newTrainDataUploadCommand())

	return trainDataCmd
}

type trainDataUploadFlags struct {
	dir       string
	account   string
	container string
	prefix    string
}

func newTrainDataUploadCommand() *cobra.Command {
	flags := &trainDataUploadFlags{}

	uploadCmd := &cobra.Command{
		Use:   "upload --dir <path> [options]",
		Short: "Upload a labeled training set to a blob container.",
		Long: "Uploads every file under the directory to the training data container, " +
			"preserving relative paths. The printed container URL can be referenced " +
			"from field-extraction analyzer templates as trainingData.containerUrl.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrainDataUpload(cmd.Context(), flags)
		},
	}

	uploadCmd.Flags().StringVar(&flags.dir, "dir", "", "Directory containing the labeled training files")
	uploadCmd.Flags().StringVar(&flags.account, "account", "", "Storage account name (defaults to configuration)")
	uploadCmd.Flags().StringVar(&flags.container, "container", "", "Blob container name (defaults to configuration)")
	uploadCmd.Flags().StringVar(&flags.prefix, "prefix", "", "Blob path prefix for the uploaded files")
	_ = uploadCmd.MarkFlagRequired("dir")

	return uploadCmd
}

// runTrainDataUpload uploads every file under the directory to the training
// data container, preserving relative paths. Shared by the upload command
// and the interactive menu.
func runTrainDataUpload(ctx context.Context, flags *trainDataUploadFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if flags.account == "" {
		flags.account = cfg.StorageAccount
	}
	if flags.container == "" {
		flags.container = cfg.StorageContainer
	}

	cfg.StorageAccount = flags.account
	cfg.StorageContainer = flags.container
	if err := cfg.EnsureStorage(); err != nil {
		return err
	}

	credential, err := createCredential()
	if err != nil {
		return err
	}

	coreOptions := azsdk.
		DefaultClientOptionsBuilder(ctx, http.DefaultClient, internal.UserAgent()).
		BuildCoreClientOptions()

	blobClient := storage.NewBlobClient(storage.AccountConfig{
		AccountName:   flags.account,
		ContainerName: flags.container,
	}, credential, &azblob.ClientOptions{
		ClientOptions: *coreOptions,
	})

	uploaded := 0
	err = filepath.WalkDir(flags.dir, func(filePath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(flags.dir, filePath)
		if err != nil {
			return err
		}

		blobPath := path.Join(flags.prefix, filepath.ToSlash(relPath))

		file, err := os.Open(filePath)
		if err != nil {
			return fmt.Errorf("failed opening '%s': %w", filePath, err)
		}
		defer file.Close()

		if err := blobClient.Upload(ctx, blobPath, file); err != nil {
			return err
		}

		color.Green("Uploaded %s", blobPath)
		uploaded++

		return nil
	})
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	color.Cyan("Uploaded %d files", uploaded)
	color.White("Training data container URL: %s", blobClient.ContainerUrl())

	return nil
}
