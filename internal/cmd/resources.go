// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/cognitiveservices/armcognitiveservices"
	"github.com/azure-samples/azure-ai-content-understanding-go/internal"
	"github.com/azure-samples/azure-ai-content-understanding-go/internal/config"
	"github.com/azure-samples/azure-ai-content-understanding-go/pkg/azsdk"
	"github.com/azure-samples/azure-ai-content-understanding-go/pkg/convert"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newResourcesCommand() *cobra.Command {
	resourcesCmd := &cobra.Command{
		Use:   "resources <command> [options]",
		Short: "Locate Azure AI Services resources.",
	}

	resourcesCmd.AddCommand(newResourcesListCommand())

	return resourcesCmd
}

func newResourcesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the AI Services accounts and endpoints in the subscription.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if err := cfg.EnsureSubscription(); err != nil {
				return err
			}

			credential, err := createCredential()
			if err != nil {
				return err
			}

			armOptions := azsdk.
				DefaultClientOptionsBuilder(cmd.Context(), http.DefaultClient, internal.UserAgent()).
				BuildArmClientOptions()

			accountsClient, err := armcognitiveservices.NewAccountsClient(cfg.SubscriptionId, credential, armOptions)
			if err != nil {
				return fmt.Errorf("failed creating accounts client: %w", err)
			}

			found := 0

			pager := accountsClient.NewListPager(nil)
			for pager.More() {
				page, err := pager.NextPage(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed listing accounts: %w", err)
				}

				for _, account := range page.Value {
					kind := convert.ToValueWithDefault(account.Kind, "")
					if kind != "AIServices" && kind != "CognitiveServices" {
						continue
					}

					endpoint := ""
					if account.Properties != nil {
						endpoint = convert.ToValueWithDefault(account.Properties.Endpoint, "")
					}

					color.White("%s  %s  %s", convert.ToValueWithDefault(account.Name, ""), kind, endpoint)
					found++
				}
			}

			color.Cyan("Found %d accounts", found)
			return nil
		},
	}
}
