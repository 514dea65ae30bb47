// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/azure-samples/azure-ai-content-understanding-go/internal"
	"github.com/azure-samples/azure-ai-content-understanding-go/internal/config"
	"github.com/azure-samples/azure-ai-content-understanding-go/pkg/azsdk"
	"github.com/azure-samples/azure-ai-content-understanding-go/pkg/contentunderstanding"
	"github.com/azure-samples/azure-ai-content-understanding-go/pkg/convert"
)

// createClient builds a Content Understanding client from the loaded
// configuration. An api key takes precedence over AAD credentials.
func createClient(ctx context.Context, cfg *config.Config) (contentunderstanding.ContentUnderstandingClient, error) {
	if err := cfg.EnsureEndpoint(); err != nil {
		return nil, err
	}

	coreOptions := azsdk.
		DefaultClientOptionsBuilder(ctx, http.DefaultClient, internal.UserAgent()).
		BuildCoreClientOptions()

	clientOptions := &contentunderstanding.ClientOptions{
		ClientOptions: coreOptions,
	}

	if cfg.ApiVersion != "" {
		clientOptions.ApiVersion = convert.RefOf(cfg.ApiVersion)
	}

	if cfg.Key != "" {
		return contentunderstanding.NewContentUnderstandingClientWithKey(cfg.Endpoint, cfg.Key, clientOptions)
	}

	credential, err := createCredential()
	if err != nil {
		return nil, err
	}

	return contentunderstanding.NewContentUnderstandingClient(cfg.Endpoint, credential, clientOptions)
}

func createCredential() (azcore.TokenCredential, error) {
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed creating credential: %w", err)
	}

	return credential, nil
}

// operationContext bounds long-running operation waits with the --timeout
// root flag.
func operationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, rootFlags.Timeout)
}
