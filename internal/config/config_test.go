// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Load(t *testing.T) {
	t.Setenv(EndpointEnvVarName, "https://my-resource.cognitiveservices.azure.com")
	t.Setenv(KeyEnvVarName, "secret-key")
	t.Setenv(ApiVersionEnvVarName, "2025-05-01-preview")
	t.Setenv(StorageAccountEnvVarName, "trainingdata")
	t.Setenv(StorageContainerEnvVarName, "receipts")
	t.Setenv(SubscriptionIdEnvVarName, "00000000-0000-0000-0000-000000000000")

	config, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://my-resource.cognitiveservices.azure.com", config.Endpoint)
	require.Equal(t, "secret-key", config.Key)
	require.Equal(t, "2025-05-01-preview", config.ApiVersion)
	require.Equal(t, "trainingdata", config.StorageAccount)
	require.Equal(t, "receipts", config.StorageContainer)
	require.Equal(t, "00000000-0000-0000-0000-000000000000", config.SubscriptionId)

	require.NoError(t, config.EnsureEndpoint())
	require.NoError(t, config.EnsureStorage())
	require.NoError(t, config.EnsureSubscription())
}

func Test_Ensure_Missing(t *testing.T) {
	config := &Config{}

	err := config.EnsureEndpoint()
	require.Error(t, err)
	require.Contains(t, err.Error(), EndpointEnvVarName)

	err = config.EnsureStorage()
	require.Error(t, err)
	require.Contains(t, err.Error(), StorageAccountEnvVarName)

	config.StorageAccount = "trainingdata"
	err = config.EnsureStorage()
	require.Error(t, err)
	require.Contains(t, err.Error(), StorageContainerEnvVarName)

	err = config.EnsureSubscription()
	require.Error(t, err)
	require.Contains(t, err.Error(), SubscriptionIdEnvVarName)
}
