// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package config loads sample settings from the process environment,
// optionally seeded from a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	EndpointEnvVarName   = "AZURE_CONTENT_UNDERSTANDING_ENDPOINT"
	KeyEnvVarName        = "AZURE_CONTENT_UNDERSTANDING_KEY"
	ApiVersionEnvVarName = "AZURE_CONTENT_UNDERSTANDING_API_VERSION"

	StorageAccountEnvVarName   = "AZURE_TRAINING_DATA_STORAGE_ACCOUNT"
	StorageContainerEnvVarName = "AZURE_TRAINING_DATA_CONTAINER"

	SubscriptionIdEnvVarName = "AZURE_SUBSCRIPTION_ID"
)

// Config carries the resolved settings for the sample commands.
type Config struct {
	// Endpoint of the Content Understanding resource, e.g.
	// https://my-resource.cognitiveservices.azure.com
	Endpoint string

	// Key is the resource api key. When empty, AAD credentials are used.
	Key string

	// ApiVersion overrides the client's default service api-version.
	ApiVersion string

	// StorageAccount and StorageContainer locate the blob container used
	// for analyzer training data.
	StorageAccount   string
	StorageContainer string

	// SubscriptionId scopes the resource listing command.
	SubscriptionId string
}

// Load reads settings from a .env file (when present) and the process
// environment. Environment variables take precedence over .env values.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may carry everything
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed loading .env file: %w", err)
	}

	return &Config{
		Endpoint:         os.Getenv(EndpointEnvVarName),
		Key:              os.Getenv(KeyEnvVarName),
		ApiVersion:       os.Getenv(ApiVersionEnvVarName),
		StorageAccount:   os.Getenv(StorageAccountEnvVarName),
		StorageContainer: os.Getenv(StorageContainerEnvVarName),
		SubscriptionId:   os.Getenv(SubscriptionIdEnvVarName),
	}, nil
}

// EnsureEndpoint validates that an endpoint has been configured.
func (c *Config) EnsureEndpoint() error {
	if c.Endpoint == "" {
		return fmt.Errorf("%s is not set", EndpointEnvVarName)
	}

	return nil
}

// EnsureStorage validates that the training data storage settings have
// been configured.
func (c *Config) EnsureStorage() error {
	if c.StorageAccount == "" {
		return fmt.Errorf("%s is not set", StorageAccountEnvVarName)
	}

	if c.StorageContainer == "" {
		return fmt.Errorf("%s is not set", StorageContainerEnvVarName)
	}

	return nil
}

// EnsureSubscription validates that a subscription id has been configured.
func (c *Config) EnsureSubscription() error {
	if c.SubscriptionId == "" {
		return errors.New(SubscriptionIdEnvVarName + " is not set")
	}

	return nil
}
