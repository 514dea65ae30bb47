// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package contentunderstanding

import (
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// ServiceConfig describes the Content Understanding data plane. The endpoint is
// per-resource (https://<resource>.services.ai.azure.com) so only the token
// audience is fixed here.
var ServiceConfig cloud.ServiceConfiguration = cloud.ServiceConfiguration{
	Audience: "https://cognitiveservices.azure.com",
}

const (
	// Interval between polls of a long-running operation status. The service
	// may override a single wait with a Retry-After header.
	defaultPollingFrequency = 2 * time.Second

	pipelineModuleName    = "contentunderstanding"
	pipelineModuleVersion = "1.0.0"
)

// Creates a new Azure HTTP pipeline authenticated with an AAD token credential.
func NewPipeline(
	credential azcore.TokenCredential,
	serviceConfig cloud.ServiceConfiguration,
	clientOptions *azcore.ClientOptions,
) runtime.Pipeline {
	scopes := []string{
		fmt.Sprintf("%s/.default", serviceConfig.Audience),
	}

	authPolicy := runtime.NewBearerTokenPolicy(credential, scopes, nil)
	pipelineOptions := runtime.PipelineOptions{
		PerRetry: []policy.Policy{authPolicy},
	}

	return runtime.NewPipeline(pipelineModuleName, pipelineModuleVersion, pipelineOptions, clientOptions)
}

// Creates a new Azure HTTP pipeline authenticated with a resource api key.
func NewKeyPipeline(key string, clientOptions *azcore.ClientOptions) runtime.Pipeline {
	pipelineOptions := runtime.PipelineOptions{
		PerRetry: []policy.Policy{NewKeyCredentialPolicy(key)},
	}

	return runtime.NewPipeline(pipelineModuleName, pipelineModuleVersion, pipelineOptions, clientOptions)
}
