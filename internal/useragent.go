// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package internal

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

const userSpecifiedAgentEnvironmentVariableName = "AZURE_CONTENT_UNDERSTANDING_USER_AGENT"

const productIdentifierKey = "cu-samples-go"

type userAgent struct {
	// Samples product identifier. Formatted as `cu-samples-go/<version>`
	productIdentifier string

	// (Optional) User specified identifier, set from the
	// AZURE_CONTENT_UNDERSTANDING_USER_AGENT environment variable
	userSpecifiedIdentifier string
}

func (ua *userAgent) String() string {
	var sb strings.Builder
	sb.WriteString(ua.productIdentifier)

	if ua.userSpecifiedIdentifier != "" {
		sb.WriteString(" " + ua.userSpecifiedIdentifier)
	}

	return sb.String()
}

// UserAgent creates a user agent string that contains all necessary product identifiers:
// - The samples version, formatted as `cu-samples-go/<version> (Go <ver>; <os>/<arch>)`
// - The user specified identifier, set from AZURE_CONTENT_UNDERSTANDING_USER_AGENT
// Example: `cu-samples-go/0.1.0 (Go go1.24; linux/amd64) Custom-foo/1.0.0`
func UserAgent() string {
	ua := userAgent{
		productIdentifier:       getProductIdentifier(),
		userSpecifiedIdentifier: getUserSpecifiedIdentifier(),
	}

	return ua.String()
}

func getProductIdentifier() string {
	return fmt.Sprintf("%s/%s %s", productIdentifierKey, GetVersionNumber(), getPlatformInfo())
}

func getPlatformInfo() string {
	return fmt.Sprintf("(Go %s; %s/%s)", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func getUserSpecifiedIdentifier() string {
	// like the Azure CLI (via its `AZURE_HTTP_USER_AGENT` env variable) we allow for a user to append
	// information to the UserAgent by setting an environment variable.
	if agent := os.Getenv(userSpecifiedAgentEnvironmentVariableName); agent != "" {
		return agent
	}

	return ""
}
