// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package internal

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserAgent(t *testing.T) {
	orig := os.Getenv("AZURE_CONTENT_UNDERSTANDING_USER_AGENT")
	defer func() { os.Setenv("AZURE_CONTENT_UNDERSTANDING_USER_AGENT", orig) }()

	version := GetVersionNumber()
	require.NotEmpty(t, version)

	os.Setenv("AZURE_CONTENT_UNDERSTANDING_USER_AGENT", "")

	agent := UserAgent()
	require.True(t, strings.HasPrefix(agent, fmt.Sprintf("cu-samples-go/%s", version)))
	require.Contains(t, agent, "(Go ")

	os.Setenv("AZURE_CONTENT_UNDERSTANDING_USER_AGENT", "dev_user_agent")
	require.True(t, strings.HasSuffix(UserAgent(), " dev_user_agent"))
}

func TestGetVersionNumber(t *testing.T) {
	require.NotContains(t, GetVersionNumber(), " ")
}
