// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package internal

import "strings"

// Version is the semver of the samples build. Set at build time via
// -ldflags="-X 'github.com/azure-samples/azure-ai-content-understanding-go/internal.Version=...'".
var Version = "0.1.0-dev.0 (commit 0000000000000000000000000000000000000000)"

// GetVersionNumber returns the semantic version portion of Version,
// without any commit information.
func GetVersionNumber() string {
	pieces := strings.SplitN(Version, " ", 2)

	if len(pieces) < 1 {
		return "unknown"
	}

	return pieces[0]
}
