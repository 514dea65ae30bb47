// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package keyframes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_IDs(t *testing.T) {
	markdown := "# Video: 00:00.000 => 00:30.000\n\n" +
		"Key Frames\n" +
		"- 00:00.640 ![](keyFrame.640.jpg)\n" +
		"- 00:05.440 ![](keyFrame.5440.jpg)\n" +
		"- 00:05.440 ![](keyFrame.5440.jpg)\n" +
		"- 00:12.800 ![](keyFrame.12800.jpg)\n"

	require.Equal(t, []string{"640", "5440", "12800"}, IDs(markdown))
}

func Test_IDs_NoMatches(t *testing.T) {
	require.Empty(t, IDs("# Video\n\nNo frames referenced.\n"))
	require.Empty(t, IDs("keyFrame.notanumber.jpg"))
}

func Test_FileName(t *testing.T) {
	require.Equal(t, "keyFrame.640.jpg", FileName("640"))
}
