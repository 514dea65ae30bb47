// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package keyframes derives keyframe image file names from video analyze
// result markdown. Video results reference extracted frames as
// keyFrame.{id}.jpg images; those paths are then fetched through the
// analyzer result-file endpoint.
package keyframes

import (
	"fmt"
	"regexp"
)

var keyFramePattern = regexp.MustCompile(`keyFrame\.(\d+)\.jpg`)

// IDs extracts the unique keyframe identifiers referenced by the result
// markdown, preserving first-seen order.
func IDs(markdown string) []string {
	matches := keyFramePattern.FindAllStringSubmatch(markdown, -1)

	seen := map[string]struct{}{}
	ids := []string{}

	for _, match := range matches {
		id := match[1]
		if _, has := seen[id]; has {
			continue
		}

		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids
}

// FileName derives the result-file path for a keyframe identifier.
func FileName(id string) string {
	return fmt.Sprintf("keyFrame.%s.jpg", id)
}
