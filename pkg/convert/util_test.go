// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package convert

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ToValueWithDefault(t *testing.T) {
	t.Run("Value", func(t *testing.T) {
		require.Equal(t, "apple", ToValueWithDefault(RefOf("apple"), "default"))
		require.Equal(t, 10, ToValueWithDefault(RefOf(10), 20))
	})

	t.Run("Nil", func(t *testing.T) {
		require.Equal(t, "default", ToValueWithDefault[string](nil, "default"))
	})

	t.Run("EmptyString", func(t *testing.T) {
		require.Equal(t, "default", ToValueWithDefault(RefOf(""), "default"))
	})
}

func Test_ToHttpRequestBody(t *testing.T) {
	value := map[string]string{
		"url": "https://example.com/invoice.pdf",
	}

	body, err := ToHttpRequestBody(value)
	require.NoError(t, err)

	data, err := io.ReadAll(body)
	require.NoError(t, err)

	var roundTrip map[string]string
	require.NoError(t, json.Unmarshal(data, &roundTrip))
	require.Equal(t, value, roundTrip)

	// body must be rewindable for pipeline retries
	_, err = body.Seek(0, io.SeekStart)
	require.NoError(t, err)
	require.NoError(t, body.Close())
}
