// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package contentunderstanding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_OperationState_Is(t *testing.T) {
	require.True(t, OperationState("Succeeded").Is(OperationStateSucceeded))
	require.True(t, OperationState("succeeded").Is(OperationStateSucceeded))
	require.True(t, OperationState("RUNNING").Is(OperationStateRunning))
	require.False(t, OperationState("Running").Is(OperationStateFailed))
}

func Test_OperationError_Error(t *testing.T) {
	withCode := &OperationError{
		OperationID: "op-1",
		Code:        "InvalidRequest",
		Message:     "bad input",
	}
	require.Equal(t, "operation op-1 failed: InvalidRequest: bad input", withCode.Error())

	withoutCode := &OperationError{
		OperationID: "op-2",
		Message:     "bad input",
	}
	require.Equal(t, "operation op-2 failed: bad input", withoutCode.Error())
}
