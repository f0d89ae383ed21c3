package callback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPICall_RetryLifecycle(t *testing.T) {
	call, err := NewAPICall(CallTypeNotification, 1, map[string]interface{}{"k": "v"}, nil)
	require.NoError(t, err)
	assert.Equal(t, CallStatusPending, call.Status())

	const maxRetries = 3

	call.MarkFailure("connection refused", maxRetries)
	assert.Equal(t, CallStatusRetrying, call.Status())
	assert.Equal(t, 1, call.RetryCount())
	assert.True(t, call.IsRetryable(maxRetries))

	call.MarkFailure("connection refused", maxRetries)
	assert.Equal(t, CallStatusRetrying, call.Status())
	assert.True(t, call.IsRetryable(maxRetries))

	call.MarkFailure("connection refused", maxRetries)
	assert.Equal(t, CallStatusFailed, call.Status())
	assert.Equal(t, 3, call.RetryCount())
	assert.False(t, call.IsRetryable(maxRetries), "exhausted calls are never retried")
}

func TestAPICall_MarkSuccessClearsError(t *testing.T) {
	call, err := NewAPICall(CallTypeDataUpdate, 2, nil, nil)
	require.NoError(t, err)

	call.MarkFailure("timeout", 3)
	call.MarkSuccess(`{"ok":true}`)

	assert.Equal(t, CallStatusSuccess, call.Status())
	assert.Empty(t, call.ErrorMessage())
	assert.Equal(t, `{"ok":true}`, call.Response())
	assert.False(t, call.IsRetryable(3))
}

func TestNewAPICall_Validation(t *testing.T) {
	_, err := NewAPICall(CallType("NOPE"), 1, nil, nil)
	assert.Error(t, err)

	_, err = NewAPICall(CallTypeUserAction, 0, nil, nil)
	assert.Error(t, err)
}

func TestNewEndpoint_Validation(t *testing.T) {
	ep, err := NewEndpoint("dashboard-refresh", "https://frontend.example.edu/hooks/refresh", true)
	require.NoError(t, err)
	assert.True(t, ep.IsActive())

	_, err = NewEndpoint("", "https://frontend.example.edu/x", false)
	assert.Error(t, err)

	_, err = NewEndpoint("bad-url", "not a url", false)
	assert.Error(t, err)
}
