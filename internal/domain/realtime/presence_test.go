package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnlineUser_Freshness(t *testing.T) {
	ou, err := NewOnlineUser(1, "chan-1")
	require.NoError(t, err)

	now := time.Now()
	window := 5 * time.Minute

	assert.True(t, ou.IsFresh(window, now))
	assert.False(t, ou.IsFresh(window, now.Add(6*time.Minute)), "stale rows filter out at read time")

	ou.GoOffline()
	assert.False(t, ou.IsFresh(window, now), "offline users are never fresh")
}

func TestTypingStatus_Window(t *testing.T) {
	ts, err := NewTypingStatus(10, 1, true)
	require.NoError(t, err)

	now := time.Now()
	window := time.Minute

	assert.True(t, ts.IsLive(window, now))
	assert.False(t, ts.IsLive(window, now.Add(2*time.Minute)), "typing flag expires after one minute")

	ts.Set(false)
	assert.False(t, ts.IsLive(window, time.Now()))
}

func TestNewIssueActivity_DefaultsToView(t *testing.T) {
	a, err := NewIssueActivity(10, 1, "")
	require.NoError(t, err)
	assert.Equal(t, ActivityTypeView, a.ActivityType())

	_, err = NewIssueActivity(0, 1, ActivityTypeView)
	assert.Error(t, err)
}
