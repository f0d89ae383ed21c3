package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/shared/logger"
)

func newTestClient(userID uint) *Client {
	return NewClient(nil, userID, logger.NewLogger())
}

func drainOne(t *testing.T, c *Client) Envelope {
	t.Helper()
	select {
	case data := <-c.send:
		var env Envelope
		require.NoError(t, json.Unmarshal(data, &env))
		return env
	default:
		t.Fatal("expected a queued message")
		return Envelope{}
	}
}

func TestHub_PushToUser(t *testing.T) {
	hub := NewHub(logger.NewLogger())

	alice := newTestClient(1)
	bob := newTestClient(2)
	hub.Join(alice, GroupNotifications(1))
	hub.Join(bob, GroupNotifications(2))

	hub.PushToUser(1, "notification_message", map[string]string{"message": "hi"})

	env := drainOne(t, alice)
	assert.Equal(t, "notification_message", env.Type)
	assert.Empty(t, bob.send, "other inboxes receive nothing")
}

func TestHub_IssueGroupBroadcast(t *testing.T) {
	hub := NewHub(logger.NewLogger())

	viewer1 := newTestClient(1)
	viewer2 := newTestClient(2)
	hub.Join(viewer1, GroupIssue(9))
	hub.Join(viewer2, GroupIssue(9))

	hub.PushToIssue(9, "status_updated", map[string]string{"new_status": "RESOLVED"})

	assert.Equal(t, "status_updated", drainOne(t, viewer1).Type)
	assert.Equal(t, "status_updated", drainOne(t, viewer2).Type)
}

func TestHub_RemoveDetachesFromAllGroups(t *testing.T) {
	hub := NewHub(logger.NewLogger())

	client := newTestClient(1)
	hub.Join(client, GroupNotifications(1))
	hub.Join(client, GroupIssue(9))
	require.Equal(t, 1, hub.GroupSize(GroupIssue(9)))

	hub.Remove(client)

	assert.Zero(t, hub.GroupSize(GroupNotifications(1)))
	assert.Zero(t, hub.GroupSize(GroupIssue(9)))

	// Send after removal must not panic or report success.
	assert.False(t, client.TrySend([]byte("late")))
}

func TestHub_SlowClientDropsInsteadOfBlocking(t *testing.T) {
	hub := NewHub(logger.NewLogger())

	client := newTestClient(1)
	hub.Join(client, GroupNotifications(1))

	for i := 0; i < sendBufferSize; i++ {
		require.True(t, client.TrySend([]byte("filler")))
	}

	// Buffer is full; the broadcast must return without delivering.
	hub.PushToUser(1, "unread_count", map[string]int{"count": 3})
	assert.Len(t, client.send, sendBufferSize)
}

func TestHub_RemoveTwiceIsSafe(t *testing.T) {
	hub := NewHub(logger.NewLogger())

	client := newTestClient(1)
	hub.Join(client, GroupNotifications(1))

	hub.Remove(client)
	assert.NotPanics(t, func() { hub.Remove(client) })
}
