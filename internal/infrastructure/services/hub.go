// Package services provides infrastructure services.
package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"campusdesk/internal/shared/logger"
)

// Group naming scheme. Every connected client joins its personal
// notification group; issue groups are joined while viewing an issue.
func GroupNotifications(userID uint) string {
	return fmt.Sprintf("notifications:%d", userID)
}

func GroupIssue(issueID uint) string {
	return fmt.Sprintf("issue:%d", issueID)
}

// GroupGlobal is the shared presence group. Every notification
// connection joins it so online/offline transitions reach all clients.
func GroupGlobal() string {
	return "global"
}

// Envelope is the wire format for every outbound websocket message.
type Envelope struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// Hub routes messages to websocket clients by group membership. It
// never blocks on a slow client: sends that would block are dropped and
// the client is expected to resync over REST.
type Hub struct {
	groups   map[string]map[*Client]bool
	groupsMu sync.RWMutex
	logger   logger.Interface
}

func NewHub(logger logger.Interface) *Hub {
	return &Hub{
		groups: make(map[string]map[*Client]bool),
		logger: logger,
	}
}

// Join adds the client to a group, creating the group on first use.
func (h *Hub) Join(client *Client, group string) {
	h.groupsMu.Lock()
	defer h.groupsMu.Unlock()

	members, ok := h.groups[group]
	if !ok {
		members = make(map[*Client]bool)
		h.groups[group] = members
	}
	members[client] = true
	client.trackGroup(group)
}

// Leave removes the client from a group, dropping the group when empty.
func (h *Hub) Leave(client *Client, group string) {
	h.groupsMu.Lock()
	defer h.groupsMu.Unlock()
	h.leaveLocked(client, group)
}

// Remove detaches the client from every group it joined and closes its
// send channel. Safe to call more than once.
func (h *Hub) Remove(client *Client) {
	h.groupsMu.Lock()
	for group := range client.groups {
		h.leaveLocked(client, group)
	}
	h.groupsMu.Unlock()

	client.Close()
}

// Broadcast sends an envelope to every member of the group.
func (h *Hub) Broadcast(group, messageType string, payload interface{}) {
	data, err := json.Marshal(Envelope{Type: messageType, Payload: payload})
	if err != nil {
		h.logger.Errorw("failed to marshal websocket envelope", "type", messageType, "error", err)
		return
	}

	h.groupsMu.RLock()
	members := make([]*Client, 0, len(h.groups[group]))
	for client := range h.groups[group] {
		members = append(members, client)
	}
	h.groupsMu.RUnlock()

	for _, client := range members {
		if !client.TrySend(data) {
			h.logger.Warnw("dropped websocket message for slow client",
				"group", group,
				"type", messageType,
				"user_id", client.UserID(),
			)
		}
	}
}

// PushToUser sends to the user's personal notification group.
func (h *Hub) PushToUser(userID uint, messageType string, payload interface{}) {
	h.Broadcast(GroupNotifications(userID), messageType, payload)
}

// PushToIssue sends to everyone with the issue open.
func (h *Hub) PushToIssue(issueID uint, messageType string, payload interface{}) {
	h.Broadcast(GroupIssue(issueID), messageType, payload)
}

// PushGlobal sends to every member of the global presence group.
func (h *Hub) PushGlobal(messageType string, payload interface{}) {
	h.Broadcast(GroupGlobal(), messageType, payload)
}

// SendTo queues an envelope for a single client, bypassing groups.
// Used for connect-time replies like the online-user list.
func (h *Hub) SendTo(client *Client, messageType string, payload interface{}) {
	data, err := json.Marshal(Envelope{Type: messageType, Payload: payload})
	if err != nil {
		h.logger.Errorw("failed to marshal websocket envelope", "type", messageType, "error", err)
		return
	}
	if !client.TrySend(data) {
		h.logger.Warnw("dropped websocket message for slow client",
			"type", messageType,
			"user_id", client.UserID(),
		)
	}
}

// GroupSize reports current membership, used by tests and diagnostics.
func (h *Hub) GroupSize(group string) int {
	h.groupsMu.RLock()
	defer h.groupsMu.RUnlock()
	return len(h.groups[group])
}

func (h *Hub) leaveLocked(client *Client, group string) {
	members, ok := h.groups[group]
	if !ok {
		return
	}
	delete(members, client)
	if len(members) == 0 {
		delete(h.groups, group)
	}
}
