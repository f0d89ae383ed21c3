package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	notificationusecases "campusdesk/internal/application/notification/usecases"
	realtimeusecases "campusdesk/internal/application/realtime/usecases"
	"campusdesk/internal/infrastructure/services"
	"campusdesk/internal/shared/constants"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

// Inbound websocket message types.
const (
	inboundMarkAsRead    = "mark_as_read"
	inboundMarkAllAsRead = "mark_all_as_read"
	inboundTypingStatus  = "typing_status"
)

// Outbound websocket message types. Notification and issue pushes
// originating from domain events carry their own types; these cover the
// presence/typing envelopes the handler emits itself.
const (
	outboundUnreadCount   = "unread_count"
	outboundUserStatus    = "user_status"
	outboundOnlineUsers   = "online_users"
	outboundTypingUpdate  = "typing_update"
	outboundTypingUsers   = "typing_users"
	outboundViewingUpdate = "viewing_update"
)

const notificationChannel = "notifications"

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// WSHandler upgrades authenticated requests to websocket connections
// and bridges inbound frames to the application layer.
type WSHandler struct {
	hub         *services.Hub
	markOnline  *realtimeusecases.MarkOnlineUseCase
	markOffline *realtimeusecases.MarkOfflineUseCase
	listOnline  *realtimeusecases.ListOnlineUsersUseCase
	recordView  *realtimeusecases.RecordViewUseCase
	listViewers *realtimeusecases.ListViewersUseCase
	setTyping   *realtimeusecases.SetTypingUseCase
	listTyping  *realtimeusecases.ListTypingUseCase
	markRead    *notificationusecases.MarkAsReadUseCase
	markAllRead *notificationusecases.MarkAllAsReadUseCase
	unreadCount *notificationusecases.GetUnreadCountUseCase
	upgrader    websocket.Upgrader
	logger      logger.Interface
}

func NewWSHandler(
	hub *services.Hub,
	markOnline *realtimeusecases.MarkOnlineUseCase,
	markOffline *realtimeusecases.MarkOfflineUseCase,
	listOnline *realtimeusecases.ListOnlineUsersUseCase,
	recordView *realtimeusecases.RecordViewUseCase,
	listViewers *realtimeusecases.ListViewersUseCase,
	setTyping *realtimeusecases.SetTypingUseCase,
	listTyping *realtimeusecases.ListTypingUseCase,
	markRead *notificationusecases.MarkAsReadUseCase,
	markAllRead *notificationusecases.MarkAllAsReadUseCase,
	unreadCount *notificationusecases.GetUnreadCountUseCase,
	allowedOrigins []string,
	logger logger.Interface,
) *WSHandler {
	return &WSHandler{
		hub:         hub,
		markOnline:  markOnline,
		markOffline: markOffline,
		listOnline:  listOnline,
		recordView:  recordView,
		listViewers: listViewers,
		setTyping:   setTyping,
		listTyping:  listTyping,
		markRead:    markRead,
		markAllRead: markAllRead,
		unreadCount: unreadCount,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		logger: logger,
	}
}

func originChecker(allowedOrigins []string) func(r *http.Request) bool {
	allowAll := false
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(r *http.Request) bool {
		if allowAll {
			return true
		}
		origin := r.Header.Get("Origin")
		// Non-browser clients omit the Origin header.
		if origin == "" {
			return true
		}
		return allowed[origin]
	}
}

// Notifications handles GET /ws/notifications. The connection joins the
// user's personal group plus the global presence group, announces the
// user online, and replies with the current online-user list and unread
// notification count.
func (h *WSHandler) Notifications(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		h.logger.Warnw("websocket upgrade failed", "user_id", userID, "error", err)
		return
	}

	client := services.NewClient(conn, userID, h.logger)
	h.hub.Join(client, services.GroupNotifications(userID))
	h.hub.Join(client, services.GroupGlobal())

	go client.WritePump()

	ctx := c.Request.Context()
	if err := h.markOnline.Execute(ctx, userID, notificationChannel); err != nil {
		h.logger.Warnw("failed to mark user online", "user_id", userID, "error", err)
	}
	h.hub.PushGlobal(outboundUserStatus, gin.H{"user_id": userID, "is_online": true})
	h.sendOnlineUsers(ctx, client)
	h.sendUnreadCount(ctx, client, userID)

	client.ReadPump(
		func(raw []byte) { h.handleNotificationFrame(userID, raw) },
		func() {
			// Request context is gone once the socket drops.
			if err := h.markOffline.Execute(context.Background(), userID); err != nil {
				h.logger.Warnw("failed to mark user offline", "user_id", userID, "error", err)
			}
			h.hub.Remove(client)
			h.hub.PushGlobal(outboundUserStatus, gin.H{"user_id": userID, "is_online": false})
		},
	)
}

func (h *WSHandler) sendOnlineUsers(ctx context.Context, client *services.Client) {
	users, err := h.listOnline.Execute(ctx)
	if err != nil {
		h.logger.Warnw("failed to list online users", "error", err)
		return
	}
	h.hub.SendTo(client, outboundOnlineUsers, gin.H{"users": users})
}

func (h *WSHandler) sendUnreadCount(ctx context.Context, client *services.Client, userID uint) {
	count, err := h.unreadCount.Execute(ctx, userID)
	if err != nil {
		h.logger.Warnw("failed to count unread notifications", "user_id", userID, "error", err)
		return
	}
	h.hub.SendTo(client, outboundUnreadCount, gin.H{"count": count})
}

func (h *WSHandler) handleNotificationFrame(userID uint, raw []byte) {
	var msg inboundMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		h.logger.Debugw("ignoring malformed websocket frame", "user_id", userID)
		return
	}

	ctx := context.Background()
	switch msg.Type {
	case inboundMarkAsRead:
		var payload struct {
			NotificationID uint `json:"notification_id"`
		}
		if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.NotificationID == 0 {
			return
		}
		err := h.markRead.Execute(ctx, notificationusecases.MarkAsReadCommand{
			NotificationID: payload.NotificationID,
			RecipientID:    userID,
		})
		if err != nil {
			h.logger.Warnw("websocket mark as read failed", "user_id", userID, "notification_id", payload.NotificationID, "error", err)
		}
	case inboundMarkAllAsRead:
		if err := h.markAllRead.Execute(ctx, userID); err != nil {
			h.logger.Warnw("websocket mark all as read failed", "user_id", userID, "error", err)
		}
	default:
		h.logger.Debugw("ignoring unknown websocket message type", "user_id", userID, "type", msg.Type)
	}
}

// Issue handles GET /ws/issues/:id. The connection joins the issue's
// group, records a view, replies with who is typing, and broadcasts the
// refreshed viewer set to everyone with the issue open.
func (h *WSHandler) Issue(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warnw("websocket upgrade failed", "user_id", userID, "issue_id", issueID, "error", err)
		return
	}

	client := services.NewClient(conn, userID, h.logger)
	h.hub.Join(client, services.GroupIssue(issueID))

	go client.WritePump()

	ctx := c.Request.Context()
	if err := h.recordView.Execute(ctx, issueID, userID); err != nil {
		h.logger.Warnw("failed to record issue view", "user_id", userID, "issue_id", issueID, "error", err)
	}
	h.sendTypingUsers(ctx, client, issueID, userID)
	h.broadcastViewers(ctx, issueID)

	client.ReadPump(
		func(raw []byte) { h.handleIssueFrame(issueID, userID, raw) },
		func() {
			h.clearTyping(issueID, userID)
			h.hub.Remove(client)
		},
	)
}

func (h *WSHandler) sendTypingUsers(ctx context.Context, client *services.Client, issueID, userID uint) {
	typing, err := h.listTyping.Execute(ctx, realtimeusecases.ListTypingQuery{
		IssueID:       issueID,
		ExcludeUserID: userID,
	})
	if err != nil {
		h.logger.Warnw("failed to list typing users", "issue_id", issueID, "error", err)
		return
	}
	h.hub.SendTo(client, outboundTypingUsers, gin.H{"issue_id": issueID, "users": typing})
}

func (h *WSHandler) broadcastViewers(ctx context.Context, issueID uint) {
	viewers, err := h.listViewers.Execute(ctx, issueID)
	if err != nil {
		h.logger.Warnw("failed to list issue viewers", "issue_id", issueID, "error", err)
		return
	}
	h.hub.PushToIssue(issueID, outboundViewingUpdate, gin.H{"issue_id": issueID, "viewers": viewers})
}

func (h *WSHandler) handleIssueFrame(issueID, userID uint, raw []byte) {
	var msg inboundMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		h.logger.Debugw("ignoring malformed websocket frame", "user_id", userID, "issue_id", issueID)
		return
	}

	switch msg.Type {
	case inboundTypingStatus:
		var payload struct {
			IsTyping bool `json:"is_typing"`
		}
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return
		}
		err := h.setTyping.Execute(context.Background(), realtimeusecases.SetTypingCommand{
			IssueID:  issueID,
			UserID:   userID,
			IsTyping: payload.IsTyping,
		})
		if err != nil {
			h.logger.Warnw("websocket typing update failed", "user_id", userID, "issue_id", issueID, "error", err)
			return
		}
		h.hub.PushToIssue(issueID, outboundTypingUpdate, gin.H{
			"issue_id":  issueID,
			"user_id":   userID,
			"is_typing": payload.IsTyping,
		})
	default:
		h.logger.Debugw("ignoring unknown websocket message type", "user_id", userID, "issue_id", issueID, "type", msg.Type)
	}
}

// clearTyping stops a stale typing indicator when the socket drops
// mid-composition.
func (h *WSHandler) clearTyping(issueID, userID uint) {
	err := h.setTyping.Execute(context.Background(), realtimeusecases.SetTypingCommand{
		IssueID:  issueID,
		UserID:   userID,
		IsTyping: false,
	})
	if err != nil {
		h.logger.Debugw("failed to clear typing status", "user_id", userID, "issue_id", issueID, "error", err)
	}
	h.hub.PushToIssue(issueID, outboundTypingUpdate, gin.H{
		"issue_id":  issueID,
		"user_id":   userID,
		"is_typing": false,
	})
}
