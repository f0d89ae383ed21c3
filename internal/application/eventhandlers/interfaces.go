package eventhandlers

// RealtimePusher publishes envelopes onto the broadcast groups backing
// the WebSocket surface. Delivery is best effort and non-blocking.
type RealtimePusher interface {
	PushToUser(userID uint, messageType string, payload interface{})
	PushToIssue(issueID uint, messageType string, payload interface{})
}

// EmailSender delivers transactional mail. Implementations may be
// disabled by configuration, in which case sends are no-ops.
type EmailSender interface {
	Send(to, subject, body string) error
}

// Envelope type discriminators shared with the WebSocket surface.
const (
	MessageTypeNotification  = "notification_message"
	MessageTypeUnreadCount   = "unread_count"
	MessageTypeCommentAdded  = "comment_added"
	MessageTypeStatusUpdated = "status_updated"
)
