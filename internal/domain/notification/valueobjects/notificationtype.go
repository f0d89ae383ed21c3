package valueobjects

type NotificationType string

const (
	TypeIssueCreated   NotificationType = "ISSUE_CREATED"
	TypeIssueAssigned  NotificationType = "ISSUE_ASSIGNED"
	TypeStatusUpdated  NotificationType = "STATUS_UPDATED"
	TypeCommentAdded   NotificationType = "COMMENT_ADDED"
	TypeIssueEscalated NotificationType = "ISSUE_ESCALATED"
	TypeIssueResolved  NotificationType = "ISSUE_RESOLVED"
)

var validNotificationTypes = map[NotificationType]bool{
	TypeIssueCreated:   true,
	TypeIssueAssigned:  true,
	TypeStatusUpdated:  true,
	TypeCommentAdded:   true,
	TypeIssueEscalated: true,
	TypeIssueResolved:  true,
}

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	return validNotificationTypes[t]
}
