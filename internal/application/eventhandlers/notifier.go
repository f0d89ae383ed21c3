package eventhandlers

import (
	"context"
	"fmt"

	notificationdto "campusdesk/internal/application/notification/dto"
	"campusdesk/internal/domain/issue"
	"campusdesk/internal/domain/notification"
	notifvo "campusdesk/internal/domain/notification/valueobjects"
	"campusdesk/internal/domain/shared/events"
	"campusdesk/internal/domain/shared/ref"
	"campusdesk/internal/domain/user"
	uservo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/shared/logger"
)

// NotificationHandler fans domain events out to per-recipient
// notification rows and pushes them onto the recipients' broadcast
// groups. All failures are logged and swallowed; a notification fault
// never fails the triggering operation.
type NotificationHandler struct {
	notificationRepo notification.NotificationRepository
	userRepo         user.UserRepository
	pusher           RealtimePusher
	email            EmailSender
	logger           logger.Interface
}

func NewNotificationHandler(
	notificationRepo notification.NotificationRepository,
	userRepo user.UserRepository,
	pusher RealtimePusher,
	email EmailSender,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		pusher:           pusher,
		email:            email,
		logger:           logger,
	}
}

// HandleIssueCreated emails every active admin about the new issue.
// Submissions do not create in-app notification rows.
func (h *NotificationHandler) HandleIssueCreated(event events.DomainEvent) error {
	e, ok := event.(issue.IssueCreatedEvent)
	if !ok {
		return nil
	}
	ctx := context.Background()

	admins, err := h.userRepo.ListByRole(ctx, uservo.RoleAdmin)
	if err != nil {
		h.logger.Warnw("failed to list admins for new issue notice", "issue_id", e.IssueID, "error", err)
		return nil
	}

	subject := "New issue submitted"
	body := fmt.Sprintf("A new issue has been submitted: %s", e.Title)
	for _, admin := range admins {
		if !admin.IsActive() {
			continue
		}
		h.sendEmailTo(admin.Email(), subject, body)
	}
	return nil
}

func (h *NotificationHandler) HandleIssueAssigned(event events.DomainEvent) error {
	e, ok := event.(issue.IssueAssignedEvent)
	if !ok {
		return nil
	}
	ctx := context.Background()

	message := fmt.Sprintf("You have been assigned to issue: %s", e.Title)
	h.notify(ctx, e.AssigneeID, e.IssueID, message, notifvo.TypeIssueAssigned)
	h.sendEmail(ctx, e.AssigneeID, "Issue assigned to you", message)
	return nil
}

func (h *NotificationHandler) HandleIssueResolved(event events.DomainEvent) error {
	e, ok := event.(issue.IssueResolvedEvent)
	if !ok {
		return nil
	}
	// Resolving your own issue does not notify.
	if e.SubmitterID == e.ResolvedBy {
		return nil
	}
	ctx := context.Background()

	message := fmt.Sprintf("Your issue '%s' has been resolved", e.Title)
	h.notify(ctx, e.SubmitterID, e.IssueID, message, notifvo.TypeIssueResolved)
	h.sendEmail(ctx, e.SubmitterID, "Your issue has been resolved", message)
	return nil
}

func (h *NotificationHandler) HandleIssueEscalated(event events.DomainEvent) error {
	e, ok := event.(issue.IssueEscalatedEvent)
	if !ok {
		return nil
	}
	ctx := context.Background()

	admins, err := h.userRepo.ListByRole(ctx, uservo.RoleAdmin)
	if err != nil {
		h.logger.Warnw("failed to list admins for escalation notice", "issue_id", e.IssueID, "error", err)
		return nil
	}

	message := fmt.Sprintf("Issue escalated: %s", e.Title)
	for _, admin := range admins {
		if !admin.IsActive() {
			continue
		}
		h.notify(ctx, admin.ID(), e.IssueID, message, notifvo.TypeIssueEscalated)
	}
	return nil
}

func (h *NotificationHandler) HandleCommentAdded(event events.DomainEvent) error {
	e, ok := event.(issue.CommentAddedEvent)
	if !ok {
		return nil
	}
	ctx := context.Background()

	// Submitter and assignee, excluding the author, deduplicated.
	recipients := make(map[uint]struct{})
	if e.SubmitterID != e.AuthorID {
		recipients[e.SubmitterID] = struct{}{}
	}
	if e.AssigneeID != nil && *e.AssigneeID != e.AuthorID {
		recipients[*e.AssigneeID] = struct{}{}
	}

	message := fmt.Sprintf("New comment on issue: %s", e.IssueTitle)
	for recipientID := range recipients {
		h.notify(ctx, recipientID, e.IssueID, message, notifvo.TypeCommentAdded)
		h.sendEmail(ctx, recipientID, "New comment on your issue", message)
	}

	h.pusher.PushToIssue(e.IssueID, MessageTypeCommentAdded, map[string]interface{}{
		"issue_id":   e.IssueID,
		"comment_id": e.CommentID,
		"author_id":  e.AuthorID,
		"content":    e.Content,
	})
	return nil
}

func (h *NotificationHandler) HandleStatusChanged(event events.DomainEvent) error {
	e, ok := event.(issue.IssueStatusChangedEvent)
	if !ok {
		return nil
	}
	ctx := context.Background()

	h.pusher.PushToIssue(e.IssueID, MessageTypeStatusUpdated, map[string]interface{}{
		"issue_id":   e.IssueID,
		"old_status": e.OldStatus,
		"new_status": e.NewStatus,
		"changed_by": e.ChangedBy,
		"notes":      e.Notes,
	})

	// RESOLVED and ESCALATED carry their own richer notifications.
	if e.NewStatus == "RESOLVED" || e.NewStatus == "ESCALATED" {
		return nil
	}

	message := fmt.Sprintf("Issue '%s' status changed to %s", e.Title, e.NewStatus)
	if e.SubmitterID != e.ChangedBy {
		h.notify(ctx, e.SubmitterID, e.IssueID, message, notifvo.TypeStatusUpdated)
	}

	// Submitter and assignee get the email, the actor does not.
	recipients := make(map[uint]struct{})
	if e.SubmitterID != e.ChangedBy {
		recipients[e.SubmitterID] = struct{}{}
	}
	if e.AssigneeID != nil && *e.AssigneeID != e.ChangedBy {
		recipients[*e.AssigneeID] = struct{}{}
	}
	for recipientID := range recipients {
		h.sendEmail(ctx, recipientID, "Issue status updated", message)
	}
	return nil
}

func (h *NotificationHandler) notify(ctx context.Context, recipientID, issueID uint, message string, notifType notifvo.NotificationType) {
	target, err := ref.NewTargetRef(ref.EntityKindIssue, issueID)
	if err != nil {
		h.logger.Warnw("invalid notification target", "issue_id", issueID, "error", err)
		return
	}
	n, err := notification.NewNotification(recipientID, target, message, notifType)
	if err != nil {
		h.logger.Warnw("failed to build notification", "recipient_id", recipientID, "error", err)
		return
	}
	if err := h.notificationRepo.Create(ctx, n); err != nil {
		h.logger.Warnw("failed to create notification", "recipient_id", recipientID, "error", err)
		return
	}

	h.pusher.PushToUser(recipientID, MessageTypeNotification, notificationdto.ToNotificationDTO(n))

	count, err := h.notificationRepo.CountUnread(ctx, recipientID)
	if err != nil {
		h.logger.Warnw("failed to count unread notifications", "recipient_id", recipientID, "error", err)
		return
	}
	h.pusher.PushToUser(recipientID, MessageTypeUnreadCount, map[string]interface{}{"count": count})
}

func (h *NotificationHandler) sendEmail(ctx context.Context, recipientID uint, subject, body string) {
	if h.email == nil {
		return
	}
	recipient, err := h.userRepo.GetByID(ctx, recipientID)
	if err != nil || recipient == nil {
		h.logger.Warnw("failed to load email recipient", "recipient_id", recipientID, "error", err)
		return
	}
	h.sendEmailTo(recipient.Email(), subject, body)
}

func (h *NotificationHandler) sendEmailTo(address, subject, body string) {
	if h.email == nil {
		return
	}
	if err := h.email.Send(address, subject, body); err != nil {
		h.logger.Warnw("failed to send notification email", "recipient", address, "error", err)
	}
}
