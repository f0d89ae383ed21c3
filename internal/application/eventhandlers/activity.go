package eventhandlers

import (
	"context"

	analyticsusecases "campusdesk/internal/application/analytics/usecases"
	"campusdesk/internal/domain/analytics"
	"campusdesk/internal/domain/issue"
	"campusdesk/internal/domain/shared/events"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/logger"
)

// ActivityHandler feeds the analytics activity log from domain events.
type ActivityHandler struct {
	record *analyticsusecases.RecordActivityUseCase
	logger logger.Interface
}

func NewActivityHandler(record *analyticsusecases.RecordActivityUseCase, logger logger.Interface) *ActivityHandler {
	return &ActivityHandler{
		record: record,
		logger: logger,
	}
}

func (h *ActivityHandler) HandleIssueCreated(event events.DomainEvent) error {
	e, ok := event.(issue.IssueCreatedEvent)
	if !ok {
		return nil
	}
	h.append(e.SubmitterID, analytics.ActivityIssueCreate, &e.IssueID, nil)
	return nil
}

func (h *ActivityHandler) HandleIssueAssigned(event events.DomainEvent) error {
	e, ok := event.(issue.IssueAssignedEvent)
	if !ok {
		return nil
	}
	h.append(e.AssignedBy, analytics.ActivityAssignment, &e.IssueID, map[string]interface{}{
		"assignee_id": e.AssigneeID,
	})
	return nil
}

func (h *ActivityHandler) HandleStatusChanged(event events.DomainEvent) error {
	e, ok := event.(issue.IssueStatusChangedEvent)
	if !ok {
		return nil
	}
	h.append(e.ChangedBy, analytics.ActivityStatusChange, &e.IssueID, map[string]interface{}{
		"old_status": e.OldStatus,
		"new_status": e.NewStatus,
	})
	return nil
}

func (h *ActivityHandler) HandleCommentAdded(event events.DomainEvent) error {
	e, ok := event.(issue.CommentAddedEvent)
	if !ok {
		return nil
	}
	h.append(e.AuthorID, analytics.ActivityCommentAdd, &e.IssueID, nil)
	return nil
}

func (h *ActivityHandler) HandleUserLoggedIn(event events.DomainEvent) error {
	e, ok := event.(user.UserLoggedInEvent)
	if !ok {
		return nil
	}
	h.appendWithContext(e.UserID, analytics.ActivityLogin, e.IP, e.UserAgent)
	return nil
}

func (h *ActivityHandler) HandleUserLoggedOut(event events.DomainEvent) error {
	e, ok := event.(user.UserLoggedOutEvent)
	if !ok {
		return nil
	}
	h.appendWithContext(e.UserID, analytics.ActivityLogout, e.IP, e.UserAgent)
	return nil
}

func (h *ActivityHandler) append(userID uint, activityType analytics.ActivityType, issueID *uint, details map[string]interface{}) {
	err := h.record.Execute(context.Background(), analyticsusecases.RecordActivityCommand{
		UserID:       userID,
		ActivityType: activityType,
		IssueID:      issueID,
		Details:      details,
	})
	if err != nil {
		h.logger.Warnw("failed to record activity", "activity_type", activityType.String(), "error", err)
	}
}

func (h *ActivityHandler) appendWithContext(userID uint, activityType analytics.ActivityType, ip, userAgent string) {
	err := h.record.Execute(context.Background(), analyticsusecases.RecordActivityCommand{
		UserID:       userID,
		ActivityType: activityType,
		IP:           ip,
		UserAgent:    userAgent,
	})
	if err != nil {
		h.logger.Warnw("failed to record activity", "activity_type", activityType.String(), "error", err)
	}
}
