package eventhandlers

import (
	"context"
	"fmt"

	auditusecases "campusdesk/internal/application/audit/usecases"
	auditvo "campusdesk/internal/domain/audit/valueobjects"
	"campusdesk/internal/domain/issue"
	"campusdesk/internal/domain/shared/events"
	"campusdesk/internal/domain/shared/ref"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/logger"
)

// AuditHandler writes one audit trail entry per domain event.
type AuditHandler struct {
	record *auditusecases.RecordEntryUseCase
	logger logger.Interface
}

func NewAuditHandler(record *auditusecases.RecordEntryUseCase, logger logger.Interface) *AuditHandler {
	return &AuditHandler{
		record: record,
		logger: logger,
	}
}

func (h *AuditHandler) HandleIssueCreated(event events.DomainEvent) error {
	e, ok := event.(issue.IssueCreatedEvent)
	if !ok {
		return nil
	}
	h.append(auditusecases.RecordEntryCommand{
		ActorID:    ptr(e.SubmitterID),
		Action:     auditvo.ActionCreate,
		Target:     issueTarget(e.IssueID),
		ObjectRepr: e.Title,
		IP:         e.IP,
		Details: map[string]interface{}{
			"category": e.Category,
			"priority": e.Priority,
		},
	})
	return nil
}

func (h *AuditHandler) HandleIssueAssigned(event events.DomainEvent) error {
	e, ok := event.(issue.IssueAssignedEvent)
	if !ok {
		return nil
	}
	h.append(auditusecases.RecordEntryCommand{
		ActorID:    ptr(e.AssignedBy),
		Action:     auditvo.ActionAssign,
		Target:     issueTarget(e.IssueID),
		ObjectRepr: e.Title,
		IP:         e.IP,
		Details: map[string]interface{}{
			"assignee_id": e.AssigneeID,
		},
	})
	return nil
}

func (h *AuditHandler) HandleStatusChanged(event events.DomainEvent) error {
	e, ok := event.(issue.IssueStatusChangedEvent)
	if !ok {
		return nil
	}
	h.append(auditusecases.RecordEntryCommand{
		ActorID:    ptr(e.ChangedBy),
		Action:     auditvo.ActionStatusChange,
		Target:     issueTarget(e.IssueID),
		ObjectRepr: e.Title,
		IP:         e.IP,
		Details: map[string]interface{}{
			"old_status": e.OldStatus,
			"new_status": e.NewStatus,
			"notes":      e.Notes,
		},
	})
	return nil
}

func (h *AuditHandler) HandleCommentAdded(event events.DomainEvent) error {
	e, ok := event.(issue.CommentAddedEvent)
	if !ok {
		return nil
	}
	target, err := ref.NewTargetRef(ref.EntityKindComment, e.CommentID)
	if err != nil {
		return nil
	}
	h.append(auditusecases.RecordEntryCommand{
		ActorID:    ptr(e.AuthorID),
		Action:     auditvo.ActionComment,
		Target:     target,
		ObjectRepr: fmt.Sprintf("comment on issue: %s", e.IssueTitle),
		IP:         e.IP,
		Details: map[string]interface{}{
			"issue_id": e.IssueID,
		},
	})
	return nil
}

func (h *AuditHandler) HandleUserLoggedIn(event events.DomainEvent) error {
	e, ok := event.(user.UserLoggedInEvent)
	if !ok {
		return nil
	}
	h.append(auditusecases.RecordEntryCommand{
		ActorID:    ptr(e.UserID),
		Action:     auditvo.ActionLogin,
		Target:     userTarget(e.UserID),
		ObjectRepr: e.Email,
		IP:         e.IP,
		Details: map[string]interface{}{
			"user_agent": e.UserAgent,
		},
	})
	return nil
}

func (h *AuditHandler) HandleUserLoggedOut(event events.DomainEvent) error {
	e, ok := event.(user.UserLoggedOutEvent)
	if !ok {
		return nil
	}
	h.append(auditusecases.RecordEntryCommand{
		ActorID:    ptr(e.UserID),
		Action:     auditvo.ActionLogout,
		Target:     userTarget(e.UserID),
		ObjectRepr: e.Email,
		IP:         e.IP,
	})
	return nil
}

func (h *AuditHandler) append(cmd auditusecases.RecordEntryCommand) {
	if err := h.record.Execute(context.Background(), cmd); err != nil {
		h.logger.Warnw("failed to record audit entry", "action", cmd.Action.String(), "error", err)
	}
}

func issueTarget(issueID uint) ref.TargetRef {
	target, _ := ref.NewTargetRef(ref.EntityKindIssue, issueID)
	return target
}

func userTarget(userID uint) ref.TargetRef {
	target, _ := ref.NewTargetRef(ref.EntityKindUser, userID)
	return target
}

func ptr(id uint) *uint {
	return &id
}
