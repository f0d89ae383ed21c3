package usecases

import (
	"context"

	"campusdesk/internal/application/issue/dto"
	"campusdesk/internal/domain/issue"
	"campusdesk/internal/domain/shared/events"
	"campusdesk/internal/shared/logger"
)

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher publishes domain events after successful store writes.
type EventPublisher interface {
	PublishAll(events []events.DomainEvent) error
}

// eventRecorder is implemented by aggregates that collect domain events.
type eventRecorder interface {
	DomainEvents() []events.DomainEvent
	ClearDomainEvents()
}

// publishEvents drains, stamps with the actor's client address, and
// publishes recorded events. Publishing is best-effort; a full
// dispatcher queue must not fail the operation.
func publishEvents(publisher EventPublisher, log logger.Interface, rec eventRecorder, actorIP string) {
	evts := rec.DomainEvents()
	if len(evts) == 0 {
		return
	}
	stamped := make([]events.DomainEvent, len(evts))
	for i, e := range evts {
		stamped[i] = issue.StampActorIP(e, actorIP)
	}
	if err := publisher.PublishAll(stamped); err != nil {
		log.Warnw("failed to publish domain events", "error", err, "count", len(stamped))
	}
	rec.ClearDomainEvents()
}

type CreateIssueExecutor interface {
	Execute(ctx context.Context, cmd CreateIssueCommand) (*CreateIssueResult, error)
}

type GetIssueExecutor interface {
	Execute(ctx context.Context, query GetIssueQuery) (*dto.IssueDTO, error)
}

type ListIssuesExecutor interface {
	Execute(ctx context.Context, query ListIssuesQuery) (*ListIssuesResult, error)
}

type UpdateIssueExecutor interface {
	Execute(ctx context.Context, cmd UpdateIssueCommand) (*dto.IssueDTO, error)
}

type DeleteIssueExecutor interface {
	Execute(ctx context.Context, cmd DeleteIssueCommand) error
}

type AssignIssueExecutor interface {
	Execute(ctx context.Context, cmd AssignIssueCommand) (*dto.IssueDTO, error)
}

type ResolveIssueExecutor interface {
	Execute(ctx context.Context, cmd ResolveIssueCommand) (*dto.IssueDTO, error)
}

type EscalateIssueExecutor interface {
	Execute(ctx context.Context, cmd EscalateIssueCommand) (*dto.IssueDTO, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.StatusRecordDTO, error)
}

type GetStatusHistoryExecutor interface {
	Execute(ctx context.Context, query GetStatusHistoryQuery) ([]dto.StatusRecordDTO, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error)
}

type AddAttachmentExecutor interface {
	Execute(ctx context.Context, cmd AddAttachmentCommand) (*dto.AttachmentDTO, error)
}

type ListAttachmentsExecutor interface {
	Execute(ctx context.Context, query ListAttachmentsQuery) ([]dto.AttachmentDTO, error)
}
