package usecases

import (
	"context"
	"time"

	"campusdesk/internal/application/issue/dto"
	"campusdesk/internal/domain/issue"
	"campusdesk/internal/domain/shared/events"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/sanitize"
)

type AddCommentCommand struct {
	IssueID uint
	Actor   Actor
	Content string
}

type AddCommentUseCase struct {
	issueRepo   issue.IssueRepository
	commentRepo issue.CommentRepository
	publisher   EventPublisher
	logger      logger.Interface
}

func NewAddCommentUseCase(
	issueRepo issue.IssueRepository,
	commentRepo issue.CommentRepository,
	publisher EventPublisher,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		issueRepo:   issueRepo,
		commentRepo: commentRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	if cmd.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}
	content := sanitize.Text(cmd.Content)
	if content == "" {
		return nil, errors.NewValidationError("comment content is required")
	}

	iss, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		return nil, err
	}
	if iss == nil {
		return nil, errors.NewNotFoundError("issue not found")
	}
	if !iss.IsVisibleTo(cmd.Actor.ID, cmd.Actor.IsAdmin(), cmd.Actor.IsFaculty()) {
		return nil, errors.NewForbiddenError("you do not have access to this issue")
	}

	comment, err := issue.NewComment(cmd.IssueID, cmd.Actor.ID, content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	event := issue.StampActorIP(issue.NewCommentAddedEvent(
		iss.ID(),
		iss.Title(),
		comment.ID(),
		cmd.Actor.ID,
		iss.SubmitterID(),
		iss.AssigneeID(),
		content,
		time.Now(),
	), cmd.Actor.IP)
	if err := uc.publisher.PublishAll([]events.DomainEvent{event}); err != nil {
		uc.logger.Warnw("failed to publish comment added event", "error", err)
	}

	uc.logger.Infow("comment added", "issue_id", iss.ID(), "comment_id", comment.ID(), "author_id", cmd.Actor.ID)

	result := dto.ToCommentDTO(comment)
	return &result, nil
}
