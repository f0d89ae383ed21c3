package usecases

import (
	"context"

	"campusdesk/internal/application/issue/dto"
	"campusdesk/internal/domain/issue"
	vo "campusdesk/internal/domain/issue/valueobjects"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/sanitize"
)

type UpdateIssueCommand struct {
	IssueID     uint
	Actor       Actor
	Title       string
	Description string
	Category    string
	Priority    string
}

type UpdateIssueUseCase struct {
	issueRepo issue.IssueRepository
	publisher EventPublisher
	logger    logger.Interface
}

func NewUpdateIssueUseCase(
	issueRepo issue.IssueRepository,
	publisher EventPublisher,
	logger logger.Interface,
) *UpdateIssueUseCase {
	return &UpdateIssueUseCase{
		issueRepo: issueRepo,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *UpdateIssueUseCase) Execute(ctx context.Context, cmd UpdateIssueCommand) (*dto.IssueDTO, error) {
	if cmd.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}

	iss, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		return nil, err
	}
	if iss == nil {
		return nil, errors.NewNotFoundError("issue not found")
	}

	// Only the submitter or an admin may edit issue details.
	if !cmd.Actor.IsAdmin() && iss.SubmitterID() != cmd.Actor.ID {
		return nil, errors.NewForbiddenError("you cannot edit this issue")
	}

	if err := iss.UpdateDetails(
		sanitize.Text(cmd.Title),
		sanitize.Text(cmd.Description),
		vo.Category(cmd.Category),
		vo.Priority(cmd.Priority),
	); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.issueRepo.Update(ctx, iss); err != nil {
		uc.logger.Errorw("failed to update issue", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	publishEvents(uc.publisher, uc.logger, iss, cmd.Actor.IP)
	uc.logger.Infow("issue updated", "issue_id", iss.ID(), "actor_id", cmd.Actor.ID)
	return dto.ToIssueDTO(iss), nil
}
