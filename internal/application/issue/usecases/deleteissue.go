package usecases

import (
	"context"

	"campusdesk/internal/domain/issue"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type DeleteIssueCommand struct {
	IssueID uint
	Actor   Actor
}

type DeleteIssueUseCase struct {
	issueRepo issue.IssueRepository
	logger    logger.Interface
}

func NewDeleteIssueUseCase(issueRepo issue.IssueRepository, logger logger.Interface) *DeleteIssueUseCase {
	return &DeleteIssueUseCase{issueRepo: issueRepo, logger: logger}
}

func (uc *DeleteIssueUseCase) Execute(ctx context.Context, cmd DeleteIssueCommand) error {
	if cmd.IssueID == 0 {
		return errors.NewValidationError("issue ID is required")
	}

	iss, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		return err
	}
	if iss == nil {
		return errors.NewNotFoundError("issue not found")
	}

	if !cmd.Actor.IsAdmin() && iss.SubmitterID() != cmd.Actor.ID {
		return errors.NewForbiddenError("you cannot delete this issue")
	}

	// Status records, comments and attachments cascade with the issue.
	if err := uc.issueRepo.Delete(ctx, cmd.IssueID); err != nil {
		uc.logger.Errorw("failed to delete issue", "issue_id", cmd.IssueID, "error", err)
		return err
	}

	uc.logger.Infow("issue deleted", "issue_id", cmd.IssueID, "actor_id", cmd.Actor.ID)
	return nil
}
