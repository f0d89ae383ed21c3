package usecases

import (
	"context"

	"campusdesk/internal/application/issue/dto"
	"campusdesk/internal/domain/issue"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/sanitize"
)

type ResolveIssueCommand struct {
	IssueID uint
	Actor   Actor
	Notes   string
}

type ResolveIssueUseCase struct {
	issueRepo  issue.IssueRepository
	statusRepo issue.StatusRecordRepository
	txManager  TransactionManager
	publisher  EventPublisher
	logger     logger.Interface
}

func NewResolveIssueUseCase(
	issueRepo issue.IssueRepository,
	statusRepo issue.StatusRecordRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger logger.Interface,
) *ResolveIssueUseCase {
	return &ResolveIssueUseCase{
		issueRepo:  issueRepo,
		statusRepo: statusRepo,
		txManager:  txManager,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *ResolveIssueUseCase) Execute(ctx context.Context, cmd ResolveIssueCommand) (*dto.IssueDTO, error) {
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

	// Admins may resolve anything; faculty only what is assigned to them.
	if !cmd.Actor.IsAdmin() {
		if !cmd.Actor.IsFaculty() || iss.AssigneeID() == nil || *iss.AssigneeID() != cmd.Actor.ID {
			return nil, errors.NewForbiddenError("only the assigned faculty member can resolve this issue")
		}
	}

	notes := sanitize.Text(cmd.Notes)
	if err := iss.Resolve(cmd.Actor.ID, notes); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.issueRepo.Update(txCtx, iss); err != nil {
			return err
		}
		record, err := issue.NewStatusRecord(iss.ID(), iss.Status(), notes, cmd.Actor.ID)
		if err != nil {
			return errors.NewInternalError(err.Error())
		}
		return uc.statusRepo.Append(txCtx, record)
	})
	if err != nil {
		uc.logger.Errorw("failed to resolve issue", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	publishEvents(uc.publisher, uc.logger, iss, cmd.Actor.IP)
	uc.logger.Infow("issue resolved", "issue_id", iss.ID(), "actor_id", cmd.Actor.ID)
	return dto.ToIssueDTO(iss), nil
}
