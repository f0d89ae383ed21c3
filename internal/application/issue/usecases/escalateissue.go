package usecases

import (
	"context"

	"campusdesk/internal/application/issue/dto"
	"campusdesk/internal/domain/issue"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/sanitize"
)

type EscalateIssueCommand struct {
	IssueID uint
	Actor   Actor
	Notes   string
}

type EscalateIssueUseCase struct {
	issueRepo  issue.IssueRepository
	statusRepo issue.StatusRecordRepository
	txManager  TransactionManager
	publisher  EventPublisher
	logger     logger.Interface
}

func NewEscalateIssueUseCase(
	issueRepo issue.IssueRepository,
	statusRepo issue.StatusRecordRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger logger.Interface,
) *EscalateIssueUseCase {
	return &EscalateIssueUseCase{
		issueRepo:  issueRepo,
		statusRepo: statusRepo,
		txManager:  txManager,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *EscalateIssueUseCase) Execute(ctx context.Context, cmd EscalateIssueCommand) (*dto.IssueDTO, error) {
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

	// Any participant can escalate: the submitter, the assignee, or an admin.
	if !iss.IsVisibleTo(cmd.Actor.ID, cmd.Actor.IsAdmin(), cmd.Actor.IsFaculty()) {
		return nil, errors.NewForbiddenError("you do not have access to this issue")
	}

	notes := sanitize.Text(cmd.Notes)
	if err := iss.Escalate(cmd.Actor.ID, notes); err != nil {
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
		uc.logger.Errorw("failed to escalate issue", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	publishEvents(uc.publisher, uc.logger, iss, cmd.Actor.IP)
	uc.logger.Infow("issue escalated", "issue_id", iss.ID(), "actor_id", cmd.Actor.ID)
	return dto.ToIssueDTO(iss), nil
}
