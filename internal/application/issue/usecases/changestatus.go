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

type ChangeStatusCommand struct {
	IssueID uint
	Actor   Actor
	Status  string
	Notes   string
}

type ChangeStatusUseCase struct {
	issueRepo  issue.IssueRepository
	statusRepo issue.StatusRecordRepository
	txManager  TransactionManager
	publisher  EventPublisher
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	issueRepo issue.IssueRepository,
	statusRepo issue.StatusRecordRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		issueRepo:  issueRepo,
		statusRepo: statusRepo,
		txManager:  txManager,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.StatusRecordDTO, error) {
	if cmd.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}
	next := vo.Status(cmd.Status)
	if !next.IsValid() {
		return nil, errors.NewValidationError("invalid status")
	}

	iss, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		return nil, err
	}
	if iss == nil {
		return nil, errors.NewNotFoundError("issue not found")
	}

	// Students cannot drive the workflow; submitters still read history.
	if !cmd.Actor.IsAdmin() && !cmd.Actor.IsFaculty() {
		return nil, errors.NewForbiddenError("only faculty and admins can change issue status")
	}
	if cmd.Actor.IsFaculty() && !cmd.Actor.IsAdmin() {
		if iss.AssigneeID() == nil || *iss.AssigneeID() != cmd.Actor.ID {
			return nil, errors.NewForbiddenError("only the assigned faculty member can change this issue's status")
		}
	}

	notes := sanitize.Text(cmd.Notes)
	if err := iss.ChangeStatus(next, cmd.Actor.ID, notes); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var record *issue.StatusRecord
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.issueRepo.Update(txCtx, iss); err != nil {
			return err
		}
		record, err = issue.NewStatusRecord(iss.ID(), next, notes, cmd.Actor.ID)
		if err != nil {
			return errors.NewInternalError(err.Error())
		}
		return uc.statusRepo.Append(txCtx, record)
	})
	if err != nil {
		uc.logger.Errorw("failed to change issue status", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	publishEvents(uc.publisher, uc.logger, iss, cmd.Actor.IP)
	uc.logger.Infow("issue status changed",
		"issue_id", iss.ID(),
		"status", next.String(),
		"actor_id", cmd.Actor.ID,
	)

	result := dto.ToStatusRecordDTO(record)
	return &result, nil
}
