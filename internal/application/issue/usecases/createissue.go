package usecases

import (
	"context"
	"time"

	"campusdesk/internal/domain/issue"
	vo "campusdesk/internal/domain/issue/valueobjects"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/sanitize"
)

type CreateIssueCommand struct {
	Title       string
	Description string
	Category    string
	Priority    string
	SubmitterID uint
	SubmitterIP string
}

type CreateIssueResult struct {
	IssueID   uint
	Status    string
	CreatedAt time.Time
}

type CreateIssueUseCase struct {
	issueRepo  issue.IssueRepository
	statusRepo issue.StatusRecordRepository
	txManager  TransactionManager
	publisher  EventPublisher
	logger     logger.Interface
}

func NewCreateIssueUseCase(
	issueRepo issue.IssueRepository,
	statusRepo issue.StatusRecordRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger logger.Interface,
) *CreateIssueUseCase {
	return &CreateIssueUseCase{
		issueRepo:  issueRepo,
		statusRepo: statusRepo,
		txManager:  txManager,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *CreateIssueUseCase) Execute(ctx context.Context, cmd CreateIssueCommand) (*CreateIssueResult, error) {
	uc.logger.Infow("executing create issue use case", "title", cmd.Title, "submitter_id", cmd.SubmitterID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create issue command", "error", err)
		return nil, err
	}

	newIssue, err := issue.NewIssue(
		sanitize.Text(cmd.Title),
		sanitize.Text(cmd.Description),
		vo.Category(cmd.Category),
		vo.Priority(cmd.Priority),
		cmd.SubmitterID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.issueRepo.Save(txCtx, newIssue); err != nil {
			return err
		}

		// The first history record mirrors the initial status so the
		// current-status invariant holds from creation on.
		record, err := issue.NewStatusRecord(newIssue.ID(), newIssue.Status(), "", cmd.SubmitterID)
		if err != nil {
			return errors.NewInternalError(err.Error())
		}
		return uc.statusRepo.Append(txCtx, record)
	})
	if err != nil {
		uc.logger.Errorw("failed to save issue", "error", err)
		return nil, err
	}

	newIssue.RecordCreated()
	publishEvents(uc.publisher, uc.logger, newIssue, cmd.SubmitterIP)

	uc.logger.Infow("issue created successfully", "issue_id", newIssue.ID())

	return &CreateIssueResult{
		IssueID:   newIssue.ID(),
		Status:    newIssue.Status().String(),
		CreatedAt: newIssue.CreatedAt(),
	}, nil
}

func (uc *CreateIssueUseCase) validateCommand(cmd CreateIssueCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Title) > 200 {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}
	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}
	if cmd.SubmitterID == 0 {
		return errors.NewValidationError("submitter ID is required")
	}
	if !vo.Category(cmd.Category).IsValid() {
		return errors.NewValidationError("invalid category")
	}
	if !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}
	return nil
}
