package usecases

import (
	"context"

	"campusdesk/internal/application/issue/dto"
	"campusdesk/internal/domain/issue"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type AssignIssueCommand struct {
	IssueID uint
	Actor   Actor
	// AssigneeID nil clears the current assignment.
	AssigneeID *uint
	Notes      string
}

type AssignIssueUseCase struct {
	issueRepo  issue.IssueRepository
	statusRepo issue.StatusRecordRepository
	userRepo   user.UserRepository
	txManager  TransactionManager
	publisher  EventPublisher
	logger     logger.Interface
}

func NewAssignIssueUseCase(
	issueRepo issue.IssueRepository,
	statusRepo issue.StatusRecordRepository,
	userRepo user.UserRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger logger.Interface,
) *AssignIssueUseCase {
	return &AssignIssueUseCase{
		issueRepo:  issueRepo,
		statusRepo: statusRepo,
		userRepo:   userRepo,
		txManager:  txManager,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *AssignIssueUseCase) Execute(ctx context.Context, cmd AssignIssueCommand) (*dto.IssueDTO, error) {
	if cmd.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}
	if !cmd.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can assign issues")
	}

	iss, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		return nil, err
	}
	if iss == nil {
		return nil, errors.NewNotFoundError("issue not found")
	}

	notes := cmd.Notes
	if cmd.AssigneeID != nil {
		assignee, err := uc.userRepo.GetByID(ctx, *cmd.AssigneeID)
		if err != nil {
			return nil, err
		}
		if assignee == nil {
			return nil, errors.NewNotFoundError("assignee not found")
		}
		if !assignee.Role().CanBeAssigned() {
			return nil, errors.NewValidationError("issues can only be assigned to faculty or admin users")
		}
		if !assignee.IsActive() {
			return nil, errors.NewValidationError("cannot assign issues to an inactive user")
		}
		if notes == "" {
			notes = "Assigned to " + assignee.FullName()
		}
	} else if notes == "" {
		notes = "Issue unassigned"
	}

	statusBefore := iss.Status()
	if err := iss.Assign(cmd.AssigneeID, cmd.Actor.ID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.issueRepo.Update(txCtx, iss); err != nil {
			return err
		}
		if iss.Status() == statusBefore {
			return nil
		}
		record, err := issue.NewStatusRecord(iss.ID(), iss.Status(), notes, cmd.Actor.ID)
		if err != nil {
			return errors.NewInternalError(err.Error())
		}
		return uc.statusRepo.Append(txCtx, record)
	})
	if err != nil {
		uc.logger.Errorw("failed to assign issue", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	publishEvents(uc.publisher, uc.logger, iss, cmd.Actor.IP)
	uc.logger.Infow("issue assignment updated",
		"issue_id", iss.ID(),
		"assignee_id", cmd.AssigneeID,
		"actor_id", cmd.Actor.ID,
	)
	return dto.ToIssueDTO(iss), nil
}
