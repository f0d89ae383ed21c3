package usecases

import (
	"context"

	"campusdesk/internal/application/issue/dto"
	"campusdesk/internal/domain/issue"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type GetIssueQuery struct {
	IssueID uint
	Actor   Actor
}

type GetIssueUseCase struct {
	issueRepo issue.IssueRepository
	userRepo  user.UserRepository
	logger    logger.Interface
}

func NewGetIssueUseCase(
	issueRepo issue.IssueRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *GetIssueUseCase {
	return &GetIssueUseCase{
		issueRepo: issueRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *GetIssueUseCase) Execute(ctx context.Context, query GetIssueQuery) (*dto.IssueDTO, error) {
	if query.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}

	iss, err := uc.issueRepo.GetByID(ctx, query.IssueID)
	if err != nil {
		return nil, err
	}
	if iss == nil {
		return nil, errors.NewNotFoundError("issue not found")
	}

	if !iss.IsVisibleTo(query.Actor.ID, query.Actor.IsAdmin(), query.Actor.IsFaculty()) {
		return nil, errors.NewForbiddenError("you do not have access to this issue")
	}

	result := dto.ToIssueDTO(iss)
	uc.decorateNames(ctx, result)
	return result, nil
}

// decorateNames fills submitter and assignee display names. Lookup
// failures are tolerated; the DTO just ships without names.
func (uc *GetIssueUseCase) decorateNames(ctx context.Context, d *dto.IssueDTO) {
	ids := []uint{d.SubmitterID}
	if d.AssigneeID != nil {
		ids = append(ids, *d.AssigneeID)
	}

	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Warnw("failed to load user names for issue", "issue_id", d.ID, "error", err)
		return
	}

	for _, u := range users {
		if u.ID() == d.SubmitterID {
			d.SubmitterName = u.FullName()
		}
		if d.AssigneeID != nil && u.ID() == *d.AssigneeID {
			d.AssigneeName = u.FullName()
		}
	}
}
