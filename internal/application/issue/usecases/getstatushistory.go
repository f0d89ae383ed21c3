package usecases

import (
	"context"

	"campusdesk/internal/application/issue/dto"
	"campusdesk/internal/domain/issue"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type GetStatusHistoryQuery struct {
	IssueID uint
	Actor   Actor
}

type GetStatusHistoryUseCase struct {
	issueRepo  issue.IssueRepository
	statusRepo issue.StatusRecordRepository
	logger     logger.Interface
}

func NewGetStatusHistoryUseCase(
	issueRepo issue.IssueRepository,
	statusRepo issue.StatusRecordRepository,
	logger logger.Interface,
) *GetStatusHistoryUseCase {
	return &GetStatusHistoryUseCase{
		issueRepo:  issueRepo,
		statusRepo: statusRepo,
		logger:     logger,
	}
}

func (uc *GetStatusHistoryUseCase) Execute(ctx context.Context, query GetStatusHistoryQuery) ([]dto.StatusRecordDTO, error) {
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

	records, err := uc.statusRepo.GetByIssueID(ctx, query.IssueID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.StatusRecordDTO, 0, len(records))
	for _, r := range records {
		result = append(result, dto.ToStatusRecordDTO(r))
	}
	return result, nil
}
