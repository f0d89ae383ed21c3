package usecases

import (
	"context"

	"campusdesk/internal/application/callback/dto"
	"campusdesk/internal/domain/callback"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type ListCallsQuery struct {
	Page     int
	PageSize int
}

type ListCallsUseCase struct {
	callRepo callback.APICallRepository
	logger   logger.Interface
}

func NewListCallsUseCase(callRepo callback.APICallRepository, logger logger.Interface) *ListCallsUseCase {
	return &ListCallsUseCase{
		callRepo: callRepo,
		logger:   logger,
	}
}

func (uc *ListCallsUseCase) Execute(ctx context.Context, query ListCallsQuery) ([]dto.APICallDTO, int64, error) {
	page, pageSize := utils.ValidatePagination(query.Page, query.PageSize)

	calls, total, err := uc.callRepo.List(ctx, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list api calls", "error", err)
		return nil, 0, err
	}
	return dto.ToAPICallDTOs(calls), total, nil
}
