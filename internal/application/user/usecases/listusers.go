package usecases

import (
	"context"

	"campusdesk/internal/application/user/dto"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type ListUsersQuery struct {
	Page     int
	PageSize int
}

type ListUsersUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.UserRepository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) ([]dto.UserDTO, int64, error) {
	page, pageSize := utils.ValidatePagination(query.Page, query.PageSize)

	users, total, err := uc.userRepo.List(ctx, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, 0, err
	}

	return dto.ToUserDTOs(users), total, nil
}
