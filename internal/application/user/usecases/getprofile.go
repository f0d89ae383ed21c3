package usecases

import (
	"context"

	"campusdesk/internal/application/user/dto"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type GetProfileQuery struct {
	UserID uint
}

type GetProfileUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.UserRepository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*dto.UserDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	existing, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", query.UserID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	result := dto.ToUserDTO(existing)
	return &result, nil
}
