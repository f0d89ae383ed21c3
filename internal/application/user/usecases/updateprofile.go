package usecases

import (
	"context"

	"campusdesk/internal/application/user/dto"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/sanitize"
)

type UpdateProfileCommand struct {
	UserID     uint
	FirstName  string
	LastName   string
	Department string
}

type UpdateProfileUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.UserRepository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	existing, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if err := existing.UpdateProfile(
		sanitize.Text(cmd.FirstName),
		sanitize.Text(cmd.LastName),
		sanitize.Text(cmd.Department),
	); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("profile updated", "user_id", existing.ID())

	result := dto.ToUserDTO(existing)
	return &result, nil
}
