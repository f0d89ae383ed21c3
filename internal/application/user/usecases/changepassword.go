package usecases

import (
	"context"

	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type ChangePasswordCommand struct {
	UserID          uint
	CurrentPassword string
	NewPassword     string
}

type ChangePasswordUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewChangePasswordUseCase(userRepo user.UserRepository, hasher PasswordHasher, logger logger.Interface) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if len(cmd.NewPassword) < minPasswordLength {
		return errors.NewValidationError("password must be at least 8 characters")
	}

	existing, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("user not found")
	}

	if err := uc.hasher.Verify(cmd.CurrentPassword, existing.PasswordHash()); err != nil {
		return errors.NewUnauthorizedError("current password is incorrect")
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return errors.NewInternalError("failed to process password")
	}
	if err := existing.ChangePasswordHash(hash); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return err
	}

	uc.logger.Infow("password changed", "user_id", existing.ID())
	return nil
}
