package usecases

import (
	"context"

	"campusdesk/internal/application/user/dto"
	"campusdesk/internal/domain/user"
	vo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/sanitize"
	"campusdesk/internal/shared/utils"
)

const minPasswordLength = 8

type RegisterCommand struct {
	Email      string
	Password   string
	FirstName  string
	LastName   string
	Role       string
	Department string
}

type RegisterUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo user.UserRepository, hasher PasswordHasher, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	role := vo.RoleStudent
	if cmd.Role != "" {
		role = vo.Role(cmd.Role)
	}
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role")
	}
	// Admin accounts are provisioned by existing admins, never self-registered.
	if role.IsAdmin() {
		return nil, errors.NewForbiddenError("cannot self-register as an admin")
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(
		cmd.Email,
		hash,
		sanitize.Text(cmd.FirstName),
		sanitize.Text(cmd.LastName),
		role,
		sanitize.Text(cmd.Department),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to save user", "email", utils.MaskEmail(cmd.Email), "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "role", role.String())

	result := dto.ToUserDTO(newUser)
	return &result, nil
}

func (uc *RegisterUseCase) validateCommand(cmd RegisterCommand) error {
	if cmd.Email == "" {
		return errors.NewValidationError("email is required")
	}
	if len(cmd.Password) < minPasswordLength {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	if cmd.FirstName == "" || cmd.LastName == "" {
		return errors.NewValidationError("first and last name are required")
	}
	return nil
}
