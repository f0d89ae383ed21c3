package usecases

import (
	"context"
	"time"

	"campusdesk/internal/application/user/dto"
	"campusdesk/internal/domain/shared/events"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

type LoginUseCase struct {
	userRepo  user.UserRepository
	hasher    PasswordHasher
	tokens    TokenService
	publisher EventPublisher
	logger    logger.Interface
}

func NewLoginUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	tokens TokenService,
	publisher EventPublisher,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResultDTO, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, err
	}
	// Generic error so callers cannot probe which emails are registered.
	if existing == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}
	if !existing.IsActive() {
		return nil, errors.NewUnauthorizedError("account is deactivated")
	}
	if err := uc.hasher.Verify(cmd.Password, existing.PasswordHash()); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	pair, err := uc.tokens.Generate(existing.ID(), existing.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "user_id", existing.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate tokens")
	}

	event := user.NewUserLoggedInEvent(existing.ID(), existing.Email(), cmd.IPAddress, cmd.UserAgent, time.Now())
	if err := uc.publisher.PublishAll([]events.DomainEvent{event}); err != nil {
		uc.logger.Warnw("failed to publish login event", "user_id", existing.ID(), "error", err)
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID(), "role", existing.Role().String())

	return &dto.AuthResultDTO{
		User:         dto.ToUserDTO(existing),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
