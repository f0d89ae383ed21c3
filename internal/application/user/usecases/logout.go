package usecases

import (
	"context"
	"time"

	"campusdesk/internal/domain/shared/events"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type LogoutCommand struct {
	UserID    uint
	IPAddress string
	UserAgent string
}

type LogoutUseCase struct {
	userRepo  user.UserRepository
	publisher EventPublisher
	logger    logger.Interface
}

func NewLogoutUseCase(userRepo user.UserRepository, publisher EventPublisher, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		userRepo:  userRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute records the logout for auditing and presence. Tokens are stateless,
// expiry is the only revocation.
func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	existing, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("user not found")
	}

	event := user.NewUserLoggedOutEvent(existing.ID(), existing.Email(), cmd.IPAddress, cmd.UserAgent, time.Now())
	if err := uc.publisher.PublishAll([]events.DomainEvent{event}); err != nil {
		uc.logger.Warnw("failed to publish logout event", "user_id", existing.ID(), "error", err)
	}

	uc.logger.Infow("user logged out", "user_id", existing.ID())
	return nil
}
