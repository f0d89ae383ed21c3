package usecases

import (
	"context"

	"campusdesk/internal/application/user/dto"
	"campusdesk/internal/domain/shared/events"
)

// PasswordHasher abstracts the hashing scheme used for stored credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenService issues and refreshes signed authentication tokens.
type TokenService interface {
	Generate(userID uint, role string) (*TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, error)
}

// EventPublisher delivers domain events to the in-process dispatcher.
type EventPublisher interface {
	PublishAll(evts []events.DomainEvent) error
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResultDTO, error)
}

type LogoutExecutor interface {
	Execute(ctx context.Context, cmd LogoutCommand) error
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*dto.AuthResultDTO, error)
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*dto.UserDTO, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error)
}

type ChangePasswordExecutor interface {
	Execute(ctx context.Context, cmd ChangePasswordCommand) error
}

type ListFacultyExecutor interface {
	Execute(ctx context.Context) ([]dto.UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) ([]dto.UserDTO, int64, error)
}
