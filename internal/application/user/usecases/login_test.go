package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/user"
	uservo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

func reconstructTestUser(t *testing.T, id uint, role uservo.Role, active bool) *user.User {
	t.Helper()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	u, err := user.ReconstructUser(
		id,
		"jordan@example.edu",
		"hashed:correct-password",
		"Jordan",
		"Lee",
		role,
		"Mathematics",
		active,
		now, now,
	)
	require.NoError(t, err)
	return u
}

func TestLoginUseCase_Execute_Success(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return reconstructTestUser(t, 5, uservo.RoleStudent, true), nil
		},
	}
	publisher := &mockPublisher{}

	uc := NewLoginUseCase(userRepo, &mockHasher{}, &mockTokenService{}, publisher, logger.NewLogger())

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "jordan@example.edu",
		Password: "correct-password",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(5), result.User.ID)
	assert.Equal(t, "access", result.AccessToken)
	assert.Equal(t, "refresh", result.RefreshToken)
	assert.Equal(t, int64(3600), result.ExpiresIn)

	assert.Contains(t, publisher.eventTypes(), user.EventTypeUserLoggedIn)
}

func TestLoginUseCase_Execute_WrongPassword(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return reconstructTestUser(t, 5, uservo.RoleStudent, true), nil
		},
	}
	publisher := &mockPublisher{}

	uc := NewLoginUseCase(userRepo, &mockHasher{}, &mockTokenService{}, publisher, logger.NewLogger())

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "jordan@example.edu",
		Password: "wrong-password",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	assert.Empty(t, publisher.published)
}

func TestLoginUseCase_Execute_UnknownEmailGenericError(t *testing.T) {
	uc := NewLoginUseCase(&mockUserRepository{}, &mockHasher{}, &mockTokenService{}, &mockPublisher{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "nobody@example.edu",
		Password: "whatever-pass",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "invalid email or password", appErr.Message)
}

func TestLoginUseCase_Execute_DeactivatedAccount(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return reconstructTestUser(t, 5, uservo.RoleStudent, false), nil
		},
	}

	uc := NewLoginUseCase(userRepo, &mockHasher{}, &mockTokenService{}, &mockPublisher{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "jordan@example.edu",
		Password: "correct-password",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestLogoutUseCase_Execute_PublishesEvent(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return reconstructTestUser(t, id, uservo.RoleFaculty, true), nil
		},
	}
	publisher := &mockPublisher{}

	uc := NewLogoutUseCase(userRepo, publisher, logger.NewLogger())

	err := uc.Execute(context.Background(), LogoutCommand{UserID: 7})
	require.NoError(t, err)
	assert.Contains(t, publisher.eventTypes(), user.EventTypeUserLoggedOut)
}
