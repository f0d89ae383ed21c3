package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

func TestRegisterUseCase_Execute_Success(t *testing.T) {
	var saved *user.User
	userRepo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			u.SetID(1)
			saved = u
			return nil
		},
	}

	uc := NewRegisterUseCase(userRepo, &mockHasher{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), RegisterCommand{
		Email:      "Sam.Okafor@Example.EDU",
		Password:   "long-enough-pass",
		FirstName:  "Sam",
		LastName:   "Okafor",
		Department: "Physics",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.ID)
	assert.Equal(t, "sam.okafor@example.edu", result.Email)
	assert.Equal(t, "STUDENT", result.Role, "role defaults to student")
	assert.Equal(t, "Sam Okafor", result.FullName)
	assert.True(t, result.IsActive)

	require.NotNil(t, saved)
	assert.Equal(t, "hashed:long-enough-pass", saved.PasswordHash())
}

func TestRegisterUseCase_Execute_DuplicateEmail(t *testing.T) {
	userRepo := &mockUserRepository{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) { return true, nil },
	}

	uc := NewRegisterUseCase(userRepo, &mockHasher{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Email:     "sam@example.edu",
		Password:  "long-enough-pass",
		FirstName: "Sam",
		LastName:  "Okafor",
	})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestRegisterUseCase_Execute_AdminSelfRegistrationForbidden(t *testing.T) {
	uc := NewRegisterUseCase(&mockUserRepository{}, &mockHasher{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Email:     "sam@example.edu",
		Password:  "long-enough-pass",
		FirstName: "Sam",
		LastName:  "Okafor",
		Role:      "ADMIN",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestRegisterUseCase_Execute_Validation(t *testing.T) {
	uc := NewRegisterUseCase(&mockUserRepository{}, &mockHasher{}, logger.NewLogger())

	tests := []struct {
		name string
		cmd  RegisterCommand
	}{
		{
			name: "missing email",
			cmd:  RegisterCommand{Password: "long-enough-pass", FirstName: "Sam", LastName: "Okafor"},
		},
		{
			name: "short password",
			cmd:  RegisterCommand{Email: "sam@example.edu", Password: "short", FirstName: "Sam", LastName: "Okafor"},
		},
		{
			name: "missing name",
			cmd:  RegisterCommand{Email: "sam@example.edu", Password: "long-enough-pass"},
		},
		{
			name: "invalid role",
			cmd:  RegisterCommand{Email: "sam@example.edu", Password: "long-enough-pass", FirstName: "Sam", LastName: "Okafor", Role: "WIZARD"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
