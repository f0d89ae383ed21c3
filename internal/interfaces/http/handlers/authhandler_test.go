package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userdto "campusdesk/internal/application/user/dto"
	"campusdesk/internal/application/user/usecases"
	"campusdesk/internal/interfaces/http/handlers/testutil"
	"campusdesk/internal/shared/errors"
)

type mockRegisterUC struct {
	result *userdto.UserDTO
	err    error
}

func (m *mockRegisterUC) Execute(_ context.Context, _ usecases.RegisterCommand) (*userdto.UserDTO, error) {
	return m.result, m.err
}

type mockLoginUC struct {
	result *userdto.AuthResultDTO
	err    error
	gotCmd usecases.LoginCommand
}

func (m *mockLoginUC) Execute(_ context.Context, cmd usecases.LoginCommand) (*userdto.AuthResultDTO, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockRefreshUC struct {
	result *userdto.AuthResultDTO
	err    error
}

func (m *mockRefreshUC) Execute(_ context.Context, _ usecases.RefreshTokenCommand) (*userdto.AuthResultDTO, error) {
	return m.result, m.err
}

type mockLogoutUC struct {
	err error
}

func (m *mockLogoutUC) Execute(_ context.Context, _ usecases.LogoutCommand) error {
	return m.err
}

type authTestDeps struct {
	registerUC usecases.RegisterExecutor
	loginUC    usecases.LoginExecutor
	refreshUC  usecases.RefreshTokenExecutor
	logoutUC   usecases.LogoutExecutor
}

func newTestAuthHandler(deps authTestDeps) *AuthHandler {
	return NewAuthHandler(
		deps.registerUC,
		deps.loginUC,
		deps.refreshUC,
		deps.logoutUC,
		testutil.NewMockLogger(),
	)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	mockUC := &mockRegisterUC{
		result: &userdto.UserDTO{
			ID:        1,
			Email:     "student@university.edu",
			FirstName: "Ada",
			LastName:  "Lovelace",
			Role:      "STUDENT",
			IsActive:  true,
		},
	}
	handler := newTestAuthHandler(authTestDeps{registerUC: mockUC})

	reqBody := RegisterRequest{
		Email:     "student@university.edu",
		Password:  "correct-horse-battery",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", reqBody)

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestAuthHandler_Register_BindError(t *testing.T) {
	handler := newTestAuthHandler(authTestDeps{})

	reqBody := map[string]string{"email": "student@university.edu"}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", reqBody)

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	mockUC := &mockRegisterUC{err: errors.NewConflictError("email is already registered")}
	handler := newTestAuthHandler(authTestDeps{registerUC: mockUC})

	reqBody := RegisterRequest{
		Email:     "student@university.edu",
		Password:  "correct-horse-battery",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", reqBody)

	handler.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockUC := &mockLoginUC{
		result: &userdto.AuthResultDTO{
			User:         userdto.UserDTO{ID: 1, Email: "student@university.edu", Role: "STUDENT"},
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresIn:    3600,
		},
	}
	handler := newTestAuthHandler(authTestDeps{loginUC: mockUC})

	reqBody := LoginRequest{Email: "student@university.edu", Password: "correct-horse-battery"}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", reqBody)

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, mockUC.gotCmd.IPAddress)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockUC := &mockLoginUC{err: errors.NewUnauthorizedError("invalid email or password")}
	handler := newTestAuthHandler(authTestDeps{loginUC: mockUC})

	reqBody := LoginRequest{Email: "student@university.edu", Password: "wrong"}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", reqBody)

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	mockUC := &mockRefreshUC{
		result: &userdto.AuthResultDTO{
			AccessToken:  "new-access",
			RefreshToken: "refresh",
			ExpiresIn:    3600,
		},
	}
	handler := newTestAuthHandler(authTestDeps{refreshUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/refresh", RefreshRequest{RefreshToken: "refresh"})

	handler.Refresh(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_Refresh_BindError(t *testing.T) {
	handler := newTestAuthHandler(authTestDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/refresh", map[string]string{})

	handler.Refresh(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	handler := newTestAuthHandler(authTestDeps{logoutUC: &mockLogoutUC{}})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/logout", nil)
	testutil.SetAuthContext(c, 1, "STUDENT")

	handler.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
