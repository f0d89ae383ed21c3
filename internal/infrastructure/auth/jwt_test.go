package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 60, 7)

	pair, err := svc.Generate(42, "FACULTY")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(3600), pair.ExpiresIn)

	claims, err := svc.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "FACULTY", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestJWTService_RefreshTokenRejectedAsAccess(t *testing.T) {
	svc := NewJWTService("test-secret", 60, 7)

	pair, err := svc.Generate(42, "STUDENT")
	require.NoError(t, err)

	_, err = svc.VerifyAccess(pair.RefreshToken)
	assert.Error(t, err)
}

func TestJWTService_RefreshAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", 60, 7)

	pair, err := svc.Generate(7, "ADMIN")
	require.NoError(t, err)

	refreshClaims, err := svc.Verify(pair.RefreshToken)
	require.NoError(t, err)

	access, err := svc.RefreshAccessToken(refreshClaims)
	require.NoError(t, err)

	claims, err := svc.VerifyAccess(access)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestJWTService_RefreshRequiresRefreshToken(t *testing.T) {
	svc := NewJWTService("test-secret", 60, 7)

	pair, err := svc.Generate(7, "ADMIN")
	require.NoError(t, err)

	accessClaims, err := svc.Verify(pair.AccessToken)
	require.NoError(t, err)

	_, err = svc.RefreshAccessToken(accessClaims)
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret", 60, 7)
	other := NewJWTService("other-secret", 60, 7)

	pair, err := svc.Generate(1, "STUDENT")
	require.NoError(t, err)

	_, err = other.Verify(pair.AccessToken)
	assert.Error(t, err)
}

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	require.NoError(t, hasher.Verify("s3cret-pass", hash))
	assert.Error(t, hasher.Verify("wrong-pass", hash))
}
