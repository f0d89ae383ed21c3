// Package adapters bridges infrastructure services onto the interfaces
// the application layer consumes.
package adapters

import (
	"fmt"

	"campusdesk/internal/application/user/usecases"
	"campusdesk/internal/infrastructure/auth"
)

// TokenService adapts the JWT service to the application token contract.
type TokenService struct {
	jwt *auth.JWTService
}

func NewTokenService(jwt *auth.JWTService) *TokenService {
	return &TokenService{jwt: jwt}
}

func (s *TokenService) Generate(userID uint, role string) (*usecases.TokenPair, error) {
	pair, err := s.jwt.Generate(userID, role)
	if err != nil {
		return nil, err
	}
	return &usecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// Refresh issues a new access token. The refresh token itself is
// returned unchanged; rotation happens only at login.
func (s *TokenService) Refresh(refreshToken string) (*usecases.TokenPair, error) {
	claims, err := s.jwt.Verify(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	accessToken, err := s.jwt.RefreshAccessToken(claims)
	if err != nil {
		return nil, err
	}

	return &usecases.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwt.AccessExpMinutes() * 60),
	}, nil
}
