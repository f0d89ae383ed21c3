package usecases

import (
	"context"

	"campusdesk/internal/application/user/dto"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenUseCase struct {
	tokens TokenService
	logger logger.Interface
}

func NewRefreshTokenUseCase(tokens TokenService, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		tokens: tokens,
		logger: logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*dto.AuthResultDTO, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewValidationError("refresh token is required")
	}

	pair, err := uc.tokens.Refresh(cmd.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	return &dto.AuthResultDTO{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
