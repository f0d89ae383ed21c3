package usecases

import (
	"context"

	"campusdesk/internal/application/notification/dto"
	"campusdesk/internal/domain/notification"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

const defaultRecentLimit = 10

type GetRecentQuery struct {
	RecipientID uint
	Limit       int
}

type GetRecentUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewGetRecentUseCase(notificationRepo notification.NotificationRepository, logger logger.Interface) *GetRecentUseCase {
	return &GetRecentUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *GetRecentUseCase) Execute(ctx context.Context, query GetRecentQuery) ([]dto.NotificationDTO, error) {
	if query.RecipientID == 0 {
		return nil, errors.NewValidationError("recipient ID is required")
	}
	limit := query.Limit
	if limit <= 0 || limit > 50 {
		limit = defaultRecentLimit
	}

	notifications, err := uc.notificationRepo.ListRecent(ctx, query.RecipientID, limit)
	if err != nil {
		uc.logger.Errorw("failed to list recent notifications", "recipient_id", query.RecipientID, "error", err)
		return nil, err
	}

	return dto.ToNotificationDTOs(notifications), nil
}
