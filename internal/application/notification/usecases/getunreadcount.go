package usecases

import (
	"context"

	"campusdesk/internal/domain/notification"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type GetUnreadCountUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewGetUnreadCountUseCase(notificationRepo notification.NotificationRepository, logger logger.Interface) *GetUnreadCountUseCase {
	return &GetUnreadCountUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *GetUnreadCountUseCase) Execute(ctx context.Context, recipientID uint) (int64, error) {
	if recipientID == 0 {
		return 0, errors.NewValidationError("recipient ID is required")
	}

	count, err := uc.notificationRepo.CountUnread(ctx, recipientID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "recipient_id", recipientID, "error", err)
		return 0, err
	}
	return count, nil
}
