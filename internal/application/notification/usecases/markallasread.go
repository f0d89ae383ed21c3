package usecases

import (
	"context"

	"campusdesk/internal/domain/notification"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type MarkAllAsReadUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewMarkAllAsReadUseCase(notificationRepo notification.NotificationRepository, logger logger.Interface) *MarkAllAsReadUseCase {
	return &MarkAllAsReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkAllAsReadUseCase) Execute(ctx context.Context, recipientID uint) error {
	if recipientID == 0 {
		return errors.NewValidationError("recipient ID is required")
	}

	if err := uc.notificationRepo.MarkAllAsRead(ctx, recipientID); err != nil {
		uc.logger.Errorw("failed to mark all notifications as read", "recipient_id", recipientID, "error", err)
		return err
	}
	return nil
}
