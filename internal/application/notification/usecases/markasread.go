package usecases

import (
	"context"

	"campusdesk/internal/domain/notification"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type MarkAsReadCommand struct {
	NotificationID uint
	RecipientID    uint
}

type MarkAsReadUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewMarkAsReadUseCase(notificationRepo notification.NotificationRepository, logger logger.Interface) *MarkAsReadUseCase {
	return &MarkAsReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Execute scopes the update by recipient so users cannot touch other inboxes.
func (uc *MarkAsReadUseCase) Execute(ctx context.Context, cmd MarkAsReadCommand) error {
	if cmd.NotificationID == 0 {
		return errors.NewValidationError("notification ID is required")
	}
	if cmd.RecipientID == 0 {
		return errors.NewValidationError("recipient ID is required")
	}

	if err := uc.notificationRepo.MarkAsRead(ctx, cmd.NotificationID, cmd.RecipientID); err != nil {
		uc.logger.Errorw("failed to mark notification as read",
			"notification_id", cmd.NotificationID,
			"recipient_id", cmd.RecipientID,
			"error", err,
		)
		return err
	}
	return nil
}
