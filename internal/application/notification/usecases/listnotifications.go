package usecases

import (
	"context"

	"campusdesk/internal/application/notification/dto"
	"campusdesk/internal/domain/notification"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type ListNotificationsQuery struct {
	RecipientID uint
	Page        int
	PageSize    int
}

type ListNotificationsUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewListNotificationsUseCase(notificationRepo notification.NotificationRepository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) ([]dto.NotificationDTO, int64, error) {
	if query.RecipientID == 0 {
		return nil, 0, errors.NewValidationError("recipient ID is required")
	}
	page, pageSize := utils.ValidatePagination(query.Page, query.PageSize)

	notifications, total, err := uc.notificationRepo.ListByRecipient(ctx, query.RecipientID, pageSize, (page-1)*pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "recipient_id", query.RecipientID, "error", err)
		return nil, 0, err
	}

	return dto.ToNotificationDTOs(notifications), total, nil
}
