package usecases

import (
	"context"

	"campusdesk/internal/application/notification/dto"
)

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, query ListNotificationsQuery) ([]dto.NotificationDTO, int64, error)
}

type GetRecentExecutor interface {
	Execute(ctx context.Context, query GetRecentQuery) ([]dto.NotificationDTO, error)
}

type GetUnreadCountExecutor interface {
	Execute(ctx context.Context, recipientID uint) (int64, error)
}

type MarkAsReadExecutor interface {
	Execute(ctx context.Context, cmd MarkAsReadCommand) error
}

type MarkAllAsReadExecutor interface {
	Execute(ctx context.Context, recipientID uint) error
}
