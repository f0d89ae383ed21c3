package notification

import "context"

type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	BulkCreate(ctx context.Context, notifications []*Notification) error
	GetByID(ctx context.Context, id uint) (*Notification, error)
	ListByRecipient(ctx context.Context, recipientID uint, limit, offset int) ([]*Notification, int64, error)
	ListRecent(ctx context.Context, recipientID uint, limit int) ([]*Notification, error)
	CountUnread(ctx context.Context, recipientID uint) (int64, error)
	MarkAsRead(ctx context.Context, id, recipientID uint) error
	MarkAllAsRead(ctx context.Context, recipientID uint) error
}
