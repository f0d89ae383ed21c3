package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"campusdesk/internal/domain/notification"
	"campusdesk/internal/infrastructure/persistence/mappers"
	"campusdesk/internal/infrastructure/persistence/models"
	db "campusdesk/internal/shared/db"
)

type NotificationRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	n.SetID(model.ID)
	return nil
}

func (r *NotificationRepository) BulkCreate(ctx context.Context, notifications []*notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	notificationModels := make([]*models.NotificationModel, 0, len(notifications))
	for _, n := range notifications {
		notificationModels = append(notificationModels, r.mapper.ToModel(n))
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&notificationModels).Error; err != nil {
		return fmt.Errorf("failed to bulk create notifications: %w", err)
	}

	for i, n := range notifications {
		n.SetID(notificationModels[i].ID)
	}
	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipientID uint, limit, offset int) ([]*notification.Notification, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.NotificationModel{}).Where("recipient_id = ?", recipientID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var notificationModels []*models.NotificationModel
	err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&notificationModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	return r.mapper.ToDomains(notificationModels), total, nil
}

func (r *NotificationRepository) ListRecent(ctx context.Context, recipientID uint, limit int) ([]*notification.Notification, error) {
	var notificationModels []*models.NotificationModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&notificationModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent notifications: %w", err)
	}

	return r.mapper.ToDomains(notificationModels), nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, recipientID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.NotificationModel{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *NotificationRepository) MarkAsRead(ctx context.Context, id, recipientID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	// Scoping by recipient means a foreign ID silently matches nothing.
	err := tx.
		Model(&models.NotificationModel{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, recipientID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.NotificationModel{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return nil
}
