package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"campusdesk/internal/domain/realtime"
	"campusdesk/internal/infrastructure/persistence/mappers"
	"campusdesk/internal/infrastructure/persistence/models"
	db "campusdesk/internal/shared/db"
)

// PresenceRepository keeps one row per user. Stale rows are filtered at
// read time, never deleted.
type PresenceRepository struct {
	db     *gorm.DB
	mapper mappers.RealtimeMapper
}

func NewPresenceRepository(db *gorm.DB) *PresenceRepository {
	return &PresenceRepository{
		db:     db,
		mapper: mappers.NewRealtimeMapper(),
	}
}

func (r *PresenceRepository) UpsertOnline(ctx context.Context, userID uint, channelID string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.OnlineUserModel
	err := tx.Where("user_id = ?", userID).First(&model).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to load presence row: %w", err)
		}
		entity, err := realtime.NewOnlineUser(userID, channelID)
		if err != nil {
			return err
		}
		if err := tx.Create(r.mapper.OnlineUserToModel(entity)).Error; err != nil {
			return fmt.Errorf("failed to create presence row: %w", err)
		}
		return nil
	}

	entity := r.mapper.OnlineUserToDomain(&model)
	entity.Touch(channelID)

	updated := r.mapper.OnlineUserToModel(entity)
	err = tx.
		Model(&models.OnlineUserModel{}).
		Where("user_id = ?", userID).
		Select("is_online", "last_activity", "channel_id").
		Updates(updated).Error
	if err != nil {
		return fmt.Errorf("failed to update presence row: %w", err)
	}
	return nil
}

func (r *PresenceRepository) SetOffline(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.OnlineUserModel{}).
		Where("user_id = ?", userID).
		Update("is_online", false).Error
	if err != nil {
		return fmt.Errorf("failed to set user offline: %w", err)
	}
	return nil
}

func (r *PresenceRepository) ListOnline(ctx context.Context, since time.Time) ([]*realtime.OnlineUser, error) {
	var presenceModels []*models.OnlineUserModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("is_online = ? AND last_activity > ?", true, since.UnixMilli()).
		Order("last_activity DESC").
		Find(&presenceModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list online users: %w", err)
	}

	online := make([]*realtime.OnlineUser, 0, len(presenceModels))
	for _, model := range presenceModels {
		online = append(online, r.mapper.OnlineUserToDomain(model))
	}
	return online, nil
}
