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

// TypingRepository keeps one row per (issue, user) pair.
type TypingRepository struct {
	db     *gorm.DB
	mapper mappers.RealtimeMapper
}

func NewTypingRepository(db *gorm.DB) *TypingRepository {
	return &TypingRepository{
		db:     db,
		mapper: mappers.NewRealtimeMapper(),
	}
}

func (r *TypingRepository) Upsert(ctx context.Context, issueID, userID uint, isTyping bool) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.TypingStatusModel
	err := tx.Where("issue_id = ? AND user_id = ?", issueID, userID).First(&model).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to load typing row: %w", err)
		}
		entity, err := realtime.NewTypingStatus(issueID, userID, isTyping)
		if err != nil {
			return err
		}
		if err := tx.Create(r.mapper.TypingStatusToModel(entity)).Error; err != nil {
			return fmt.Errorf("failed to create typing row: %w", err)
		}
		return nil
	}

	entity := r.mapper.TypingStatusToDomain(&model)
	entity.Set(isTyping)

	updated := r.mapper.TypingStatusToModel(entity)
	err = tx.
		Model(&models.TypingStatusModel{}).
		Where("issue_id = ? AND user_id = ?", issueID, userID).
		Select("is_typing", "last_updated").
		Updates(updated).Error
	if err != nil {
		return fmt.Errorf("failed to update typing row: %w", err)
	}
	return nil
}

func (r *TypingRepository) ListTyping(ctx context.Context, issueID uint, since time.Time, excludeUserID uint) ([]*realtime.TypingStatus, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.
		Where("issue_id = ? AND last_updated > ?", issueID, since.UnixMilli())
	if excludeUserID != 0 {
		query = query.Where("user_id != ?", excludeUserID)
	}

	var typingModels []*models.TypingStatusModel
	if err := query.Order("last_updated DESC").Find(&typingModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list typing statuses: %w", err)
	}

	statuses := make([]*realtime.TypingStatus, 0, len(typingModels))
	for _, model := range typingModels {
		statuses = append(statuses, r.mapper.TypingStatusToDomain(model))
	}
	return statuses, nil
}
