package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campusdesk/internal/domain/analytics"
	"campusdesk/internal/infrastructure/persistence/models"
	db "campusdesk/internal/shared/db"
)

// DashboardSnapshotRepository stores serialized dashboard payloads in a
// cache table keyed by name. Writers upsert, readers tolerate misses.
type DashboardSnapshotRepository struct {
	db *gorm.DB
}

func NewDashboardSnapshotRepository(db *gorm.DB) *DashboardSnapshotRepository {
	return &DashboardSnapshotRepository{db: db}
}

func (r *DashboardSnapshotRepository) Get(ctx context.Context, key string) (*analytics.DashboardSnapshot, error) {
	var model models.DashboardStatsModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("cache_key = ?", key).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load dashboard snapshot: %w", err)
	}

	var snapshot analytics.DashboardSnapshot
	if err := json.Unmarshal(model.Payload, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dashboard snapshot (key=%s): %w", key, err)
	}
	return &snapshot, nil
}

func (r *DashboardSnapshotRepository) Put(ctx context.Context, key string, snapshot *analytics.DashboardSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard snapshot: %w", err)
	}

	model := &models.DashboardStatsModel{
		CacheKey: key,
		Payload:  payload,
	}

	tx := db.GetTxFromContext(ctx, r.db)
	err = tx.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cache_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to store dashboard snapshot: %w", err)
	}
	return nil
}

func (r *DashboardSnapshotRepository) Delete(ctx context.Context, key string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("cache_key = ?", key).
		Delete(&models.DashboardStatsModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete dashboard snapshot: %w", err)
	}
	return nil
}
