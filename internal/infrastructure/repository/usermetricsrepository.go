package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campusdesk/internal/domain/analytics"
	"campusdesk/internal/infrastructure/persistence/mappers"
	"campusdesk/internal/infrastructure/persistence/models"
	db "campusdesk/internal/shared/db"
)

type UserMetricsRepository struct {
	db     *gorm.DB
	mapper mappers.AnalyticsMapper
}

func NewUserMetricsRepository(db *gorm.DB) *UserMetricsRepository {
	return &UserMetricsRepository{
		db:     db,
		mapper: mappers.NewAnalyticsMapper(),
	}
}

func (r *UserMetricsRepository) Upsert(ctx context.Context, metrics *analytics.UserMetrics) error {
	model := r.mapper.UserMetricsToModel(metrics)
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"active_users", "new_users", "active_students",
				"active_faculty", "active_admins", "logins", "updated_at",
			}),
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert user metrics: %w", err)
	}
	return nil
}

func (r *UserMetricsRepository) GetByDate(ctx context.Context, date time.Time) (*analytics.UserMetrics, error) {
	var model models.UserMetricsModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("date = ?", date.UTC().Truncate(24*time.Hour)).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user metrics: %w", err)
	}

	return r.mapper.UserMetricsToDomain(&model), nil
}

func (r *UserMetricsRepository) ListRange(ctx context.Context, from, to time.Time) ([]*analytics.UserMetrics, error) {
	var metricsModels []*models.UserMetricsModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("date >= ? AND date < ?", from.UTC(), to.UTC()).
		Order("date ASC").
		Find(&metricsModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user metrics: %w", err)
	}

	metrics := make([]*analytics.UserMetrics, 0, len(metricsModels))
	for _, model := range metricsModels {
		metrics = append(metrics, r.mapper.UserMetricsToDomain(model))
	}
	return metrics, nil
}
