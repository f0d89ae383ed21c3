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

type IssueMetricsRepository struct {
	db     *gorm.DB
	mapper mappers.AnalyticsMapper
}

func NewIssueMetricsRepository(db *gorm.DB) *IssueMetricsRepository {
	return &IssueMetricsRepository{
		db:     db,
		mapper: mappers.NewAnalyticsMapper(),
	}
}

func (r *IssueMetricsRepository) Upsert(ctx context.Context, metrics *analytics.IssueMetrics) error {
	model, err := r.mapper.IssueMetricsToModel(metrics)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	err = tx.
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total", "new_issues", "resolved", "avg_resolution_hours",
				"by_category", "by_priority", "by_status", "updated_at",
			}),
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert issue metrics: %w", err)
	}
	return nil
}

func (r *IssueMetricsRepository) GetByDate(ctx context.Context, date time.Time) (*analytics.IssueMetrics, error) {
	var model models.IssueMetricsModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("date = ?", date.UTC().Truncate(24*time.Hour)).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find issue metrics: %w", err)
	}

	return r.mapper.IssueMetricsToDomain(&model)
}

func (r *IssueMetricsRepository) ListRange(ctx context.Context, from, to time.Time) ([]*analytics.IssueMetrics, error) {
	var metricsModels []*models.IssueMetricsModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("date >= ? AND date < ?", from.UTC(), to.UTC()).
		Order("date ASC").
		Find(&metricsModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list issue metrics: %w", err)
	}

	metrics := make([]*analytics.IssueMetrics, 0, len(metricsModels))
	for _, model := range metricsModels {
		m, err := r.mapper.IssueMetricsToDomain(model)
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}
	return metrics, nil
}
