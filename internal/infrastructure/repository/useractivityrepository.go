package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"campusdesk/internal/domain/analytics"
	"campusdesk/internal/infrastructure/persistence/mappers"
	"campusdesk/internal/infrastructure/persistence/models"
	db "campusdesk/internal/shared/db"
)

type UserActivityRepository struct {
	db     *gorm.DB
	mapper mappers.AnalyticsMapper
}

func NewUserActivityRepository(db *gorm.DB) *UserActivityRepository {
	return &UserActivityRepository{
		db:     db,
		mapper: mappers.NewAnalyticsMapper(),
	}
}

func (r *UserActivityRepository) Append(ctx context.Context, activity *analytics.UserActivity) error {
	model, err := r.mapper.ActivityToModel(activity)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append user activity: %w", err)
	}

	activity.SetID(model.ID)
	return nil
}

func (r *UserActivityRepository) CountDistinctUsers(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.UserActivityModel{}).
		Where("created_at >= ? AND created_at < ?", from.UnixMilli(), to.UnixMilli()).
		Distinct("user_id").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count distinct active users: %w", err)
	}
	return count, nil
}

func (r *UserActivityRepository) CountByType(ctx context.Context, activityType analytics.ActivityType, from, to time.Time) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.UserActivityModel{}).
		Where("activity_type = ? AND created_at >= ? AND created_at < ?",
			activityType.String(), from.UnixMilli(), to.UnixMilli()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count activities by type: %w", err)
	}
	return count, nil
}

func (r *UserActivityRepository) DistinctUserIDs(ctx context.Context, from, to time.Time) ([]uint, error) {
	var userIDs []uint
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.UserActivityModel{}).
		Where("created_at >= ? AND created_at < ?", from.UnixMilli(), to.UnixMilli()).
		Distinct().
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct active user IDs: %w", err)
	}
	return userIDs, nil
}
