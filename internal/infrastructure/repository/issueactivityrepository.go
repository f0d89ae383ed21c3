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

type IssueActivityRepository struct {
	db     *gorm.DB
	mapper mappers.RealtimeMapper
}

func NewIssueActivityRepository(db *gorm.DB) *IssueActivityRepository {
	return &IssueActivityRepository{
		db:     db,
		mapper: mappers.NewRealtimeMapper(),
	}
}

func (r *IssueActivityRepository) Append(ctx context.Context, activity *realtime.IssueActivity) error {
	model := r.mapper.IssueActivityToModel(activity)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append issue activity: %w", err)
	}

	activity.SetID(model.ID)
	return nil
}

func (r *IssueActivityRepository) ListViewerIDs(ctx context.Context, issueID uint, since time.Time) ([]uint, error) {
	var userIDs []uint
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.IssueActivityModel{}).
		Where("issue_id = ? AND activity_type = ? AND created_at > ?",
			issueID, realtime.ActivityTypeView, since.UnixMilli()).
		Distinct().
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list issue viewers: %w", err)
	}
	return userIDs, nil
}
