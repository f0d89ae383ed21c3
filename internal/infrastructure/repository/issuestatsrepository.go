package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"campusdesk/internal/domain/analytics"
	vo "campusdesk/internal/domain/issue/valueobjects"
	"campusdesk/internal/infrastructure/persistence/models"
	"campusdesk/internal/shared/constants"
	db "campusdesk/internal/shared/db"
)

// IssueStatsRepository aggregates issue counts straight from the issues
// and status history tables. It backs both the dashboard snapshot and
// the nightly rollup.
type IssueStatsRepository struct {
	db *gorm.DB
}

func NewIssueStatsRepository(db *gorm.DB) *IssueStatsRepository {
	return &IssueStatsRepository{db: db}
}

func (r *IssueStatsRepository) CountTotal(ctx context.Context) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.IssueModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count issues: %w", err)
	}
	return count, nil
}

func (r *IssueStatsRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, "status", nil)
}

func (r *IssueStatsRepository) CountByCategory(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, "category", nil)
}

func (r *IssueStatsRepository) CountByPriority(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, "priority", nil)
}

// CountTotalAsOf counts issues created before until, so replaying a past
// day's rollup excludes issues that did not exist yet.
func (r *IssueStatsRepository) CountTotalAsOf(ctx context.Context, until time.Time) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.IssueModel{}).
		Where("created_at < ?", until.UnixMilli()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count issues as of date: %w", err)
	}
	return count, nil
}

func (r *IssueStatsRepository) CountByStatusAsOf(ctx context.Context, until time.Time) (map[string]int64, error) {
	return r.countGrouped(ctx, "status", &until)
}

func (r *IssueStatsRepository) CountByCategoryAsOf(ctx context.Context, until time.Time) (map[string]int64, error) {
	return r.countGrouped(ctx, "category", &until)
}

func (r *IssueStatsRepository) CountByPriorityAsOf(ctx context.Context, until time.Time) (map[string]int64, error) {
	return r.countGrouped(ctx, "priority", &until)
}

// CountCreatedBetween counts issues created in [from, to).
func (r *IssueStatsRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.IssueModel{}).
		Where("created_at >= ? AND created_at < ?", from.UnixMilli(), to.UnixMilli()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count new issues: %w", err)
	}
	return count, nil
}

// CountResolvedBetween counts distinct issues with a RESOLVED history
// record in [from, to).
func (r *IssueStatsRepository) CountResolvedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.StatusRecordModel{}).
		Where("status = ? AND created_at >= ? AND created_at < ?",
			vo.StatusResolved.String(), from.UnixMilli(), to.UnixMilli()).
		Distinct("issue_id").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count resolved issues: %w", err)
	}
	return count, nil
}

func (r *IssueStatsRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.IssueModel{}).
		Where("created_at >= ?", since.UnixMilli()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count new issues: %w", err)
	}
	return count, nil
}

// CountResolvedSince counts issues with a RESOLVED history record in the
// window, so issues reopened later still count for that window.
func (r *IssueStatsRepository) CountResolvedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.StatusRecordModel{}).
		Where("status = ? AND created_at >= ?", vo.StatusResolved.String(), since.UnixMilli()).
		Distinct("issue_id").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count resolved issues: %w", err)
	}
	return count, nil
}

// AvgResolutionHours averages submission-to-first-resolution over issues
// first resolved in [from, to). Issues without a resolution are excluded.
func (r *IssueStatsRepository) AvgResolutionHours(ctx context.Context, from, to time.Time) (float64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var avg *float64
	err := tx.Raw(fmt.Sprintf(`
		SELECT AVG((fr.first_resolved - i.created_at) / 3600000.0)
		FROM (
			SELECT issue_id, MIN(created_at) AS first_resolved
			FROM %s
			WHERE status = ?
			GROUP BY issue_id
		) fr
		JOIN %s i ON i.id = fr.issue_id
		WHERE fr.first_resolved >= ? AND fr.first_resolved < ?`,
		constants.TableIssueStatuses, constants.TableIssues),
		vo.StatusResolved.String(), from.UnixMilli(), to.UnixMilli(),
	).Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute average resolution time: %w", err)
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (r *IssueStatsRepository) RecentIssues(ctx context.Context, limit int) ([]analytics.RecentIssue, error) {
	var issueModels []*models.IssueModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Order("updated_at DESC, id DESC").
		Limit(limit).
		Find(&issueModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent issues: %w", err)
	}

	recent := make([]analytics.RecentIssue, 0, len(issueModels))
	for _, model := range issueModels {
		recent = append(recent, analytics.RecentIssue{
			ID:        model.ID,
			Title:     model.Title,
			Status:    model.Status,
			Priority:  model.Priority,
			UpdatedAt: time.UnixMilli(model.UpdatedAt).UTC(),
		})
	}
	return recent, nil
}

func (r *IssueStatsRepository) countGrouped(ctx context.Context, column string, until *time.Time) (map[string]int64, error) {
	type row struct {
		Value string
		Count int64
	}

	var rows []row
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Model(&models.IssueModel{}).
		Select(fmt.Sprintf("%s AS value, COUNT(*) AS count", column)).
		Group(column)
	if until != nil {
		query = query.Where("created_at < ?", until.UnixMilli())
	}
	err := query.Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count issues by %s: %w", column, err)
	}

	counts := make(map[string]int64, len(rows))
	for _, entry := range rows {
		counts[entry.Value] = entry.Count
	}
	return counts, nil
}
