package usecases

import (
	"context"
	"time"

	"campusdesk/internal/domain/analytics"
	"campusdesk/internal/shared/biztime"
	"campusdesk/internal/shared/constants"
	"campusdesk/internal/shared/logger"
)

// GetDashboardStatsUseCase serves the cached dashboard snapshot and
// regenerates it once it passes the staleness window. The snapshot is
// also deleted whenever an issue is written, so a fresh read after a
// write always recomputes.
type GetDashboardStatsUseCase struct {
	snapshots    analytics.SnapshotRepository
	stats        analytics.IssueStatsProvider
	activityRepo analytics.UserActivityRepository
	logger       logger.Interface
}

func NewGetDashboardStatsUseCase(
	snapshots analytics.SnapshotRepository,
	stats analytics.IssueStatsProvider,
	activityRepo analytics.UserActivityRepository,
	logger logger.Interface,
) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		snapshots:    snapshots,
		stats:        stats,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context) (*analytics.DashboardSnapshot, error) {
	now := biztime.NowUTC()

	cached, err := uc.snapshots.Get(ctx, constants.DashboardCacheKey)
	if err != nil {
		uc.logger.Warnw("failed to read dashboard snapshot", "error", err)
	}
	if cached != nil && now.Sub(cached.GeneratedAt) < constants.DashboardStalenessMinutes*time.Minute {
		return cached, nil
	}

	snapshot, err := uc.regenerate(ctx, now)
	if err != nil {
		// Serve the stale snapshot rather than fail the dashboard.
		if cached != nil {
			uc.logger.Warnw("failed to regenerate dashboard, serving stale snapshot", "error", err)
			return cached, nil
		}
		return nil, err
	}

	if err := uc.snapshots.Put(ctx, constants.DashboardCacheKey, snapshot); err != nil {
		uc.logger.Warnw("failed to store dashboard snapshot", "error", err)
	}
	return snapshot, nil
}

func (uc *GetDashboardStatsUseCase) regenerate(ctx context.Context, now time.Time) (*analytics.DashboardSnapshot, error) {
	total, err := uc.stats.CountTotal(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := uc.stats.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byCategory, err := uc.stats.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	byPriority, err := uc.stats.CountByPriority(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.stats.RecentIssues(ctx, constants.DashboardRecentActivityMax)
	if err != nil {
		return nil, err
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	newToday, err := uc.stats.CountCreatedSince(ctx, midnight)
	if err != nil {
		return nil, err
	}
	resolvedToday, err := uc.stats.CountResolvedSince(ctx, midnight)
	if err != nil {
		return nil, err
	}
	activeToday, err := uc.activityRepo.CountDistinctUsers(ctx, midnight, now)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("dashboard snapshot regenerated", "total_issues", total)

	return &analytics.DashboardSnapshot{
		TotalIssues:      total,
		IssuesByStatus:   byStatus,
		IssuesByCategory: byCategory,
		IssuesByPriority: byPriority,
		RecentActivity:   recent,
		NewIssuesToday:   newToday,
		ResolvedToday:    resolvedToday,
		ActiveUsersToday: activeToday,
		GeneratedAt:      now,
	}, nil
}
