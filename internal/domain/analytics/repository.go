package analytics

import (
	"context"
	"time"
)

type UserActivityRepository interface {
	Append(ctx context.Context, activity *UserActivity) error
	// CountDistinctUsers counts distinct users with activity in [from, to).
	CountDistinctUsers(ctx context.Context, from, to time.Time) (int64, error)
	CountByType(ctx context.Context, activityType ActivityType, from, to time.Time) (int64, error)
	// DistinctUserIDs returns the distinct user IDs active in [from, to).
	DistinctUserIDs(ctx context.Context, from, to time.Time) ([]uint, error)
}

type IssueMetricsRepository interface {
	Upsert(ctx context.Context, metrics *IssueMetrics) error
	GetByDate(ctx context.Context, date time.Time) (*IssueMetrics, error)
	ListRange(ctx context.Context, from, to time.Time) ([]*IssueMetrics, error)
}

type UserMetricsRepository interface {
	Upsert(ctx context.Context, metrics *UserMetrics) error
	GetByDate(ctx context.Context, date time.Time) (*UserMetrics, error)
	ListRange(ctx context.Context, from, to time.Time) ([]*UserMetrics, error)
}

// IssueStatsProvider aggregates issue counts for dashboards and rollups.
// Resolved counts are derived from status history, not current status, so
// reopened issues still count for the day they were resolved.
type IssueStatsProvider interface {
	CountTotal(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	CountByCategory(ctx context.Context) (map[string]int64, error)
	CountByPriority(ctx context.Context) (map[string]int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	CountResolvedSince(ctx context.Context, since time.Time) (int64, error)
	AvgResolutionHours(ctx context.Context, from, to time.Time) (float64, error)
	RecentIssues(ctx context.Context, limit int) ([]RecentIssue, error)
}

// IssueStatsRangeProvider serves the per-day rollups. Totals and the
// grouped maps are cumulative as of a day boundary; created/resolved
// counts cover one day only.
type IssueStatsRangeProvider interface {
	CountTotalAsOf(ctx context.Context, until time.Time) (int64, error)
	CountByStatusAsOf(ctx context.Context, until time.Time) (map[string]int64, error)
	CountByCategoryAsOf(ctx context.Context, until time.Time) (map[string]int64, error)
	CountByPriorityAsOf(ctx context.Context, until time.Time) (map[string]int64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountResolvedBetween(ctx context.Context, from, to time.Time) (int64, error)
	AvgResolutionHours(ctx context.Context, from, to time.Time) (float64, error)
}

// SnapshotRepository stores the cached dashboard payload keyed by name.
type SnapshotRepository interface {
	Get(ctx context.Context, key string) (*DashboardSnapshot, error)
	Put(ctx context.Context, key string, snapshot *DashboardSnapshot) error
	Delete(ctx context.Context, key string) error
}
