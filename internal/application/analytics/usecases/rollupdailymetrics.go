package usecases

import (
	"context"
	"time"

	"campusdesk/internal/domain/analytics"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/biztime"
	"campusdesk/internal/shared/logger"
)

// DailyBackfiller fills the metric rows for one day. The trend usecases
// use it to repair gaps at read time.
type DailyBackfiller interface {
	Execute(ctx context.Context, day time.Time) error
}

// RollupDailyMetricsUseCase writes the issue and user metric rows for
// one day. The scheduler runs it daily; rerunning a day overwrites the
// previous row, so it is safe to replay.
//
// All counts are windowed to the day being rolled up: totals and the
// grouped maps are cumulative as of the day's end, New/Resolved cover
// [start, end) only. Replaying a past day reproduces that day's numbers
// even when later issues exist.
type RollupDailyMetricsUseCase struct {
	stats            analytics.IssueStatsRangeProvider
	activityRepo     analytics.UserActivityRepository
	issueMetricsRepo analytics.IssueMetricsRepository
	userMetricsRepo  analytics.UserMetricsRepository
	userRepo         user.UserRepository
	logger           logger.Interface
}

func NewRollupDailyMetricsUseCase(
	stats analytics.IssueStatsRangeProvider,
	activityRepo analytics.UserActivityRepository,
	issueMetricsRepo analytics.IssueMetricsRepository,
	userMetricsRepo analytics.UserMetricsRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *RollupDailyMetricsUseCase {
	return &RollupDailyMetricsUseCase{
		stats:            stats,
		activityRepo:     activityRepo,
		issueMetricsRepo: issueMetricsRepo,
		userMetricsRepo:  userMetricsRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (uc *RollupDailyMetricsUseCase) Execute(ctx context.Context, day time.Time) error {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)
	now := biztime.NowUTC()
	if end.After(now) {
		end = now
	}

	if err := uc.rollupIssues(ctx, start, end); err != nil {
		return err
	}
	if err := uc.rollupUsers(ctx, start, end); err != nil {
		return err
	}

	uc.logger.Infow("daily metrics rolled up", "date", start.Format("2006-01-02"))
	return nil
}

func (uc *RollupDailyMetricsUseCase) rollupIssues(ctx context.Context, start, end time.Time) error {
	total, err := uc.stats.CountTotalAsOf(ctx, end)
	if err != nil {
		return err
	}
	byStatus, err := uc.stats.CountByStatusAsOf(ctx, end)
	if err != nil {
		return err
	}
	byCategory, err := uc.stats.CountByCategoryAsOf(ctx, end)
	if err != nil {
		return err
	}
	byPriority, err := uc.stats.CountByPriorityAsOf(ctx, end)
	if err != nil {
		return err
	}
	created, err := uc.stats.CountCreatedBetween(ctx, start, end)
	if err != nil {
		return err
	}
	resolved, err := uc.stats.CountResolvedBetween(ctx, start, end)
	if err != nil {
		return err
	}
	avgHours, err := uc.stats.AvgResolutionHours(ctx, start, end)
	if err != nil {
		return err
	}

	metrics := &analytics.IssueMetrics{
		Date:               start,
		Total:              total,
		New:                created,
		Resolved:           resolved,
		AvgResolutionHours: avgHours,
		ByCategory:         byCategory,
		ByPriority:         byPriority,
		ByStatus:           byStatus,
	}
	if err := uc.issueMetricsRepo.Upsert(ctx, metrics); err != nil {
		uc.logger.Errorw("failed to upsert issue metrics", "error", err)
		return err
	}
	return nil
}

func (uc *RollupDailyMetricsUseCase) rollupUsers(ctx context.Context, start, end time.Time) error {
	activeUsers, err := uc.activityRepo.CountDistinctUsers(ctx, start, end)
	if err != nil {
		return err
	}
	logins, err := uc.activityRepo.CountByType(ctx, analytics.ActivityLogin, start, end)
	if err != nil {
		return err
	}
	newUsers, err := uc.userRepo.CountCreatedBetween(ctx, start, end)
	if err != nil {
		return err
	}

	students, faculty, admins, err := uc.countActiveByRole(ctx, start, end)
	if err != nil {
		return err
	}

	metrics := &analytics.UserMetrics{
		Date:           start,
		ActiveUsers:    activeUsers,
		NewUsers:       newUsers,
		ActiveStudents: students,
		ActiveFaculty:  faculty,
		ActiveAdmins:   admins,
		Logins:         logins,
	}
	if err := uc.userMetricsRepo.Upsert(ctx, metrics); err != nil {
		uc.logger.Errorw("failed to upsert user metrics", "error", err)
		return err
	}
	return nil
}

func (uc *RollupDailyMetricsUseCase) countActiveByRole(ctx context.Context, start, end time.Time) (students, faculty, admins int64, err error) {
	ids, err := uc.activityRepo.DistinctUserIDs(ctx, start, end)
	if err != nil {
		return 0, 0, 0, err
	}
	if len(ids) == 0 {
		return 0, 0, 0, nil
	}
	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return 0, 0, 0, err
	}
	for _, u := range users {
		switch {
		case u.Role().IsStudent():
			students++
		case u.Role().IsFaculty():
			faculty++
		case u.Role().IsAdmin():
			admins++
		}
	}
	return students, faculty, admins, nil
}
