package usecases

import (
	"context"
	"time"

	"campusdesk/internal/application/analytics/dto"
	"campusdesk/internal/domain/analytics"
	"campusdesk/internal/shared/biztime"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

const (
	defaultTrendDays = 7
	maxTrendDays     = 90
)

type GetIssueTrendsQuery struct {
	Days int
}

// GetIssueTrendsUseCase serves the per-day issue series. Days missing
// from the rollup table (scheduler downtime, fresh deploys) are
// backfilled on read before the series is returned.
type GetIssueTrendsUseCase struct {
	metricsRepo analytics.IssueMetricsRepository
	backfill    DailyBackfiller
	logger      logger.Interface
}

func NewGetIssueTrendsUseCase(metricsRepo analytics.IssueMetricsRepository, backfill DailyBackfiller, logger logger.Interface) *GetIssueTrendsUseCase {
	return &GetIssueTrendsUseCase{
		metricsRepo: metricsRepo,
		backfill:    backfill,
		logger:      logger,
	}
}

func (uc *GetIssueTrendsUseCase) Execute(ctx context.Context, query GetIssueTrendsQuery) ([]dto.IssueTrendPointDTO, error) {
	days, err := normalizeTrendDays(query.Days)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -days)

	rows, err := uc.metricsRepo.ListRange(ctx, from, to)
	if err != nil {
		uc.logger.Errorw("failed to list issue metrics", "error", err)
		return nil, err
	}

	present := make(map[string]bool, len(rows))
	for _, m := range rows {
		present[m.Date.Format("2006-01-02")] = true
	}
	if backfillMissingDays(ctx, uc.backfill, uc.logger, from, to, present) {
		rows, err = uc.metricsRepo.ListRange(ctx, from, to)
		if err != nil {
			uc.logger.Errorw("failed to list issue metrics", "error", err)
			return nil, err
		}
	}

	result := make([]dto.IssueTrendPointDTO, 0, len(rows))
	for _, m := range rows {
		result = append(result, dto.ToIssueTrendPointDTO(m))
	}
	return result, nil
}

// backfillMissingDays rolls up any day in [from, to) without a metric
// row. A failed day is logged and skipped so one bad day does not take
// the whole series down. Returns true when at least one day was filled.
func backfillMissingDays(ctx context.Context, backfill DailyBackfiller, log logger.Interface, from, to time.Time, present map[string]bool) bool {
	filled := false
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		if present[day.Format("2006-01-02")] {
			continue
		}
		if err := backfill.Execute(ctx, day); err != nil {
			log.Warnw("failed to backfill daily metrics", "date", day.Format("2006-01-02"), "error", err)
			continue
		}
		filled = true
	}
	return filled
}

func normalizeTrendDays(days int) (int, error) {
	if days == 0 {
		return defaultTrendDays, nil
	}
	if days < 1 || days > maxTrendDays {
		return 0, errors.NewValidationError("days must be between 1 and 90")
	}
	return days, nil
}
