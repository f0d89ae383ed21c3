package usecases

import (
	"context"
	"time"

	"campusdesk/internal/application/analytics/dto"
	"campusdesk/internal/domain/analytics"
	"campusdesk/internal/shared/biztime"
	"campusdesk/internal/shared/logger"
)

type GetUserActivityQuery struct {
	Days int
}

// GetUserActivityUseCase serves the per-day user activity series, with
// the same read-time backfill as the issue trends.
type GetUserActivityUseCase struct {
	metricsRepo analytics.UserMetricsRepository
	backfill    DailyBackfiller
	logger      logger.Interface
}

func NewGetUserActivityUseCase(metricsRepo analytics.UserMetricsRepository, backfill DailyBackfiller, logger logger.Interface) *GetUserActivityUseCase {
	return &GetUserActivityUseCase{
		metricsRepo: metricsRepo,
		backfill:    backfill,
		logger:      logger,
	}
}

func (uc *GetUserActivityUseCase) Execute(ctx context.Context, query GetUserActivityQuery) ([]dto.UserActivityPointDTO, error) {
	days, err := normalizeTrendDays(query.Days)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -days)

	rows, err := uc.metricsRepo.ListRange(ctx, from, to)
	if err != nil {
		uc.logger.Errorw("failed to list user metrics", "error", err)
		return nil, err
	}

	present := make(map[string]bool, len(rows))
	for _, m := range rows {
		present[m.Date.Format("2006-01-02")] = true
	}
	if backfillMissingDays(ctx, uc.backfill, uc.logger, from, to, present) {
		rows, err = uc.metricsRepo.ListRange(ctx, from, to)
		if err != nil {
			uc.logger.Errorw("failed to list user metrics", "error", err)
			return nil, err
		}
	}

	result := make([]dto.UserActivityPointDTO, 0, len(rows))
	for _, m := range rows {
		result = append(result, dto.ToUserActivityPointDTO(m))
	}
	return result, nil
}
