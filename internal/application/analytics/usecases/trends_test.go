package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/analytics"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

// mockBackfiller records the days it was asked to fill and writes a
// row for each into the metric repos, like the real rollup does.
type mockBackfiller struct {
	issueMetrics *mockIssueMetricsRepo
	userMetrics  *mockUserMetricsRepo
	filledDays   []string
	err          error
}

func (m *mockBackfiller) Execute(ctx context.Context, day time.Time) error {
	if m.err != nil {
		return m.err
	}
	m.filledDays = append(m.filledDays, day.Format("2006-01-02"))
	if m.issueMetrics != nil {
		m.issueMetrics.rows[day.Format("2006-01-02")] = &analytics.IssueMetrics{Date: day, New: 1}
	}
	if m.userMetrics != nil {
		m.userMetrics.rows[day.Format("2006-01-02")] = &analytics.UserMetrics{Date: day, ActiveUsers: 1}
	}
	return nil
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func TestGetIssueTrendsUseCase_Execute_BackfillsMissingDays(t *testing.T) {
	today := midnightUTC(time.Now().UTC())
	repo := newMockIssueMetricsRepo()
	// Only yesterday has a rollup row; the scheduler missed the rest.
	repo.rows[today.AddDate(0, 0, -1).Format("2006-01-02")] = &analytics.IssueMetrics{
		Date: today.AddDate(0, 0, -1),
		New:  5,
	}
	backfill := &mockBackfiller{issueMetrics: repo}

	uc := NewGetIssueTrendsUseCase(repo, backfill, logger.NewLogger())

	result, err := uc.Execute(context.Background(), GetIssueTrendsQuery{Days: 3})
	require.NoError(t, err)

	assert.Len(t, backfill.filledDays, 2, "the two missing days are rolled up on read")
	assert.NotContains(t, backfill.filledDays, today.AddDate(0, 0, -1).Format("2006-01-02"))
	require.Len(t, result, 3, "the series covers every requested day after backfill")
}

func TestGetIssueTrendsUseCase_Execute_NoBackfillWhenComplete(t *testing.T) {
	today := midnightUTC(time.Now().UTC())
	repo := newMockIssueMetricsRepo()
	for i := 0; i < 3; i++ {
		day := today.AddDate(0, 0, -i)
		repo.rows[day.Format("2006-01-02")] = &analytics.IssueMetrics{Date: day}
	}
	backfill := &mockBackfiller{issueMetrics: repo}

	uc := NewGetIssueTrendsUseCase(repo, backfill, logger.NewLogger())

	result, err := uc.Execute(context.Background(), GetIssueTrendsQuery{Days: 3})
	require.NoError(t, err)
	assert.Empty(t, backfill.filledDays)
	assert.Len(t, result, 3)
}

func TestGetIssueTrendsUseCase_Execute_BackfillFailureKeepsPartialSeries(t *testing.T) {
	today := midnightUTC(time.Now().UTC())
	repo := newMockIssueMetricsRepo()
	repo.rows[today.Format("2006-01-02")] = &analytics.IssueMetrics{Date: today}
	backfill := &mockBackfiller{err: errors.NewInternalError("rollup unavailable")}

	uc := NewGetIssueTrendsUseCase(repo, backfill, logger.NewLogger())

	result, err := uc.Execute(context.Background(), GetIssueTrendsQuery{Days: 3})
	require.NoError(t, err, "a failed backfill must not fail the read")
	assert.Len(t, result, 1)
}

func TestGetIssueTrendsUseCase_Execute_RejectsOutOfRangeDays(t *testing.T) {
	uc := NewGetIssueTrendsUseCase(newMockIssueMetricsRepo(), &mockBackfiller{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), GetIssueTrendsQuery{Days: 91})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "days must be between 1 and 90")
}

func TestGetUserActivityUseCase_Execute_BackfillsMissingDays(t *testing.T) {
	repo := newMockUserMetricsRepo()
	backfill := &mockBackfiller{userMetrics: repo}

	uc := NewGetUserActivityUseCase(repo, backfill, logger.NewLogger())

	result, err := uc.Execute(context.Background(), GetUserActivityQuery{Days: 2})
	require.NoError(t, err)
	assert.Len(t, backfill.filledDays, 2)
	require.Len(t, result, 2)
}
