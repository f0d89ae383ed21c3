// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"campusdesk/internal/shared/biztime"
	"campusdesk/internal/shared/logger"
)

// RetryJob redelivers pending frontend callbacks.
type RetryJob interface {
	Execute(ctx context.Context) error
}

// RollupJob computes the daily metrics row for a given day.
type RollupJob interface {
	Execute(ctx context.Context, day time.Time) error
}

// SchedulerManager owns every scheduled background job in a single
// gocron instance.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterCallbackRetryJob schedules redelivery of pending frontend
// callbacks at the configured interval.
func (m *SchedulerManager) RegisterCallbackRetryJob(job RetryJob, interval time.Duration) error {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			defer cancel()

			if err := job.Execute(ctx); err != nil {
				m.logger.Errorw("callback retry job failed", "error", err)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("callback", "retry"),
		gocron.WithName("callback-retry"),
	)
	return err
}

// RegisterDailyRollupJob schedules the metrics rollup shortly after
// midnight, computing the row for the day that just ended.
func (m *SchedulerManager) RegisterDailyRollupJob(job RollupJob) error {
	_, err := m.scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 10, 0))),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()

			day := biztime.NowUTC().AddDate(0, 0, -1)
			if err := job.Execute(ctx, day); err != nil {
				m.logger.Errorw("daily metrics rollup failed", "day", day.Format("2006-01-02"), "error", err)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("analytics", "rollup"),
		gocron.WithName("daily-metrics-rollup"),
	)
	return err
}

// Start begins executing registered jobs. Idempotent.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}
	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler started", "jobs", len(m.scheduler.Jobs()))
}

// Stop shuts the scheduler down, waiting for running jobs to finish.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}
	m.started = false
	return m.scheduler.Shutdown()
}
