package eventhandlers

import (
	"context"

	"campusdesk/internal/domain/analytics"
	"campusdesk/internal/domain/shared/events"
	"campusdesk/internal/shared/constants"
	"campusdesk/internal/shared/logger"
)

// DashboardHandler drops the cached dashboard snapshot whenever an
// issue is written so the next read recomputes.
type DashboardHandler struct {
	snapshots analytics.SnapshotRepository
	logger    logger.Interface
}

func NewDashboardHandler(snapshots analytics.SnapshotRepository, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		snapshots: snapshots,
		logger:    logger,
	}
}

func (h *DashboardHandler) HandleIssueEvent(event events.DomainEvent) error {
	if err := h.snapshots.Delete(context.Background(), constants.DashboardCacheKey); err != nil {
		h.logger.Warnw("failed to invalidate dashboard snapshot", "event_type", event.GetEventType(), "error", err)
	}
	return nil
}
