package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"campusdesk/internal/domain/analytics"
	"campusdesk/internal/infrastructure/persistence/models"
)

type AnalyticsMapper interface {
	ActivityToModel(entity *analytics.UserActivity) (*models.UserActivityModel, error)
	ActivityToDomain(model *models.UserActivityModel) (*analytics.UserActivity, error)
	IssueMetricsToModel(metrics *analytics.IssueMetrics) (*models.IssueMetricsModel, error)
	IssueMetricsToDomain(model *models.IssueMetricsModel) (*analytics.IssueMetrics, error)
	UserMetricsToModel(metrics *analytics.UserMetrics) *models.UserMetricsModel
	UserMetricsToDomain(model *models.UserMetricsModel) *analytics.UserMetrics
}

type AnalyticsMapperImpl struct{}

func NewAnalyticsMapper() AnalyticsMapper {
	return &AnalyticsMapperImpl{}
}

func (m *AnalyticsMapperImpl) ActivityToModel(entity *analytics.UserActivity) (*models.UserActivityModel, error) {
	detailsJSON, err := json.Marshal(entity.Details())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal activity details: %w", err)
	}

	return &models.UserActivityModel{
		ID:           entity.ID(),
		UserID:       entity.UserID(),
		ActivityType: entity.ActivityType().String(),
		IP:           entity.IP(),
		UserAgent:    entity.UserAgent(),
		IssueID:      entity.IssueID(),
		Details:      detailsJSON,
		CreatedAt:    timeToMillis(entity.CreatedAt()),
	}, nil
}

func (m *AnalyticsMapperImpl) ActivityToDomain(model *models.UserActivityModel) (*analytics.UserActivity, error) {
	details := map[string]interface{}{}
	if len(model.Details) > 0 {
		if err := json.Unmarshal(model.Details, &details); err != nil {
			return nil, fmt.Errorf("failed to unmarshal activity details (id=%d): %w", model.ID, err)
		}
	}

	return analytics.ReconstructUserActivity(
		model.ID,
		model.UserID,
		analytics.ActivityType(model.ActivityType),
		model.IP,
		model.UserAgent,
		model.IssueID,
		details,
		millisToTime(model.CreatedAt),
	), nil
}

func (m *AnalyticsMapperImpl) IssueMetricsToModel(metrics *analytics.IssueMetrics) (*models.IssueMetricsModel, error) {
	byCategory, err := json.Marshal(metrics.ByCategory)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal category counts: %w", err)
	}
	byPriority, err := json.Marshal(metrics.ByPriority)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal priority counts: %w", err)
	}
	byStatus, err := json.Marshal(metrics.ByStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal status counts: %w", err)
	}

	return &models.IssueMetricsModel{
		Date:               metrics.Date.UTC().Truncate(24 * time.Hour),
		Total:              metrics.Total,
		New:                metrics.New,
		Resolved:           metrics.Resolved,
		AvgResolutionHours: metrics.AvgResolutionHours,
		ByCategory:         byCategory,
		ByPriority:         byPriority,
		ByStatus:           byStatus,
	}, nil
}

func (m *AnalyticsMapperImpl) IssueMetricsToDomain(model *models.IssueMetricsModel) (*analytics.IssueMetrics, error) {
	metrics := &analytics.IssueMetrics{
		Date:               model.Date,
		Total:              model.Total,
		New:                model.New,
		Resolved:           model.Resolved,
		AvgResolutionHours: model.AvgResolutionHours,
		ByCategory:         map[string]int64{},
		ByPriority:         map[string]int64{},
		ByStatus:           map[string]int64{},
	}
	if len(model.ByCategory) > 0 {
		if err := json.Unmarshal(model.ByCategory, &metrics.ByCategory); err != nil {
			return nil, fmt.Errorf("failed to unmarshal category counts (id=%d): %w", model.ID, err)
		}
	}
	if len(model.ByPriority) > 0 {
		if err := json.Unmarshal(model.ByPriority, &metrics.ByPriority); err != nil {
			return nil, fmt.Errorf("failed to unmarshal priority counts (id=%d): %w", model.ID, err)
		}
	}
	if len(model.ByStatus) > 0 {
		if err := json.Unmarshal(model.ByStatus, &metrics.ByStatus); err != nil {
			return nil, fmt.Errorf("failed to unmarshal status counts (id=%d): %w", model.ID, err)
		}
	}
	return metrics, nil
}

func (m *AnalyticsMapperImpl) UserMetricsToModel(metrics *analytics.UserMetrics) *models.UserMetricsModel {
	return &models.UserMetricsModel{
		Date:           metrics.Date.UTC().Truncate(24 * time.Hour),
		ActiveUsers:    metrics.ActiveUsers,
		NewUsers:       metrics.NewUsers,
		ActiveStudents: metrics.ActiveStudents,
		ActiveFaculty:  metrics.ActiveFaculty,
		ActiveAdmins:   metrics.ActiveAdmins,
		Logins:         metrics.Logins,
	}
}

func (m *AnalyticsMapperImpl) UserMetricsToDomain(model *models.UserMetricsModel) *analytics.UserMetrics {
	return &analytics.UserMetrics{
		Date:           model.Date,
		ActiveUsers:    model.ActiveUsers,
		NewUsers:       model.NewUsers,
		ActiveStudents: model.ActiveStudents,
		ActiveFaculty:  model.ActiveFaculty,
		ActiveAdmins:   model.ActiveAdmins,
		Logins:         model.Logins,
	}
}
