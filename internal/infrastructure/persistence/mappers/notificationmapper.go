package mappers

import (
	"campusdesk/internal/domain/notification"
	vo "campusdesk/internal/domain/notification/valueobjects"
	"campusdesk/internal/domain/shared/ref"
	"campusdesk/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToModel(entity *notification.Notification) *models.NotificationModel
	ToDomain(model *models.NotificationModel) *notification.Notification
	ToDomains(models []*models.NotificationModel) []*notification.Notification
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(entity *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:          entity.ID(),
		RecipientID: entity.RecipientID(),
		TargetKind:  entity.Target().Kind.String(),
		TargetID:    entity.Target().ID,
		Message:     entity.Message(),
		Type:        entity.Type().String(),
		IsRead:      entity.IsRead(),
		CreatedAt:   timeToMillis(entity.CreatedAt()),
	}
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) *notification.Notification {
	target := ref.TargetRef{Kind: ref.EntityKind(model.TargetKind), ID: model.TargetID}
	return notification.ReconstructNotification(
		model.ID,
		model.RecipientID,
		target,
		model.Message,
		vo.NotificationType(model.Type),
		model.IsRead,
		millisToTime(model.CreatedAt),
	)
}

func (m *NotificationMapperImpl) ToDomains(notificationModels []*models.NotificationModel) []*notification.Notification {
	entities := make([]*notification.Notification, 0, len(notificationModels))
	for _, model := range notificationModels {
		entities = append(entities, m.ToDomain(model))
	}
	return entities
}
