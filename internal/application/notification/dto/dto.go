package dto

import (
	"time"

	"campusdesk/internal/domain/notification"
)

type NotificationDTO struct {
	ID         uint      `json:"id"`
	Type       string    `json:"notification_type"`
	Message    string    `json:"message"`
	TargetKind string    `json:"target_kind,omitempty"`
	TargetID   uint      `json:"target_id,omitempty"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToNotificationDTO(n *notification.Notification) NotificationDTO {
	d := NotificationDTO{
		ID:        n.ID(),
		Type:      n.Type().String(),
		Message:   n.Message(),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}
	if !n.Target().IsZero() {
		d.TargetKind = n.Target().Kind.String()
		d.TargetID = n.Target().ID
	}
	return d
}

func ToNotificationDTOs(notifications []*notification.Notification) []NotificationDTO {
	result := make([]NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, ToNotificationDTO(n))
	}
	return result
}
