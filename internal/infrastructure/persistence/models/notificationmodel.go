package models

import "campusdesk/internal/shared/constants"

type NotificationModel struct {
	ID          uint   `gorm:"primaryKey"`
	RecipientID uint   `gorm:"not null;index:idx_notifications_recipient_read"`
	TargetKind  string `gorm:"size:20"`
	TargetID    uint
	Message     string `gorm:"type:text;not null"`
	Type        string `gorm:"size:30;not null"`
	IsRead      bool   `gorm:"not null;default:false;index:idx_notifications_recipient_read"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
