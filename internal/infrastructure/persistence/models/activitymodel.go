package models

import (
	"gorm.io/datatypes"

	"campusdesk/internal/shared/constants"
)

type UserActivityModel struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"not null;index:idx_user_activities_user_time"`
	ActivityType string `gorm:"size:30;not null;index"`
	IP           string `gorm:"size:45"`
	UserAgent    string `gorm:"size:255"`
	IssueID      *uint  `gorm:"index"`
	Details      datatypes.JSON
	CreatedAt    int64 `gorm:"autoCreateTime:milli;not null;index:idx_user_activities_user_time"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserActivityModel) TableName() string {
	return constants.TableUserActivities
}
