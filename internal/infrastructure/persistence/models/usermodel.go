package models

import "campusdesk/internal/shared/constants"

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	FirstName    string `gorm:"size:100;not null"`
	LastName     string `gorm:"size:100;not null"`
	Role         string `gorm:"size:20;not null;index"`
	Department   string `gorm:"size:100"`
	IsActive     bool   `gorm:"not null;default:true;index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
