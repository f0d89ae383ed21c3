package models

import (
	"gorm.io/datatypes"

	"campusdesk/internal/shared/constants"
)

type FrontendEndpointModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex;size:100;not null"`
	URL          string `gorm:"size:500;not null"`
	RequiresAuth bool   `gorm:"not null;default:false"`
	IsActive     bool   `gorm:"not null;default:true;index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (FrontendEndpointModel) TableName() string {
	return constants.TableFrontendEndpoints
}

type FrontendAPICallModel struct {
	ID            uint           `gorm:"primaryKey"`
	CallType      string         `gorm:"size:30;not null;index"`
	EndpointID    uint           `gorm:"not null;index"`
	Payload       datatypes.JSON `gorm:"not null"`
	Status        string         `gorm:"size:20;not null;index"`
	Response      string         `gorm:"type:text"`
	ErrorMessage  string         `gorm:"type:text"`
	RetryCount    int            `gorm:"not null;default:0"`
	InitiatedByID *uint          `gorm:"index"`
	CreatedAt     int64          `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt     int64          `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (FrontendAPICallModel) TableName() string {
	return constants.TableFrontendAPICalls
}
