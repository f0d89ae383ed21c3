package models

import "campusdesk/internal/shared/constants"

type IssueModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Category    string `gorm:"size:50;not null;index"`
	Priority    string `gorm:"size:20;not null;index"`
	Status      string `gorm:"size:20;not null;index"`
	SubmitterID uint   `gorm:"not null;index"`
	AssigneeID  *uint  `gorm:"index"`
	ExternalRef string `gorm:"size:100"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null;index"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (IssueModel) TableName() string {
	return constants.TableIssues
}

// StatusRecordModel is append-only. Every status transition writes
// exactly one row; rows are never updated or deleted.
type StatusRecordModel struct {
	ID        uint   `gorm:"primaryKey"`
	IssueID   uint   `gorm:"not null;index"`
	Status    string `gorm:"size:20;not null"`
	Notes     string `gorm:"type:text"`
	ActorID   uint   `gorm:"not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (StatusRecordModel) TableName() string {
	return constants.TableIssueStatuses
}
