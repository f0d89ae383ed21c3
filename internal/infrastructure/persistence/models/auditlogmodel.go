package models

import (
	"gorm.io/datatypes"

	"campusdesk/internal/shared/constants"
)

// AuditLogModel is append-only. Rows are never updated or deleted.
type AuditLogModel struct {
	ID         uint   `gorm:"primaryKey"`
	ActorID    *uint  `gorm:"index"`
	Action     string `gorm:"size:30;not null;index"`
	TargetKind string `gorm:"size:20;index:idx_audit_logs_target"`
	TargetID   uint   `gorm:"index:idx_audit_logs_target"`
	ObjectRepr string `gorm:"size:255"`
	IP         string `gorm:"size:45"`
	Details    datatypes.JSON
	CreatedAt  int64 `gorm:"autoCreateTime:milli;not null;index"`
}

func (AuditLogModel) TableName() string {
	return constants.TableAuditLogs
}
