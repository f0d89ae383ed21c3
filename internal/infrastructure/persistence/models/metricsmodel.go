package models

import (
	"time"

	"gorm.io/datatypes"

	"campusdesk/internal/shared/constants"
)

// IssueMetricsModel is one rollup row per calendar day, upserted by the
// nightly job. Date is stored at UTC midnight.
type IssueMetricsModel struct {
	ID                 uint      `gorm:"primaryKey"`
	Date               time.Time `gorm:"uniqueIndex;not null"`
	Total              int64     `gorm:"not null;default:0"`
	New                int64     `gorm:"column:new_issues;not null;default:0"`
	Resolved           int64     `gorm:"not null;default:0"`
	AvgResolutionHours float64   `gorm:"not null;default:0"`
	ByCategory         datatypes.JSON
	ByPriority         datatypes.JSON
	ByStatus           datatypes.JSON
	CreatedAt          int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt          int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (IssueMetricsModel) TableName() string {
	return constants.TableIssueMetrics
}

type UserMetricsModel struct {
	ID             uint      `gorm:"primaryKey"`
	Date           time.Time `gorm:"uniqueIndex;not null"`
	ActiveUsers    int64     `gorm:"not null;default:0"`
	NewUsers       int64     `gorm:"not null;default:0"`
	ActiveStudents int64     `gorm:"not null;default:0"`
	ActiveFaculty  int64     `gorm:"not null;default:0"`
	ActiveAdmins   int64     `gorm:"not null;default:0"`
	Logins         int64     `gorm:"not null;default:0"`
	CreatedAt      int64     `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64     `gorm:"autoUpdateTime:milli;not null"`
}

func (UserMetricsModel) TableName() string {
	return constants.TableUserMetrics
}

// DashboardStatsModel stores cached dashboard payloads keyed by name.
// The payload column holds the serialized snapshot.
type DashboardStatsModel struct {
	ID        uint           `gorm:"primaryKey"`
	CacheKey  string         `gorm:"column:cache_key;uniqueIndex;size:100;not null"`
	Payload   datatypes.JSON `gorm:"not null"`
	CreatedAt int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (DashboardStatsModel) TableName() string {
	return constants.TableDashboardStats
}
