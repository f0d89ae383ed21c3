package models

import "campusdesk/internal/shared/constants"

// OnlineUserModel keeps one row per user. Freshness is decided at read
// time against last_activity, never by deleting stale rows.
type OnlineUserModel struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"uniqueIndex;not null"`
	IsOnline     bool   `gorm:"not null;default:false;index"`
	LastActivity int64  `gorm:"not null;index"`
	ChannelID    string `gorm:"size:100"`
}

func (OnlineUserModel) TableName() string {
	return constants.TableOnlineUsers
}

// TypingStatusModel keeps one row per (issue, user) pair.
type TypingStatusModel struct {
	ID          uint  `gorm:"primaryKey"`
	IssueID     uint  `gorm:"not null;uniqueIndex:idx_typing_issue_user"`
	UserID      uint  `gorm:"not null;uniqueIndex:idx_typing_issue_user"`
	IsTyping    bool  `gorm:"not null;default:false"`
	LastUpdated int64 `gorm:"not null;index"`
}

func (TypingStatusModel) TableName() string {
	return constants.TableTypingStatuses
}

type IssueActivityModel struct {
	ID           uint   `gorm:"primaryKey"`
	IssueID      uint   `gorm:"not null;index:idx_issue_activities_issue_time"`
	UserID       uint   `gorm:"not null;index"`
	ActivityType string `gorm:"size:20;not null"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null;index:idx_issue_activities_issue_time"`
}

func (IssueActivityModel) TableName() string {
	return constants.TableIssueActivities
}
