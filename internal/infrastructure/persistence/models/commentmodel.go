package models

import "campusdesk/internal/shared/constants"

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	IssueID   uint   `gorm:"not null;index"`
	AuthorID  uint   `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CommentModel) TableName() string {
	return constants.TableComments
}

type AttachmentModel struct {
	ID           uint   `gorm:"primaryKey"`
	IssueID      uint   `gorm:"not null;index"`
	UploaderID   uint   `gorm:"not null;index"`
	StoredName   string `gorm:"size:255;not null"`
	OriginalName string `gorm:"size:255;not null"`
	SizeBytes    int64  `gorm:"not null"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AttachmentModel) TableName() string {
	return constants.TableAttachments
}
