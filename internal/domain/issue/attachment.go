package issue

import (
	"fmt"
	"time"
)

type Attachment struct {
	id           uint
	issueID      uint
	uploaderID   uint
	storedName   string
	originalName string
	sizeBytes    int64
	createdAt    time.Time
}

func NewAttachment(issueID, uploaderID uint, storedName, originalName string, sizeBytes int64) (*Attachment, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if uploaderID == 0 {
		return nil, fmt.Errorf("uploader ID is required")
	}
	if storedName == "" {
		return nil, fmt.Errorf("stored file name is required")
	}
	if originalName == "" {
		return nil, fmt.Errorf("original file name is required")
	}
	if sizeBytes < 0 {
		return nil, fmt.Errorf("size cannot be negative")
	}

	return &Attachment{
		issueID:      issueID,
		uploaderID:   uploaderID,
		storedName:   storedName,
		originalName: originalName,
		sizeBytes:    sizeBytes,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructAttachment(id, issueID, uploaderID uint, storedName, originalName string, sizeBytes int64, createdAt time.Time) *Attachment {
	return &Attachment{
		id:           id,
		issueID:      issueID,
		uploaderID:   uploaderID,
		storedName:   storedName,
		originalName: originalName,
		sizeBytes:    sizeBytes,
		createdAt:    createdAt,
	}
}

func (a *Attachment) ID() uint             { return a.id }
func (a *Attachment) IssueID() uint        { return a.issueID }
func (a *Attachment) UploaderID() uint     { return a.uploaderID }
func (a *Attachment) StoredName() string   { return a.storedName }
func (a *Attachment) OriginalName() string { return a.originalName }
func (a *Attachment) SizeBytes() int64     { return a.sizeBytes }
func (a *Attachment) CreatedAt() time.Time { return a.createdAt }

func (a *Attachment) SetID(id uint) {
	if a.id == 0 {
		a.id = id
	}
}
