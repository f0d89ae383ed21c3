package dto

import (
	"time"

	"campusdesk/internal/domain/issue"
)

type IssueDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Priority      string    `json:"priority"`
	Status        string    `json:"status"`
	SubmitterID   uint      `json:"submitter_id"`
	SubmitterName string    `json:"submitter_name,omitempty"`
	AssigneeID    *uint     `json:"assignee_id"`
	AssigneeName  string    `json:"assignee_name,omitempty"`
	ExternalRef   string    `json:"external_ref,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type IssueListItemDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	SubmitterID uint      `json:"submitter_id"`
	AssigneeID  *uint     `json:"assignee_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type StatusRecordDTO struct {
	ID        uint      `json:"id"`
	IssueID   uint      `json:"issue_id"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	ActorID   uint      `json:"actor_id"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentDTO struct {
	ID         uint      `json:"id"`
	IssueID    uint      `json:"issue_id"`
	AuthorID   uint      `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type AttachmentDTO struct {
	ID           uint   `json:"id"`
	IssueID      uint   `json:"issue_id"`
	UploaderID   uint   `json:"uploader_id"`
	OriginalName string `json:"original_name"`
	// StoredName is the on-disk name; never exposed to clients.
	StoredName string    `json:"-"`
	SizeBytes  int64     `json:"size_bytes"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToIssueDTO(i *issue.Issue) *IssueDTO {
	if i == nil {
		return nil
	}
	return &IssueDTO{
		ID:          i.ID(),
		Title:       i.Title(),
		Description: i.Description(),
		Category:    i.Category().String(),
		Priority:    i.Priority().String(),
		Status:      i.Status().String(),
		SubmitterID: i.SubmitterID(),
		AssigneeID:  i.AssigneeID(),
		ExternalRef: i.ExternalRef(),
		CreatedAt:   i.CreatedAt(),
		UpdatedAt:   i.UpdatedAt(),
	}
}

func ToIssueListItemDTO(i *issue.Issue) IssueListItemDTO {
	return IssueListItemDTO{
		ID:          i.ID(),
		Title:       i.Title(),
		Category:    i.Category().String(),
		Priority:    i.Priority().String(),
		Status:      i.Status().String(),
		SubmitterID: i.SubmitterID(),
		AssigneeID:  i.AssigneeID(),
		CreatedAt:   i.CreatedAt(),
		UpdatedAt:   i.UpdatedAt(),
	}
}

func ToStatusRecordDTO(r *issue.StatusRecord) StatusRecordDTO {
	return StatusRecordDTO{
		ID:        r.ID(),
		IssueID:   r.IssueID(),
		Status:    r.Status().String(),
		Notes:     r.Notes(),
		ActorID:   r.ActorID(),
		CreatedAt: r.CreatedAt(),
	}
}

func ToCommentDTO(c *issue.Comment) CommentDTO {
	return CommentDTO{
		ID:        c.ID(),
		IssueID:   c.IssueID(),
		AuthorID:  c.AuthorID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
	}
}

func ToAttachmentDTO(a *issue.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:           a.ID(),
		IssueID:      a.IssueID(),
		UploaderID:   a.UploaderID(),
		OriginalName: a.OriginalName(),
		StoredName:   a.StoredName(),
		SizeBytes:    a.SizeBytes(),
		CreatedAt:    a.CreatedAt(),
	}
}
