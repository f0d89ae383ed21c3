package issue

import (
	"context"

	vo "campusdesk/internal/domain/issue/valueobjects"
)

type IssueRepository interface {
	Save(ctx context.Context, issue *Issue) error
	Update(ctx context.Context, issue *Issue) error
	Delete(ctx context.Context, issueID uint) error
	GetByID(ctx context.Context, issueID uint) (*Issue, error)
	List(ctx context.Context, filter IssueFilter) ([]*Issue, int64, error)
	GetSubmittedBy(ctx context.Context, submitterID uint, filter IssueFilter) ([]*Issue, int64, error)
	GetAssignedTo(ctx context.Context, assigneeID uint, filter IssueFilter) ([]*Issue, int64, error)
}

type IssueFilter struct {
	Status      *vo.Status
	Priority    *vo.Priority
	Category    *vo.Category
	SubmitterID *uint
	AssigneeID  *uint
	// ParticipantID matches issues the user submitted or is assigned to.
	ParticipantID *uint
	Search        string
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}

type StatusRecordRepository interface {
	Append(ctx context.Context, record *StatusRecord) error
	GetByIssueID(ctx context.Context, issueID uint) ([]*StatusRecord, error)
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, commentID uint) (*Comment, error)
	GetByIssueID(ctx context.Context, issueID uint) ([]*Comment, error)
	Delete(ctx context.Context, commentID uint) error
}

type AttachmentRepository interface {
	Save(ctx context.Context, attachment *Attachment) error
	GetByID(ctx context.Context, attachmentID uint) (*Attachment, error)
	GetByIssueID(ctx context.Context, issueID uint) ([]*Attachment, error)
	Delete(ctx context.Context, attachmentID uint) error
}
