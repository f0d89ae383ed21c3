package issue

import (
	"fmt"
	"time"
)

type Comment struct {
	id        uint
	issueID   uint
	authorID  uint
	content   string
	createdAt time.Time
	updatedAt time.Time
}

func NewComment(issueID, authorID uint, content string) (*Comment, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if len(content) > 5000 {
		return nil, fmt.Errorf("content exceeds maximum length of 5000 characters")
	}

	now := time.Now()
	return &Comment{
		issueID:   issueID,
		authorID:  authorID,
		content:   content,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructComment(id, issueID, authorID uint, content string, createdAt, updatedAt time.Time) *Comment {
	return &Comment{
		id:        id,
		issueID:   issueID,
		authorID:  authorID,
		content:   content,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) IssueID() uint        { return c.issueID }
func (c *Comment) AuthorID() uint       { return c.authorID }
func (c *Comment) Content() string      { return c.content }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
func (c *Comment) UpdatedAt() time.Time { return c.updatedAt }

func (c *Comment) SetID(id uint) {
	if c.id == 0 {
		c.id = id
	}
}
