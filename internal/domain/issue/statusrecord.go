package issue

import (
	"fmt"
	"time"

	vo "campusdesk/internal/domain/issue/valueobjects"
)

// StatusRecord is an immutable history entry. One record is appended per
// status transition and records are never updated or deleted.
type StatusRecord struct {
	id        uint
	issueID   uint
	status    vo.Status
	notes     string
	actorID   uint
	createdAt time.Time
}

func NewStatusRecord(issueID uint, status vo.Status, notes string, actorID uint) (*StatusRecord, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if actorID == 0 {
		return nil, fmt.Errorf("actor ID is required")
	}

	return &StatusRecord{
		issueID:   issueID,
		status:    status,
		notes:     notes,
		actorID:   actorID,
		createdAt: time.Now(),
	}, nil
}

func ReconstructStatusRecord(id, issueID uint, status vo.Status, notes string, actorID uint, createdAt time.Time) *StatusRecord {
	return &StatusRecord{
		id:        id,
		issueID:   issueID,
		status:    status,
		notes:     notes,
		actorID:   actorID,
		createdAt: createdAt,
	}
}

func (r *StatusRecord) ID() uint             { return r.id }
func (r *StatusRecord) IssueID() uint        { return r.issueID }
func (r *StatusRecord) Status() vo.Status    { return r.status }
func (r *StatusRecord) Notes() string        { return r.notes }
func (r *StatusRecord) ActorID() uint        { return r.actorID }
func (r *StatusRecord) CreatedAt() time.Time { return r.createdAt }

func (r *StatusRecord) SetID(id uint) {
	if r.id == 0 {
		r.id = id
	}
}
