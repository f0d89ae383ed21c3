package audit

import (
	"fmt"
	"time"

	vo "campusdesk/internal/domain/audit/valueobjects"
	"campusdesk/internal/domain/shared/ref"
)

// Entry is an append-only audit record. Actor may be zero for anonymous
// or system-originated actions.
type Entry struct {
	id         uint
	actorID    *uint
	action     vo.Action
	target     ref.TargetRef
	objectRepr string
	ip         string
	details    map[string]interface{}
	createdAt  time.Time
}

func NewEntry(actorID *uint, action vo.Action, target ref.TargetRef, objectRepr, ip string, details map[string]interface{}) (*Entry, error) {
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid audit action: %s", action)
	}
	if details == nil {
		details = map[string]interface{}{}
	}

	return &Entry{
		actorID:    actorID,
		action:     action,
		target:     target,
		objectRepr: objectRepr,
		ip:         ip,
		details:    details,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructEntry(
	id uint,
	actorID *uint,
	action vo.Action,
	target ref.TargetRef,
	objectRepr, ip string,
	details map[string]interface{},
	createdAt time.Time,
) *Entry {
	if details == nil {
		details = map[string]interface{}{}
	}
	return &Entry{
		id:         id,
		actorID:    actorID,
		action:     action,
		target:     target,
		objectRepr: objectRepr,
		ip:         ip,
		details:    details,
		createdAt:  createdAt,
	}
}

func (e *Entry) ID() uint                         { return e.id }
func (e *Entry) ActorID() *uint                   { return e.actorID }
func (e *Entry) Action() vo.Action                { return e.action }
func (e *Entry) Target() ref.TargetRef            { return e.target }
func (e *Entry) ObjectRepr() string               { return e.objectRepr }
func (e *Entry) IP() string                       { return e.ip }
func (e *Entry) Details() map[string]interface{}  { return e.details }
func (e *Entry) CreatedAt() time.Time             { return e.createdAt }

func (e *Entry) SetID(id uint) {
	if e.id == 0 {
		e.id = id
	}
}
