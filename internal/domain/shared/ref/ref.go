// Package ref provides a tagged reference to a domain entity. It replaces
// free-form generic references with a closed kind enum so every reference
// can be resolved and validated at compile time.
package ref

import "fmt"

type EntityKind string

const (
	EntityKindIssue   EntityKind = "issue"
	EntityKindComment EntityKind = "comment"
	EntityKindUser    EntityKind = "user"
)

var validKinds = map[EntityKind]bool{
	EntityKindIssue:   true,
	EntityKindComment: true,
	EntityKindUser:    true,
}

func (k EntityKind) String() string {
	return string(k)
}

func (k EntityKind) IsValid() bool {
	return validKinds[k]
}

// TargetRef identifies a referenced entity by kind and numeric ID.
// The zero value means "no target".
type TargetRef struct {
	Kind EntityKind
	ID   uint
}

func NewTargetRef(kind EntityKind, id uint) (TargetRef, error) {
	if !kind.IsValid() {
		return TargetRef{}, fmt.Errorf("invalid entity kind: %s", kind)
	}
	if id == 0 {
		return TargetRef{}, fmt.Errorf("target ID cannot be zero")
	}
	return TargetRef{Kind: kind, ID: id}, nil
}

func (r TargetRef) IsZero() bool {
	return r.Kind == "" && r.ID == 0
}

func (r TargetRef) String() string {
	if r.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s:%d", r.Kind, r.ID)
}
