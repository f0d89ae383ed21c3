package audit

import (
	"context"
	"time"

	vo "campusdesk/internal/domain/audit/valueobjects"
	"campusdesk/internal/domain/shared/ref"
)

type EntryRepository interface {
	Append(ctx context.Context, entry *Entry) error
	GetByID(ctx context.Context, id uint) (*Entry, error)
	List(ctx context.Context, filter EntryFilter) ([]*Entry, int64, error)
}

type EntryFilter struct {
	Action     *vo.Action
	ActorID    *uint
	TargetKind *ref.EntityKind
	Search     string
	From       *time.Time
	To         *time.Time
	Page       int
	PageSize   int
}
