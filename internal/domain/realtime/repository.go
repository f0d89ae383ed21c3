package realtime

import (
	"context"
	"time"
)

type PresenceRepository interface {
	UpsertOnline(ctx context.Context, userID uint, channelID string) error
	SetOffline(ctx context.Context, userID uint) error
	// ListOnline returns users whose presence row is fresher than since.
	ListOnline(ctx context.Context, since time.Time) ([]*OnlineUser, error)
}

type TypingRepository interface {
	Upsert(ctx context.Context, issueID, userID uint, isTyping bool) error
	// ListTyping returns typing rows for the issue updated after since,
	// excluding excludeUserID when non-zero.
	ListTyping(ctx context.Context, issueID uint, since time.Time, excludeUserID uint) ([]*TypingStatus, error)
}

type IssueActivityRepository interface {
	Append(ctx context.Context, activity *IssueActivity) error
	// ListViewerIDs returns distinct user IDs with a VIEW record for the
	// issue after since.
	ListViewerIDs(ctx context.Context, issueID uint, since time.Time) ([]uint, error)
}
