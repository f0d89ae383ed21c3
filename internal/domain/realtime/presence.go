package realtime

import (
	"fmt"
	"time"
)

// OnlineUser tracks per-user connection presence. One row per user.
// A user counts as online when is_online is set and last_activity falls
// inside the online window; stale rows are filtered at read time.
type OnlineUser struct {
	id           uint
	userID       uint
	isOnline     bool
	lastActivity time.Time
	channelID    string
}

func NewOnlineUser(userID uint, channelID string) (*OnlineUser, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	return &OnlineUser{
		userID:       userID,
		isOnline:     true,
		lastActivity: time.Now(),
		channelID:    channelID,
	}, nil
}

func ReconstructOnlineUser(id, userID uint, isOnline bool, lastActivity time.Time, channelID string) *OnlineUser {
	return &OnlineUser{
		id:           id,
		userID:       userID,
		isOnline:     isOnline,
		lastActivity: lastActivity,
		channelID:    channelID,
	}
}

func (o *OnlineUser) ID() uint                { return o.id }
func (o *OnlineUser) UserID() uint            { return o.userID }
func (o *OnlineUser) IsOnline() bool          { return o.isOnline }
func (o *OnlineUser) LastActivity() time.Time { return o.lastActivity }
func (o *OnlineUser) ChannelID() string       { return o.channelID }

func (o *OnlineUser) SetID(id uint) {
	if o.id == 0 {
		o.id = id
	}
}

func (o *OnlineUser) Touch(channelID string) {
	o.isOnline = true
	o.lastActivity = time.Now()
	if channelID != "" {
		o.channelID = channelID
	}
}

func (o *OnlineUser) GoOffline() {
	o.isOnline = false
	o.lastActivity = time.Now()
}

// IsFresh reports whether the presence row is inside the given window.
func (o *OnlineUser) IsFresh(window time.Duration, now time.Time) bool {
	return o.isOnline && now.Sub(o.lastActivity) <= window
}

// TypingStatus tracks who is composing a comment on an issue. Unique per
// issue and user. Rows are never swept; staleness is a read-time filter.
type TypingStatus struct {
	id          uint
	issueID     uint
	userID      uint
	isTyping    bool
	lastUpdated time.Time
}

func NewTypingStatus(issueID, userID uint, isTyping bool) (*TypingStatus, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	return &TypingStatus{
		issueID:     issueID,
		userID:      userID,
		isTyping:    isTyping,
		lastUpdated: time.Now(),
	}, nil
}

func ReconstructTypingStatus(id, issueID, userID uint, isTyping bool, lastUpdated time.Time) *TypingStatus {
	return &TypingStatus{
		id:          id,
		issueID:     issueID,
		userID:      userID,
		isTyping:    isTyping,
		lastUpdated: lastUpdated,
	}
}

func (t *TypingStatus) ID() uint               { return t.id }
func (t *TypingStatus) IssueID() uint          { return t.issueID }
func (t *TypingStatus) UserID() uint           { return t.userID }
func (t *TypingStatus) IsTyping() bool         { return t.isTyping }
func (t *TypingStatus) LastUpdated() time.Time { return t.lastUpdated }

func (t *TypingStatus) SetID(id uint) {
	if t.id == 0 {
		t.id = id
	}
}

func (t *TypingStatus) Set(isTyping bool) {
	t.isTyping = isTyping
	t.lastUpdated = time.Now()
}

// IsLive reports whether the typing flag is still considered current.
func (t *TypingStatus) IsLive(window time.Duration, now time.Time) bool {
	return t.isTyping && now.Sub(t.lastUpdated) <= window
}

// IssueActivity is an append-only record of a user viewing an issue.
// The current viewer set is derived from distinct users with a VIEW
// record inside the viewing window.
type IssueActivity struct {
	id           uint
	issueID      uint
	userID       uint
	activityType string
	createdAt    time.Time
}

const ActivityTypeView = "VIEW"

func NewIssueActivity(issueID, userID uint, activityType string) (*IssueActivity, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if activityType == "" {
		activityType = ActivityTypeView
	}
	return &IssueActivity{
		issueID:      issueID,
		userID:       userID,
		activityType: activityType,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructIssueActivity(id, issueID, userID uint, activityType string, createdAt time.Time) *IssueActivity {
	return &IssueActivity{
		id:           id,
		issueID:      issueID,
		userID:       userID,
		activityType: activityType,
		createdAt:    createdAt,
	}
}

func (a *IssueActivity) ID() uint             { return a.id }
func (a *IssueActivity) IssueID() uint        { return a.issueID }
func (a *IssueActivity) UserID() uint         { return a.userID }
func (a *IssueActivity) ActivityType() string { return a.activityType }
func (a *IssueActivity) CreatedAt() time.Time { return a.createdAt }

func (a *IssueActivity) SetID(id uint) {
	if a.id == 0 {
		a.id = id
	}
}
