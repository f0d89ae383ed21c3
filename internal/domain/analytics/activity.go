package analytics

import (
	"fmt"
	"time"
)

type ActivityType string

const (
	ActivityLogin        ActivityType = "LOGIN"
	ActivityLogout       ActivityType = "LOGOUT"
	ActivityIssueCreate  ActivityType = "ISSUE_CREATE"
	ActivityIssueUpdate  ActivityType = "ISSUE_UPDATE"
	ActivityIssueView    ActivityType = "ISSUE_VIEW"
	ActivityCommentAdd   ActivityType = "COMMENT_ADD"
	ActivityStatusChange ActivityType = "STATUS_CHANGE"
	ActivityAssignment   ActivityType = "ASSIGNMENT"
)

var validActivityTypes = map[ActivityType]bool{
	ActivityLogin:        true,
	ActivityLogout:       true,
	ActivityIssueCreate:  true,
	ActivityIssueUpdate:  true,
	ActivityIssueView:    true,
	ActivityCommentAdd:   true,
	ActivityStatusChange: true,
	ActivityAssignment:   true,
}

func (t ActivityType) String() string {
	return string(t)
}

func (t ActivityType) IsValid() bool {
	return validActivityTypes[t]
}

// UserActivity is a single tracked user action, feeding the daily
// metric rollups and the user-activity report.
type UserActivity struct {
	id           uint
	userID       uint
	activityType ActivityType
	ip           string
	userAgent    string
	issueID      *uint
	details      map[string]interface{}
	createdAt    time.Time
}

func NewUserActivity(userID uint, activityType ActivityType, ip, userAgent string, issueID *uint, details map[string]interface{}) (*UserActivity, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !activityType.IsValid() {
		return nil, fmt.Errorf("invalid activity type: %s", activityType)
	}
	if details == nil {
		details = map[string]interface{}{}
	}

	return &UserActivity{
		userID:       userID,
		activityType: activityType,
		ip:           ip,
		userAgent:    userAgent,
		issueID:      issueID,
		details:      details,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructUserActivity(id, userID uint, activityType ActivityType, ip, userAgent string, issueID *uint, details map[string]interface{}, createdAt time.Time) *UserActivity {
	if details == nil {
		details = map[string]interface{}{}
	}
	return &UserActivity{
		id:           id,
		userID:       userID,
		activityType: activityType,
		ip:           ip,
		userAgent:    userAgent,
		issueID:      issueID,
		details:      details,
		createdAt:    createdAt,
	}
}

func (a *UserActivity) ID() uint                        { return a.id }
func (a *UserActivity) UserID() uint                    { return a.userID }
func (a *UserActivity) ActivityType() ActivityType      { return a.activityType }
func (a *UserActivity) IP() string                      { return a.ip }
func (a *UserActivity) UserAgent() string               { return a.userAgent }
func (a *UserActivity) IssueID() *uint                  { return a.issueID }
func (a *UserActivity) Details() map[string]interface{} { return a.details }
func (a *UserActivity) CreatedAt() time.Time            { return a.createdAt }

func (a *UserActivity) SetID(id uint) {
	if a.id == 0 {
		a.id = id
	}
}
