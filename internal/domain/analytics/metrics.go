package analytics

import "time"

// IssueMetrics is one daily rollup row. Totals and the per-enum maps are
// cumulative up to and including the day; New and Resolved count only
// same-day events. AvgResolutionHours averages created-to-first-resolved
// duration over issues resolved that day.
type IssueMetrics struct {
	Date               time.Time
	Total              int64
	New                int64
	Resolved           int64
	AvgResolutionHours float64
	ByCategory         map[string]int64
	ByPriority         map[string]int64
	ByStatus           map[string]int64
}

// UserMetrics is one daily rollup row. All fields are same-day counts.
type UserMetrics struct {
	Date           time.Time
	ActiveUsers    int64
	NewUsers       int64
	ActiveStudents int64
	ActiveFaculty  int64
	ActiveAdmins   int64
	Logins         int64
}

// DashboardSnapshot is the cached dashboard payload. It is regenerated
// when older than the staleness window and deleted whenever an issue is
// written.
type DashboardSnapshot struct {
	TotalIssues      int64            `json:"total_issues"`
	IssuesByStatus   map[string]int64 `json:"issues_by_status"`
	IssuesByCategory map[string]int64 `json:"issues_by_category"`
	IssuesByPriority map[string]int64 `json:"issues_by_priority"`
	RecentActivity   []RecentIssue    `json:"recent_activity"`
	NewIssuesToday   int64            `json:"new_issues_today"`
	ResolvedToday    int64            `json:"resolved_today"`
	ActiveUsersToday int64            `json:"active_users_today"`
	GeneratedAt      time.Time        `json:"generated_at"`
}

// RecentIssue is a trimmed issue view used in the dashboard feed.
type RecentIssue struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	UpdatedAt time.Time `json:"updated_at"`
}
