package dto

import (
	"time"

	"campusdesk/internal/domain/analytics"
)

type IssueTrendPointDTO struct {
	Date               string  `json:"date"`
	Total              int64   `json:"total_issues"`
	New                int64   `json:"new_issues"`
	Resolved           int64   `json:"resolved_issues"`
	AvgResolutionHours float64 `json:"avg_resolution_hours"`
}

type UserActivityPointDTO struct {
	Date           string `json:"date"`
	ActiveUsers    int64  `json:"active_users"`
	NewUsers       int64  `json:"new_users"`
	ActiveStudents int64  `json:"active_students"`
	ActiveFaculty  int64  `json:"active_faculty"`
	ActiveAdmins   int64  `json:"active_admins"`
	Logins         int64  `json:"logins"`
}

const dateLayout = "2006-01-02"

func ToIssueTrendPointDTO(m *analytics.IssueMetrics) IssueTrendPointDTO {
	return IssueTrendPointDTO{
		Date:               m.Date.Format(dateLayout),
		Total:              m.Total,
		New:                m.New,
		Resolved:           m.Resolved,
		AvgResolutionHours: m.AvgResolutionHours,
	}
}

func ToUserActivityPointDTO(m *analytics.UserMetrics) UserActivityPointDTO {
	return UserActivityPointDTO{
		Date:           m.Date.Format(dateLayout),
		ActiveUsers:    m.ActiveUsers,
		NewUsers:       m.NewUsers,
		ActiveStudents: m.ActiveStudents,
		ActiveFaculty:  m.ActiveFaculty,
		ActiveAdmins:   m.ActiveAdmins,
		Logins:         m.Logins,
	}
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
