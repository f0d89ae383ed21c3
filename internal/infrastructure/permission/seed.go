package permission

import (
	"fmt"

	vo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/shared/logger"
)

// Resource and action names used in policies and route metadata.
const (
	ResourceIssues        = "issues"
	ResourceComments      = "comments"
	ResourceAttachments   = "attachments"
	ResourceNotifications = "notifications"
	ResourceRealtime      = "realtime"
	ResourceAnalytics     = "analytics"
	ResourceAudit         = "audit"
	ResourceUsers         = "users"
	ResourceCallbacks     = "callbacks"

	ActionRead   = "read"
	ActionWrite  = "write"
	ActionManage = "manage"
)

// SeedDefaultPolicies installs the baseline role grants. AddPolicy is
// idempotent in casbin, so reseeding on startup is safe.
func SeedDefaultPolicies(e *Enforcer, log logger.Interface) error {
	student := vo.RoleStudent.String()
	faculty := vo.RoleFaculty.String()
	admin := vo.RoleAdmin.String()

	policies := [][]string{
		// Students submit and follow their own issues. Row-level
		// visibility is enforced in the use cases.
		{student, ResourceIssues, ActionRead},
		{student, ResourceIssues, ActionWrite},
		{student, ResourceComments, ActionRead},
		{student, ResourceComments, ActionWrite},
		{student, ResourceAttachments, ActionRead},
		{student, ResourceAttachments, ActionWrite},
		{student, ResourceNotifications, ActionRead},
		{student, ResourceNotifications, ActionWrite},
		{student, ResourceRealtime, ActionRead},
		{student, ResourceRealtime, ActionWrite},

		// Faculty additionally work assigned issues.
		{faculty, ResourceIssues, ActionRead},
		{faculty, ResourceIssues, ActionWrite},
		{faculty, ResourceIssues, ActionManage},
		{faculty, ResourceComments, ActionRead},
		{faculty, ResourceComments, ActionWrite},
		{faculty, ResourceAttachments, ActionRead},
		{faculty, ResourceAttachments, ActionWrite},
		{faculty, ResourceNotifications, ActionRead},
		{faculty, ResourceNotifications, ActionWrite},
		{faculty, ResourceRealtime, ActionRead},
		{faculty, ResourceRealtime, ActionWrite},

		// Admins oversee everything.
		{admin, ResourceIssues, ActionRead},
		{admin, ResourceIssues, ActionWrite},
		{admin, ResourceIssues, ActionManage},
		{admin, ResourceComments, ActionRead},
		{admin, ResourceComments, ActionWrite},
		{admin, ResourceAttachments, ActionRead},
		{admin, ResourceAttachments, ActionWrite},
		{admin, ResourceNotifications, ActionRead},
		{admin, ResourceNotifications, ActionWrite},
		{admin, ResourceRealtime, ActionRead},
		{admin, ResourceRealtime, ActionWrite},
		{admin, ResourceAnalytics, ActionRead},
		{admin, ResourceAudit, ActionRead},
		{admin, ResourceUsers, ActionRead},
		{admin, ResourceUsers, ActionManage},
		{admin, ResourceCallbacks, ActionRead},
		{admin, ResourceCallbacks, ActionManage},
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, policy := range policies {
		if _, err := e.enforcer.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			return fmt.Errorf("failed to add policy [%s %s %s]: %w", policy[0], policy[1], policy[2], err)
		}
	}

	if err := e.enforcer.SavePolicy(); err != nil {
		return fmt.Errorf("failed to save seeded policies: %w", err)
	}

	log.Infow("seeded default role policies", "count", len(policies))
	return nil
}
