package http

import (
	"campusdesk/internal/infrastructure/repository"
	"campusdesk/internal/shared/db"
)

// repositories groups every persistence adapter behind one field on the
// container.
type repositories struct {
	users         *repository.UserRepository
	issues        *repository.IssueRepository
	statusRecords *repository.StatusRecordRepository
	comments      *repository.CommentRepository
	attachments   *repository.AttachmentRepository
	notifications *repository.NotificationRepository
	auditLogs     *repository.AuditLogRepository
	userActivity  *repository.UserActivityRepository
	issueMetrics  *repository.IssueMetricsRepository
	userMetrics   *repository.UserMetricsRepository
	issueStats    *repository.IssueStatsRepository
	snapshots     *repository.DashboardSnapshotRepository
	presence      *repository.PresenceRepository
	typing        *repository.TypingRepository
	issueActivity *repository.IssueActivityRepository
	endpoints     *repository.CallbackEndpointRepository
	apiCalls      *repository.APICallRepository

	txManager *db.TransactionManager
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		users:         repository.NewUserRepository(c.db),
		issues:        repository.NewIssueRepository(c.db),
		statusRecords: repository.NewStatusRecordRepository(c.db),
		comments:      repository.NewCommentRepository(c.db),
		attachments:   repository.NewAttachmentRepository(c.db),
		notifications: repository.NewNotificationRepository(c.db),
		auditLogs:     repository.NewAuditLogRepository(c.db),
		userActivity:  repository.NewUserActivityRepository(c.db),
		issueMetrics:  repository.NewIssueMetricsRepository(c.db),
		userMetrics:   repository.NewUserMetricsRepository(c.db),
		issueStats:    repository.NewIssueStatsRepository(c.db),
		snapshots:     repository.NewDashboardSnapshotRepository(c.db),
		presence:      repository.NewPresenceRepository(c.db),
		typing:        repository.NewTypingRepository(c.db),
		issueActivity: repository.NewIssueActivityRepository(c.db),
		endpoints:     repository.NewCallbackEndpointRepository(c.db),
		apiCalls:      repository.NewAPICallRepository(c.db),
		txManager:     db.NewTransactionManager(c.db),
	}
}
