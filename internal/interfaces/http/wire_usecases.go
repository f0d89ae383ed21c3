package http

import (
	"time"

	analyticsusecases "campusdesk/internal/application/analytics/usecases"
	auditusecases "campusdesk/internal/application/audit/usecases"
	callbackusecases "campusdesk/internal/application/callback/usecases"
	issueusecases "campusdesk/internal/application/issue/usecases"
	notificationusecases "campusdesk/internal/application/notification/usecases"
	realtimeusecases "campusdesk/internal/application/realtime/usecases"
	userusecases "campusdesk/internal/application/user/usecases"
	"campusdesk/internal/infrastructure/services"
	"campusdesk/internal/interfaces/adapters"
)

// allUseCases groups the application layer behind one field on the
// container.
type allUseCases struct {
	// user
	register       *userusecases.RegisterUseCase
	login          *userusecases.LoginUseCase
	logout         *userusecases.LogoutUseCase
	refreshToken   *userusecases.RefreshTokenUseCase
	getProfile     *userusecases.GetProfileUseCase
	updateProfile  *userusecases.UpdateProfileUseCase
	changePassword *userusecases.ChangePasswordUseCase
	listUsers      *userusecases.ListUsersUseCase
	listFaculty    *userusecases.ListFacultyUseCase

	// issue
	createIssue      *issueusecases.CreateIssueUseCase
	getIssue         *issueusecases.GetIssueUseCase
	listIssues       *issueusecases.ListIssuesUseCase
	updateIssue      *issueusecases.UpdateIssueUseCase
	deleteIssue      *issueusecases.DeleteIssueUseCase
	assignIssue      *issueusecases.AssignIssueUseCase
	changeStatus     *issueusecases.ChangeStatusUseCase
	resolveIssue     *issueusecases.ResolveIssueUseCase
	escalateIssue    *issueusecases.EscalateIssueUseCase
	getStatusHistory *issueusecases.GetStatusHistoryUseCase
	addComment       *issueusecases.AddCommentUseCase
	listComments     *issueusecases.ListCommentsUseCase
	addAttachment    *issueusecases.AddAttachmentUseCase
	listAttachments  *issueusecases.ListAttachmentsUseCase

	// notification
	listNotifications *notificationusecases.ListNotificationsUseCase
	recentNotifs      *notificationusecases.GetRecentUseCase
	unreadCount       *notificationusecases.GetUnreadCountUseCase
	markAsRead        *notificationusecases.MarkAsReadUseCase
	markAllAsRead     *notificationusecases.MarkAllAsReadUseCase

	// realtime
	markOnline      *realtimeusecases.MarkOnlineUseCase
	markOffline     *realtimeusecases.MarkOfflineUseCase
	listOnlineUsers *realtimeusecases.ListOnlineUsersUseCase
	setTyping       *realtimeusecases.SetTypingUseCase
	listTyping      *realtimeusecases.ListTypingUseCase
	recordView      *realtimeusecases.RecordViewUseCase
	listViewers     *realtimeusecases.ListViewersUseCase

	// analytics
	dashboardStats *analyticsusecases.GetDashboardStatsUseCase
	issueTrends    *analyticsusecases.GetIssueTrendsUseCase
	userActivity   *analyticsusecases.GetUserActivityUseCase
	recordActivity *analyticsusecases.RecordActivityUseCase
	dailyRollup    *analyticsusecases.RollupDailyMetricsUseCase

	// audit
	listAuditEntries *auditusecases.ListEntriesUseCase
	recordAuditEntry *auditusecases.RecordEntryUseCase

	// callback
	createEndpoint    *callbackusecases.CreateEndpointUseCase
	updateEndpoint    *callbackusecases.UpdateEndpointUseCase
	deleteEndpoint    *callbackusecases.DeleteEndpointUseCase
	listEndpoints     *callbackusecases.ListEndpointsUseCase
	triggerCallback   *callbackusecases.TriggerCallbackUseCase
	listCalls         *callbackusecases.ListCallsUseCase
	retryPendingCalls *callbackusecases.RetryPendingCallsUseCase
}

func (c *Container) initUseCases() {
	tokens := adapters.NewTokenService(c.jwtSvc)
	frontend := services.NewFrontendClient(
		time.Duration(c.cfg.Callback.TimeoutSeconds)*time.Second,
		c.cfg.Callback.ServiceToken,
	)
	c.frontendClient = frontend

	// The rollup doubles as the trend usecases' backfiller.
	dailyRollup := analyticsusecases.NewRollupDailyMetricsUseCase(
		c.repos.issueStats,
		c.repos.userActivity,
		c.repos.issueMetrics,
		c.repos.userMetrics,
		c.repos.users,
		c.log,
	)

	c.ucs = &allUseCases{
		register:       userusecases.NewRegisterUseCase(c.repos.users, c.hasher, c.log),
		login:          userusecases.NewLoginUseCase(c.repos.users, c.hasher, tokens, c.dispatcher, c.log),
		logout:         userusecases.NewLogoutUseCase(c.repos.users, c.dispatcher, c.log),
		refreshToken:   userusecases.NewRefreshTokenUseCase(tokens, c.log),
		getProfile:     userusecases.NewGetProfileUseCase(c.repos.users, c.log),
		updateProfile:  userusecases.NewUpdateProfileUseCase(c.repos.users, c.log),
		changePassword: userusecases.NewChangePasswordUseCase(c.repos.users, c.hasher, c.log),
		listUsers:      userusecases.NewListUsersUseCase(c.repos.users, c.log),
		listFaculty:    userusecases.NewListFacultyUseCase(c.repos.users, c.log),

		createIssue:      issueusecases.NewCreateIssueUseCase(c.repos.issues, c.repos.statusRecords, c.repos.txManager, c.dispatcher, c.log),
		getIssue:         issueusecases.NewGetIssueUseCase(c.repos.issues, c.repos.users, c.log),
		listIssues:       issueusecases.NewListIssuesUseCase(c.repos.issues, c.log),
		updateIssue:      issueusecases.NewUpdateIssueUseCase(c.repos.issues, c.dispatcher, c.log),
		deleteIssue:      issueusecases.NewDeleteIssueUseCase(c.repos.issues, c.log),
		assignIssue:      issueusecases.NewAssignIssueUseCase(c.repos.issues, c.repos.statusRecords, c.repos.users, c.repos.txManager, c.dispatcher, c.log),
		changeStatus:     issueusecases.NewChangeStatusUseCase(c.repos.issues, c.repos.statusRecords, c.repos.txManager, c.dispatcher, c.log),
		resolveIssue:     issueusecases.NewResolveIssueUseCase(c.repos.issues, c.repos.statusRecords, c.repos.txManager, c.dispatcher, c.log),
		escalateIssue:    issueusecases.NewEscalateIssueUseCase(c.repos.issues, c.repos.statusRecords, c.repos.txManager, c.dispatcher, c.log),
		getStatusHistory: issueusecases.NewGetStatusHistoryUseCase(c.repos.issues, c.repos.statusRecords, c.log),
		addComment:       issueusecases.NewAddCommentUseCase(c.repos.issues, c.repos.comments, c.dispatcher, c.log),
		listComments:     issueusecases.NewListCommentsUseCase(c.repos.issues, c.repos.comments, c.repos.users, c.log),
		addAttachment:    issueusecases.NewAddAttachmentUseCase(c.repos.issues, c.repos.attachments, c.log),
		listAttachments:  issueusecases.NewListAttachmentsUseCase(c.repos.issues, c.repos.attachments, c.log),

		listNotifications: notificationusecases.NewListNotificationsUseCase(c.repos.notifications, c.log),
		recentNotifs:      notificationusecases.NewGetRecentUseCase(c.repos.notifications, c.log),
		unreadCount:       notificationusecases.NewGetUnreadCountUseCase(c.repos.notifications, c.log),
		markAsRead:        notificationusecases.NewMarkAsReadUseCase(c.repos.notifications, c.log),
		markAllAsRead:     notificationusecases.NewMarkAllAsReadUseCase(c.repos.notifications, c.log),

		markOnline:      realtimeusecases.NewMarkOnlineUseCase(c.repos.presence, c.log),
		markOffline:     realtimeusecases.NewMarkOfflineUseCase(c.repos.presence, c.log),
		listOnlineUsers: realtimeusecases.NewListOnlineUsersUseCase(c.repos.presence, c.repos.users, c.log),
		setTyping:       realtimeusecases.NewSetTypingUseCase(c.repos.typing, c.log),
		listTyping:      realtimeusecases.NewListTypingUseCase(c.repos.typing, c.repos.users, c.log),
		recordView:      realtimeusecases.NewRecordViewUseCase(c.repos.issueActivity, c.log),
		listViewers:     realtimeusecases.NewListViewersUseCase(c.repos.issueActivity, c.repos.users, c.log),

		dashboardStats: analyticsusecases.NewGetDashboardStatsUseCase(c.repos.snapshots, c.repos.issueStats, c.repos.userActivity, c.log),
		issueTrends:    analyticsusecases.NewGetIssueTrendsUseCase(c.repos.issueMetrics, dailyRollup, c.log),
		userActivity:   analyticsusecases.NewGetUserActivityUseCase(c.repos.userMetrics, dailyRollup, c.log),
		recordActivity: analyticsusecases.NewRecordActivityUseCase(c.repos.userActivity, c.log),
		dailyRollup:    dailyRollup,

		listAuditEntries: auditusecases.NewListEntriesUseCase(c.repos.auditLogs, c.repos.users, c.log),
		recordAuditEntry: auditusecases.NewRecordEntryUseCase(c.repos.auditLogs, c.log),

		createEndpoint:    callbackusecases.NewCreateEndpointUseCase(c.repos.endpoints, c.log),
		updateEndpoint:    callbackusecases.NewUpdateEndpointUseCase(c.repos.endpoints, c.log),
		deleteEndpoint:    callbackusecases.NewDeleteEndpointUseCase(c.repos.endpoints, c.log),
		listEndpoints:     callbackusecases.NewListEndpointsUseCase(c.repos.endpoints, c.log),
		triggerCallback:   callbackusecases.NewTriggerCallbackUseCase(c.repos.endpoints, c.repos.apiCalls, frontend, c.cfg.Callback.MaxRetries, c.log),
		listCalls:         callbackusecases.NewListCallsUseCase(c.repos.apiCalls, c.log),
		retryPendingCalls: callbackusecases.NewRetryPendingCallsUseCase(c.repos.endpoints, c.repos.apiCalls, frontend, c.cfg.Callback.MaxRetries, c.log),
	}
}
