package http

import (
	"campusdesk/internal/interfaces/http/handlers"
	"campusdesk/internal/interfaces/http/middleware"
)

// allHandlers groups the HTTP surface behind one field on the
// container.
type allHandlers struct {
	auth         *handlers.AuthHandler
	profile      *handlers.ProfileHandler
	user         *handlers.UserHandler
	issue        *handlers.IssueHandler
	attachment   *handlers.AttachmentHandler
	notification *handlers.NotificationHandler
	realtime     *handlers.RealtimeHandler
	analytics    *handlers.AnalyticsHandler
	audit        *handlers.AuditHandler
	callback     *handlers.CallbackHandler
	ws           *handlers.WSHandler
}

func (c *Container) initHandlers() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)
	c.rateLimiter = middleware.NewRateLimiter(c.rateLimitBackend, c.cfg.RateLimit.RequestsPerMinute, c.log)

	c.hdlrs = &allHandlers{
		auth:    handlers.NewAuthHandler(c.ucs.register, c.ucs.login, c.ucs.refreshToken, c.ucs.logout, c.log),
		profile: handlers.NewProfileHandler(c.ucs.getProfile, c.ucs.updateProfile, c.ucs.changePassword, c.log),
		user:    handlers.NewUserHandler(c.ucs.listUsers, c.ucs.listFaculty, c.log),
		issue: handlers.NewIssueHandler(
			c.ucs.createIssue,
			c.ucs.getIssue,
			c.ucs.listIssues,
			c.ucs.updateIssue,
			c.ucs.deleteIssue,
			c.ucs.assignIssue,
			c.ucs.changeStatus,
			c.ucs.resolveIssue,
			c.ucs.escalateIssue,
			c.ucs.getStatusHistory,
			c.ucs.addComment,
			c.ucs.listComments,
			c.log,
		),
		attachment: handlers.NewAttachmentHandler(c.ucs.addAttachment, c.ucs.listAttachments, c.cfg.Upload, c.log),
		notification: handlers.NewNotificationHandler(
			c.ucs.listNotifications,
			c.ucs.recentNotifs,
			c.ucs.unreadCount,
			c.ucs.markAsRead,
			c.ucs.markAllAsRead,
			c.log,
		),
		realtime:  handlers.NewRealtimeHandler(c.ucs.listOnlineUsers, c.ucs.listViewers, c.ucs.listTyping, c.ucs.setTyping, c.log),
		analytics: handlers.NewAnalyticsHandler(c.ucs.dashboardStats, c.ucs.issueTrends, c.ucs.userActivity, c.log),
		audit:     handlers.NewAuditHandler(c.ucs.listAuditEntries, c.log),
		callback: handlers.NewCallbackHandler(
			c.ucs.createEndpoint,
			c.ucs.updateEndpoint,
			c.ucs.deleteEndpoint,
			c.ucs.listEndpoints,
			c.ucs.triggerCallback,
			c.ucs.listCalls,
			c.log,
		),
		ws: handlers.NewWSHandler(
			c.hub,
			c.ucs.markOnline,
			c.ucs.markOffline,
			c.ucs.listOnlineUsers,
			c.ucs.recordView,
			c.ucs.listViewers,
			c.ucs.setTyping,
			c.ucs.listTyping,
			c.ucs.markAsRead,
			c.ucs.markAllAsRead,
			c.ucs.unreadCount,
			c.cfg.Server.AllowedOrigins,
			c.log,
		),
	}
}
