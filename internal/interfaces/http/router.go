package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/interfaces/http/middleware"
	"campusdesk/internal/interfaces/http/routes"
)

// setupRouter attaches global middleware and registers every route
// group on the engine.
func (c *Container) setupRouter() {
	c.engine.Use(
		middleware.Recovery(),
		middleware.CustomLogger(c.log),
		middleware.ErrorHandler(),
		middleware.CORS(c.cfg.Server.AllowedOrigins),
		middleware.SecurityHeaders(),
	)

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.auth,
		ProfileHandler: c.hdlrs.profile,
		AuthMiddleware: c.authMiddleware,
		RateLimiter:    c.rateLimiter,
	})

	routes.SetupUserRoutes(c.engine, &routes.UserRouteConfig{
		UserHandler:    c.hdlrs.user,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupIssueRoutes(c.engine, &routes.IssueRouteConfig{
		IssueHandler:         c.hdlrs.issue,
		AttachmentHandler:    c.hdlrs.attachment,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupNotificationRoutes(c.engine, &routes.NotificationRouteConfig{
		NotificationHandler:  c.hdlrs.notification,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupRealtimeRoutes(c.engine, &routes.RealtimeRouteConfig{
		RealtimeHandler:      c.hdlrs.realtime,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupWSRoutes(c.engine, &routes.WSRouteConfig{
		WSHandler:            c.hdlrs.ws,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupAdminRoutes(c.engine, &routes.AdminRouteConfig{
		UserHandler:          c.hdlrs.user,
		AuditHandler:         c.hdlrs.audit,
		AnalyticsHandler:     c.hdlrs.analytics,
		CallbackHandler:      c.hdlrs.callback,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}
