package routes

import (
	"github.com/gin-gonic/gin"

	"campusdesk/internal/infrastructure/permission"
	"campusdesk/internal/interfaces/http/handlers"
	"campusdesk/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for admin-only routes.
type AdminRouteConfig struct {
	UserHandler          *handlers.UserHandler
	AuditHandler         *handlers.AuditHandler
	AnalyticsHandler     *handlers.AnalyticsHandler
	CallbackHandler      *handlers.CallbackHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures admin-only routes.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	adminUsers := engine.Group("/admin/users")
	adminUsers.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.RequirePermission(permission.ResourceUsers, permission.ActionRead),
	)
	{
		adminUsers.GET("", cfg.UserHandler.ListUsers)
	}

	adminAudit := engine.Group("/admin/audit-logs")
	adminAudit.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.RequirePermission(permission.ResourceAudit, permission.ActionRead),
	)
	{
		adminAudit.GET("", cfg.AuditHandler.List)
	}

	adminAnalytics := engine.Group("/admin/analytics")
	adminAnalytics.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.RequirePermission(permission.ResourceAnalytics, permission.ActionRead),
	)
	{
		adminAnalytics.GET("/dashboard", cfg.AnalyticsHandler.Dashboard)
		adminAnalytics.GET("/trends", cfg.AnalyticsHandler.IssueTrends)
		adminAnalytics.GET("/activity", cfg.AnalyticsHandler.UserActivity)
	}

	adminCallbacks := engine.Group("/admin/callbacks")
	adminCallbacks.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.RequirePermission(permission.ResourceCallbacks, permission.ActionManage),
	)
	{
		adminCallbacks.POST("/endpoints", cfg.CallbackHandler.CreateEndpoint)
		adminCallbacks.GET("/endpoints", cfg.CallbackHandler.ListEndpoints)
		adminCallbacks.PUT("/endpoints/:id", cfg.CallbackHandler.UpdateEndpoint)
		adminCallbacks.DELETE("/endpoints/:id", cfg.CallbackHandler.DeleteEndpoint)
		adminCallbacks.GET("/calls", cfg.CallbackHandler.ListCalls)
		adminCallbacks.POST("/trigger", cfg.CallbackHandler.Trigger)
	}
}
