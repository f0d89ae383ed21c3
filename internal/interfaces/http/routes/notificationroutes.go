package routes

import (
	"github.com/gin-gonic/gin"

	"campusdesk/internal/infrastructure/permission"
	"campusdesk/internal/interfaces/http/handlers"
	"campusdesk/internal/interfaces/http/middleware"
)

// NotificationRouteConfig holds dependencies for notification routes.
type NotificationRouteConfig struct {
	NotificationHandler  *handlers.NotificationHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupNotificationRoutes configures notification routes.
func SetupNotificationRoutes(engine *gin.Engine, cfg *NotificationRouteConfig) {
	canRead := cfg.PermissionMiddleware.RequirePermission(permission.ResourceNotifications, permission.ActionRead)
	canWrite := cfg.PermissionMiddleware.RequirePermission(permission.ResourceNotifications, permission.ActionWrite)

	notifications := engine.Group("/notifications")
	notifications.Use(cfg.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", canRead, cfg.NotificationHandler.List)
		notifications.GET("/recent", canRead, cfg.NotificationHandler.Recent)
		notifications.GET("/unread-count", canRead, cfg.NotificationHandler.UnreadCount)
		notifications.POST("/read-all", canWrite, cfg.NotificationHandler.MarkAllAsRead)
		notifications.POST("/:id/read", canWrite, cfg.NotificationHandler.MarkAsRead)
	}
}
