package routes

import (
	"github.com/gin-gonic/gin"

	"campusdesk/internal/infrastructure/permission"
	"campusdesk/internal/interfaces/http/handlers"
	"campusdesk/internal/interfaces/http/middleware"
)

// RealtimeRouteConfig holds dependencies for presence routes.
type RealtimeRouteConfig struct {
	RealtimeHandler      *handlers.RealtimeHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupRealtimeRoutes configures the REST presence routes.
func SetupRealtimeRoutes(engine *gin.Engine, cfg *RealtimeRouteConfig) {
	canRead := cfg.PermissionMiddleware.RequirePermission(permission.ResourceRealtime, permission.ActionRead)
	canWrite := cfg.PermissionMiddleware.RequirePermission(permission.ResourceRealtime, permission.ActionWrite)

	realtime := engine.Group("/realtime")
	realtime.Use(cfg.AuthMiddleware.RequireAuth())
	{
		realtime.GET("/online-users", canRead, cfg.RealtimeHandler.OnlineUsers)
		realtime.GET("/issues/:id/viewers", canRead, cfg.RealtimeHandler.Viewers)
		realtime.GET("/issues/:id/typing", canRead, cfg.RealtimeHandler.Typing)
		realtime.POST("/issues/:id/typing", canWrite, cfg.RealtimeHandler.SetTyping)
	}
}
