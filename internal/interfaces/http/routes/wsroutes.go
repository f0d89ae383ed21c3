package routes

import (
	"github.com/gin-gonic/gin"

	"campusdesk/internal/infrastructure/permission"
	"campusdesk/internal/interfaces/http/handlers"
	"campusdesk/internal/interfaces/http/middleware"
)

// WSRouteConfig holds dependencies for websocket routes.
type WSRouteConfig struct {
	WSHandler            *handlers.WSHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupWSRoutes configures websocket upgrade routes. Browsers cannot
// set headers on upgrade requests, so RequireAuth also accepts the
// token as a query parameter here.
func SetupWSRoutes(engine *gin.Engine, cfg *WSRouteConfig) {
	canConnect := cfg.PermissionMiddleware.RequirePermission(permission.ResourceRealtime, permission.ActionRead)

	ws := engine.Group("/ws")
	ws.Use(cfg.AuthMiddleware.RequireAuth())
	{
		ws.GET("/notifications", canConnect, cfg.WSHandler.Notifications)
		ws.GET("/issues/:id", canConnect, cfg.WSHandler.Issue)
	}
}
