package routes

import (
	"github.com/gin-gonic/gin"

	"campusdesk/internal/interfaces/http/handlers"
	"campusdesk/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for user lookup routes.
type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures user lookup routes available to any
// authenticated user.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("/faculty", cfg.UserHandler.ListFaculty)
	}
}
