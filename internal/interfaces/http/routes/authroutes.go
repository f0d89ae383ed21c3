package routes

import (
	"github.com/gin-gonic/gin"

	"campusdesk/internal/interfaces/http/handlers"
	"campusdesk/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	ProfileHandler *handlers.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

// SetupAuthRoutes configures authentication and profile routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/register", cfg.RateLimiter.Limit(), cfg.AuthHandler.Register)
		auth.POST("/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
		auth.POST("/refresh", cfg.AuthHandler.Refresh)
		auth.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)
	}

	profile := engine.Group("/profile")
	profile.Use(cfg.AuthMiddleware.RequireAuth())
	{
		profile.GET("", cfg.ProfileHandler.GetProfile)
		profile.PATCH("", cfg.ProfileHandler.UpdateProfile)
		profile.POST("/change-password", cfg.ProfileHandler.ChangePassword)
	}
}
