package routes

import (
	"github.com/gin-gonic/gin"

	"campusdesk/internal/infrastructure/permission"
	"campusdesk/internal/interfaces/http/handlers"
	"campusdesk/internal/interfaces/http/middleware"
)

// IssueRouteConfig holds dependencies for issue routes.
type IssueRouteConfig struct {
	IssueHandler         *handlers.IssueHandler
	AttachmentHandler    *handlers.AttachmentHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupIssueRoutes configures issue, comment and attachment routes.
func SetupIssueRoutes(engine *gin.Engine, cfg *IssueRouteConfig) {
	canRead := cfg.PermissionMiddleware.RequirePermission(permission.ResourceIssues, permission.ActionRead)
	canWrite := cfg.PermissionMiddleware.RequirePermission(permission.ResourceIssues, permission.ActionWrite)
	canManage := cfg.PermissionMiddleware.RequirePermission(permission.ResourceIssues, permission.ActionManage)
	canComment := cfg.PermissionMiddleware.RequirePermission(permission.ResourceComments, permission.ActionWrite)
	canAttach := cfg.PermissionMiddleware.RequirePermission(permission.ResourceAttachments, permission.ActionWrite)

	issues := engine.Group("/issues")
	issues.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Collection operations before parameterized paths so gin does
		// not treat "mine" or "assigned" as an :id.
		issues.POST("", canWrite, cfg.IssueHandler.Create)
		issues.GET("", canRead, cfg.IssueHandler.List)
		issues.GET("/mine", canRead, cfg.IssueHandler.ListMine)
		issues.GET("/assigned", canManage, cfg.IssueHandler.ListAssigned)

		issues.POST("/:id/assign", canManage, cfg.IssueHandler.Assign)
		issues.PATCH("/:id/status", canManage, cfg.IssueHandler.ChangeStatus)
		issues.POST("/:id/resolve", canManage, cfg.IssueHandler.Resolve)
		issues.POST("/:id/escalate", canManage, cfg.IssueHandler.Escalate)
		issues.GET("/:id/history", canRead, cfg.IssueHandler.StatusHistory)

		issues.POST("/:id/comments", canComment, cfg.IssueHandler.AddComment)
		issues.GET("/:id/comments", canRead, cfg.IssueHandler.ListComments)

		issues.POST("/:id/attachments", canAttach, cfg.AttachmentHandler.Upload)
		issues.GET("/:id/attachments", canRead, cfg.AttachmentHandler.List)
		issues.GET("/:id/attachments/:attachmentID", canRead, cfg.AttachmentHandler.Download)

		issues.GET("/:id", canRead, cfg.IssueHandler.Get)
		issues.PATCH("/:id", canWrite, cfg.IssueHandler.Update)
		issues.DELETE("/:id", canWrite, cfg.IssueHandler.Delete)
	}
}
