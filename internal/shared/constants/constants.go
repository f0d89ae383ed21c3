package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers             = "users"
	TableIssues            = "issues"
	TableIssueStatuses     = "issue_status_records"
	TableComments          = "comments"
	TableAttachments       = "attachments"
	TableNotifications     = "notifications"
	TableAuditLogs         = "audit_logs"
	TableOnlineUsers       = "online_users"
	TableTypingStatuses    = "typing_statuses"
	TableIssueActivities   = "issue_activities"
	TableUserActivities    = "user_activities"
	TableIssueMetrics      = "issue_metrics"
	TableUserMetrics       = "user_metrics"
	TableDashboardStats    = "dashboard_stats"
	TableFrontendEndpoints = "frontend_endpoints"
	TableFrontendAPICalls  = "frontend_api_calls"

	// Presence windows
	OnlineWindowMinutes = 5
	TypingWindowMinutes = 1

	// Dashboard cache
	DashboardCacheKey          = "dashboard_stats"
	DashboardStalenessMinutes  = 60
	DashboardRecentActivityMax = 10

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)
