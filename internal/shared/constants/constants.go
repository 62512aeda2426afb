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

	// Read-state limits
	DefaultUnreadCap   = 200
	DefaultMaxBulkMark = 100

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderRetryAfter    = "Retry-After"

	APIVersionPrefix = "/api/v1"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableAnnouncements     = "announcements"
	TableAnnouncementReads = "announcement_reads"
	TableCasbinRules       = "casbin_rule"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgForbidden           = "Access forbidden"
)
