package constants

const (
	// ContextKeyUserID is the session and gin context key holding the authenticated user ID.
	ContextKeyUserID = "user_id"

	// ContextKeyPrincipal holds the loaded *models.User for the current request.
	ContextKeyPrincipal = "principal"

	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "barpos_session"
)

const (
	MinPasswordLength = 8

	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// MaxSaleItems caps the number of lines accepted in a single sale.
	MaxSaleItems = 100
)
