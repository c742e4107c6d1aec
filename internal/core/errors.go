package core

// Wire error reasons, sent to clients as "ERR <reason>".
const (
	ReasonLoginFirst      = "please-login-first"
	ReasonInvalidLogin    = "invalid-login-format"
	ReasonInvalidUsername = "invalid-username"
	ReasonUsernameTaken   = "username-taken"
	ReasonAlreadyLoggedIn = "already-logged-in"
	ReasonUnknownCommand  = "unknown-command"
	ReasonUserNotFound    = "user-not-found"
	ReasonDMFormat        = "dm-format"
	ReasonIdleTimeout     = "idle-timeout"
)

// ErrLine formats a reason as a single protocol error line.
func ErrLine(reason string) string {
	return "ERR " + reason
}
