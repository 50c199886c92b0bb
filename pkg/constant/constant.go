package constant

const (
	// Fiber locals keys set by the authorization middleware.
	LocalsUserID = "userID"
	LocalsEmail  = "email"

	// Session tokens are valid for 30 days by default.
	DefaultTokenExpiryMin = 30 * 24 * 60

	// Password-reset tokens are valid for one hour.
	DefaultResetTokenExpiryMin = 60

	// Raw reset tokens carry 32 bytes (256 bits) of entropy.
	ResetTokenBytes = 32

	DefaultPage  = 1
	DefaultLimit = 50
	MaxLimit     = 500
)
