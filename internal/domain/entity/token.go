package entity

// TokenType discriminates the signed tokens the service issues.
type TokenType string

const (
	// TokenTypeAccess marks a short-lived bearer token for API calls.
	TokenTypeAccess TokenType = "access"
	// TokenTypeOAuthState marks the CSRF state of the Google authorization-code flow.
	TokenTypeOAuthState TokenType = "oauth_state"
)

// String returns the string representation of the TokenType.
func (t TokenType) String() string {
	return string(t)
}
