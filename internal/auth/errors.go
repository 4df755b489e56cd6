package auth

import "errors"

var (
	// ErrInvalidInput marks malformed or missing request fields.
	ErrInvalidInput = errors.New("auth: invalid input")
	// ErrNotFound is returned by stores when no record matches.
	ErrNotFound = errors.New("auth: not found")
	// ErrEmailTaken is returned when registration hits the unique-email constraint.
	ErrEmailTaken = errors.New("auth: email already in use")
	// ErrInvalidCredentials is the single failure for login, regardless of
	// whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
	// ErrWrongPassword is returned when the current password check fails
	// during a password change.
	ErrWrongPassword = errors.New("auth: current password is incorrect")
	// ErrPrincipalGone marks a verified token whose account no longer resolves.
	ErrPrincipalGone = errors.New("auth: principal no longer exists")
	// ErrUnauthenticated marks requests with no authenticated principal.
	ErrUnauthenticated = errors.New("auth: not authenticated")
	// ErrForbidden marks an authenticated principal without the required role.
	ErrForbidden = errors.New("auth: insufficient role")
)

// Token verification failures form a closed taxonomy. Expired is kept separate
// from the rest because callers tell the client to refresh rather than re-login.
var (
	ErrTokenMalformed = errors.New("auth: malformed token")
	ErrTokenSignature = errors.New("auth: token signature mismatch")
	ErrTokenExpired   = errors.New("auth: token expired")
)
