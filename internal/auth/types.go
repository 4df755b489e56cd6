package auth

import "time"

// User represents an account capable of authenticating.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Role         Role      `json:"role"`
	BandID       *string   `json:"bandId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Public returns the fields safe to expose in API responses. The password
// hash never leaves the package boundary.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		BandID:    u.BandID,
		CreatedAt: u.CreatedAt,
	}
}

// PublicUser is the non-secret projection of a User.
type PublicUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      Role      `json:"role"`
	BandID    *string   `json:"bandId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Principal is the per-request authenticated identity produced by the
// authentication gate. It is derived, never persisted.
type Principal struct {
	ID   string
	Role Role
}

// Is reports whether the principal holds any of the given roles.
func (p Principal) Is(roles ...Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

// TokenPair bundles the two credential classes returned by login.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}
