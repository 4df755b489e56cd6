package auth

import "context"

// UserStore describes the persistence operations the auth core depends on.
// Implementations must enforce email uniqueness atomically; the registration
// flow's existence check is advisory, not the final guard.
type UserStore interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	List(ctx context.Context) ([]*User, error)
}
