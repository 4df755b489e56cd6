package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gigbase.org/internal/ids"
)

// Mailer delivers account emails. Delivery is fire-and-forget from the auth
// core's point of view.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email string) error
}

// Service implements the authentication flows on top of an injected store and
// token issuer. It keeps no cross-request state.
type Service struct {
	store    UserStore
	tokens   *Tokens
	mailer   Mailer
	hashCost int
	now      func() time.Time
}

// ServiceOption configures Service behavior.
type ServiceOption func(*Service) error

// WithMailer wires password-reset delivery.
func WithMailer(m Mailer) ServiceOption {
	return func(s *Service) error {
		s.mailer = m
		return nil
	}
}

// WithHashCost overrides the bcrypt work factor.
func WithHashCost(cost int) ServiceOption {
	return func(s *Service) error {
		if cost <= 0 {
			return errors.New("hash cost must be positive")
		}
		s.hashCost = cost
		return nil
	}
}

// WithClock overrides the time source (useful for tests).
func WithClock(fn func() time.Time) ServiceOption {
	return func(s *Service) error {
		if fn != nil {
			s.now = fn
		}
		return nil
	}
}

// NewService constructs a Service.
func NewService(store UserStore, tokens *Tokens, opts ...ServiceOption) (*Service, error) {
	if store == nil {
		return nil, errors.New("user store is required")
	}
	if tokens == nil {
		return nil, errors.New("token issuer is required")
	}
	svc := &Service{
		store:    store,
		tokens:   tokens,
		hashCost: DefaultHashCost,
		now:      time.Now,
	}
	for _, opt := range opts {
		if err := opt(svc); err != nil {
			return nil, err
		}
	}
	return svc, nil
}

// RegisterInput carries the already-validated registration fields.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      Role
	BandID    *string
}

// Register creates a new principal. The plaintext password is hashed before
// it reaches the store and is never logged. The store's unique-email
// constraint is the final guard against duplicate registration under race;
// the lookup here only provides the friendly conflict error.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	if !in.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, in.Role)
	}

	if _, err := s.store.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hash, err := HashPassword(in.Password, s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	user := &User{
		ID:           ids.New(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Role:         in.Role,
		BandID:       in.BandID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates credentials and issues both token classes. Unknown
// email and wrong password produce the same error so the response never
// reveals which field failed.
func (s *Service) Login(ctx context.Context, email, password string) (TokenPair, *User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return TokenPair{}, nil, ErrInvalidCredentials
	}
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return TokenPair{}, nil, ErrInvalidCredentials
		}
		return TokenPair{}, nil, err
	}
	if err := VerifyPassword(user.PasswordHash, password); err != nil {
		return TokenPair{}, nil, ErrInvalidCredentials
	}

	access, accessExp, err := s.tokens.IssueAccess(user.ID, user.Role)
	if err != nil {
		return TokenPair{}, nil, err
	}
	refresh, refreshExp, err := s.tokens.IssueRefresh(user.ID)
	if err != nil {
		return TokenPair{}, nil, err
	}
	return TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, user, nil
}

// Refresh exchanges a valid refresh token for a new access token. The role is
// taken from the freshly resolved principal, not from any prior token, so a
// role change propagates without re-login. No new refresh token is issued.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, time.Time, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return "", time.Time{}, fmt.Errorf("%w: refresh token is required", ErrInvalidInput)
	}
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		// All three verification failures collapse into one rejection at this
		// endpoint; the client cannot recover in-band.
		return "", time.Time{}, ErrTokenMalformed
	}
	if !ids.Valid(claims.Subject) {
		return "", time.Time{}, ErrTokenMalformed
	}
	user, err := s.store.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", time.Time{}, ErrPrincipalGone
		}
		return "", time.Time{}, err
	}
	return s.tokens.IssueAccess(user.ID, user.Role)
}

// Authenticate converts a raw access token into a Principal. The principal is
// re-resolved against the store so a deleted account invalidates its
// outstanding tokens on the next request; the role in the produced context is
// the freshly stored one.
func (s *Service) Authenticate(ctx context.Context, token string) (Principal, error) {
	claims, err := s.tokens.VerifyAccess(token)
	if err != nil {
		return Principal{}, err
	}
	if !ids.Valid(claims.Subject) {
		return Principal{}, ErrTokenMalformed
	}
	user, err := s.store.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Principal{}, ErrPrincipalGone
		}
		return Principal{}, err
	}
	return Principal{ID: user.ID, Role: user.Role}, nil
}

// ChangePassword verifies the current password and persists a new hash.
// Previously issued tokens stay valid until expiry; the credential classes
// are stateless and nothing here revokes them.
func (s *Service) ChangePassword(ctx context.Context, userID, current, next string) error {
	if current == "" || next == "" {
		return fmt.Errorf("%w: current and new passwords are required", ErrInvalidInput)
	}
	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrPrincipalGone
		}
		return err
	}
	if err := VerifyPassword(user.PasswordHash, current); err != nil {
		return ErrWrongPassword
	}
	hash, err := HashPassword(next, s.hashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.store.UpdatePassword(ctx, user.ID, hash)
}

// ForgotPassword triggers reset delivery for a known email.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if s.mailer == nil {
		return nil
	}
	return s.mailer.SendPasswordReset(ctx, user.Email)
}

// GetUser resolves a single account by identifier.
func (s *Service) GetUser(ctx context.Context, userID string) (*User, error) {
	return s.store.FindByID(ctx, userID)
}

// ListUsers returns every account; callers gate this behind the admin role.
func (s *Service) ListUsers(ctx context.Context) ([]*User, error) {
	return s.store.List(ctx)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
