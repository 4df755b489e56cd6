package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "gigbase"

// AccessClaims are embedded in short-lived access tokens.
type AccessClaims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// RefreshClaims carry only the principal identity. The role is deliberately
// absent: it is re-resolved from the store on refresh so role changes
// propagate without a full re-login.
type RefreshClaims struct {
	jwt.RegisteredClaims
}

// TokenConfig configures the issuer/verifier pair.
type TokenConfig struct {
	// AccessSecret and RefreshSecret sign their respective token classes and
	// must be independent. A token of one class never verifies against the
	// other secret.
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	// Leeway is the clock-skew allowance applied during verification.
	// Default 0: the reference system applies none.
	Leeway time.Duration
	// Now overrides the time source; nil means time.Now.
	Now func() time.Time
}

// Tokens mints and verifies the two signed credential classes. It holds no
// mutable state and is safe for concurrent use.
type Tokens struct {
	cfg TokenConfig
	now func() time.Time
}

// NewTokens validates the configuration and returns a Tokens instance.
func NewTokens(cfg TokenConfig) (*Tokens, error) {
	if len(cfg.AccessSecret) == 0 || len(cfg.RefreshSecret) == 0 {
		return nil, errors.New("both signing secrets are required")
	}
	if string(cfg.AccessSecret) == string(cfg.RefreshSecret) {
		return nil, errors.New("access and refresh secrets must differ")
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, errors.New("token TTLs must be greater than zero")
	}
	if cfg.Leeway < 0 {
		return nil, errors.New("leeway must not be negative")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Tokens{cfg: cfg, now: now}, nil
}

// IssueAccess signs a short-lived access token carrying identity and role.
func (t *Tokens) IssueAccess(userID string, role Role) (string, time.Time, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", time.Time{}, errors.New("userID is required")
	}
	if !role.Valid() {
		return "", time.Time{}, fmt.Errorf("unknown role %q", role)
	}
	now := t.now().UTC()
	exp := now.Add(t.cfg.AccessTTL)
	claims := AccessClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.cfg.AccessSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign access token: %w", err)
	}
	return signed, exp, nil
}

// IssueRefresh signs a long-lived refresh token carrying identity only.
func (t *Tokens) IssueRefresh(userID string) (string, time.Time, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", time.Time{}, errors.New("userID is required")
	}
	now := t.now().UTC()
	exp := now.Add(t.cfg.RefreshTTL)
	claims := RefreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.cfg.RefreshSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign refresh token: %w", err)
	}
	return signed, exp, nil
}

// VerifyAccess checks integrity and expiry of an access token and decodes its
// claims. Failures map onto the closed taxonomy: ErrTokenExpired,
// ErrTokenSignature, ErrTokenMalformed.
func (t *Tokens) VerifyAccess(token string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := t.parse(token, claims, t.cfg.AccessSecret); err != nil {
		return nil, err
	}
	if !claims.Role.Valid() {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}

// VerifyRefresh checks integrity and expiry of a refresh token.
func (t *Tokens) VerifyRefresh(token string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := t.parse(token, claims, t.cfg.RefreshSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

func (t *Tokens) parse(token string, claims jwt.Claims, secret []byte) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrTokenMalformed
	}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(t.cfg.Leeway),
		jwt.WithTimeFunc(func() time.Time { return t.now().UTC() }),
	)
	parsed, err := parser.ParseWithClaims(token, claims, func(tok *jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		return mapTokenError(err)
	}
	if !parsed.Valid {
		return ErrTokenMalformed
	}
	sub, err := claims.GetSubject()
	if err != nil || strings.TrimSpace(sub) == "" {
		return ErrTokenMalformed
	}
	return nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrTokenSignature
	default:
		return ErrTokenMalformed
	}
}
