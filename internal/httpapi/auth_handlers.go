package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"gigbase.org/internal/audit"
	"gigbase.org/internal/auth"
)

type registerRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Role      string  `json:"role"`
	BandID    *string `json:"bandId"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	User         auth.PublicUser `json:"user"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := validateEmail(req.Email); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := validatePassword(req.Password); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.FirstName) == "" {
		writeError(w, r, http.StatusBadRequest, "First name is required")
		return
	}
	if strings.TrimSpace(req.LastName) == "" {
		writeError(w, r, http.StatusBadRequest, "Last name is required")
		return
	}
	role, err := auth.ParseRole(req.Role)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Role must be one of: ADMIN, BAND_MANAGER, BAND_MEMBER, BOOKING_AGENT, TOUR_MANAGER")
		return
	}
	bandID, err := normalizeBandID(req.BandID)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	user, err := a.auth.Register(r.Context(), auth.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
		BandID:    bandID,
	})
	if err != nil {
		handleAuthError(w, r, err)
		return
	}

	_ = audit.LogEvent(r.Context(), "auth.register", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
	})
	w.Header().Set("Location", "/v1/auth/me")
	writeJSON(w, http.StatusCreated, user.Public())
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeError(w, r, http.StatusBadRequest, "Email and password are required")
		return
	}

	pair, user, err := a.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleAuthError(w, r, err)
		return
	}

	_ = audit.LogEvent(r.Context(), "auth.login", map[string]any{
		"user_id": user.ID,
	})
	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user.Public(),
	})
}

func (a *API) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	var req refreshRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.RefreshToken) == "" {
		writeError(w, r, http.StatusBadRequest, "Refresh token is required")
		return
	}

	access, expiresAt, err := a.auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrPrincipalGone):
			writeError(w, r, http.StatusUnauthorized, "Invalid refresh token")
		case errors.Is(err, auth.ErrTokenMalformed), errors.Is(err, auth.ErrTokenExpired), errors.Is(err, auth.ErrTokenSignature):
			// One collapsed message for every verification failure here,
			// unlike the gate which singles out expiry.
			writeError(w, r, http.StatusUnauthorized, "Invalid or expired refresh token")
		default:
			handleAuthError(w, r, err)
		}
		return
	}

	_ = audit.LogEvent(r.Context(), "auth.token.refreshed", nil)
	writeJSON(w, http.StatusOK, refreshResponse{
		AccessToken: access,
		ExpiresAt:   expiresAt,
	})
}

func (a *API) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "Authentication required. Please provide a valid token.")
		return
	}
	var req changePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.CurrentPassword == "" {
		writeError(w, r, http.StatusBadRequest, "Current password is required")
		return
	}
	if err := validatePassword(req.NewPassword); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.NewPassword == req.CurrentPassword {
		writeError(w, r, http.StatusBadRequest, "New password must be different from current password")
		return
	}

	if err := a.auth.ChangePassword(r.Context(), principal.ID, req.CurrentPassword, req.NewPassword); err != nil {
		handleAuthError(w, r, err)
		return
	}

	_ = audit.LogEvent(r.Context(), "auth.password.changed", nil)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Password changed successfully",
	})
}

func (a *API) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	var req forgotPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateEmail(req.Email); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.auth.ForgotPassword(r.Context(), req.Email); err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "No user found with this email address")
			return
		}
		handleAuthError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Password reset instructions sent to your email",
	})
}

func (a *API) handleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "Authentication required. Please provide a valid token.")
		return
	}

	user, err := a.auth.GetUser(r.Context(), principal.ID)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			writeError(w, r, http.StatusUnauthorized, "The user belonging to this token no longer exists.")
			return
		}
		handleAuthError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user.Public())
}

func (a *API) handleListUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	users, err := a.auth.ListUsers(r.Context())
	if err != nil {
		handleAuthError(w, r, err)
		return
	}
	out := make([]auth.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": out,
	})
}

// handleAuthError maps service errors onto the response taxonomy at the
// handler boundary; nothing below this layer writes HTTP responses.
func handleAuthError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, auth.ErrInvalidInput):
		writeError(w, r, http.StatusBadRequest, strings.TrimPrefix(err.Error(), "auth: invalid input: "))
	case errors.Is(err, auth.ErrEmailTaken):
		writeError(w, r, http.StatusConflict, "Email already in use")
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeError(w, r, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, auth.ErrWrongPassword):
		writeError(w, r, http.StatusUnauthorized, "Current password is incorrect")
	case errors.Is(err, auth.ErrPrincipalGone):
		writeError(w, r, http.StatusUnauthorized, "The user belonging to this token no longer exists.")
	case errors.Is(err, auth.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "Record not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// --- validation ---

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("Email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errors.New("Please provide a valid email address")
	}
	return nil
}

const passwordSpecials = "@$!%*?&#^()-_=+[]{}.,:;"

// validatePassword enforces the registration password policy: at least 8
// characters with an uppercase letter, a lowercase letter, a digit and a
// special character.
func validatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("Password must be at least 8 characters long")
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, c):
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return errors.New("Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character")
	}
	return nil
}

func normalizeBandID(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil, nil
	}
	if _, err := uuid.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("Band ID must be a valid UUID")
	}
	return &trimmed, nil
}
