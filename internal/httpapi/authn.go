package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"gigbase.org/internal/auth"
	"gigbase.org/internal/obs"
)

const (
	authHeader = "Authorization"
	bearer     = "Bearer "
)

// Endpoints reachable without a credential. Everything else passes the gate.
var publicPaths = []string{
	"/v1/auth/register",
	"/v1/auth/login",
	"/v1/auth/refresh",
	"/v1/auth/forgot-password",
	"/v1/info",
	"/metrics",
	"/healthz",
	"/readyz",
	"/",
}

// withAuth is the authentication gate. It converts a bearer credential into a
// principal attached to the request context, or rejects with a 401 whose
// message distinguishes expiry (the client should refresh) from every other
// invalid-credential case.
func (a *API) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		token, err := extractBearerToken(r.Header.Get(authHeader))
		if err != nil {
			obs.AuthFailure("missing_header")
			writeError(w, r, http.StatusUnauthorized, "Authentication required. Please provide a valid token.")
			return
		}

		principal, err := a.auth.Authenticate(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrTokenExpired):
				obs.AuthFailure("token_expired")
				writeError(w, r, http.StatusUnauthorized, "Your token has expired. Please log in again.")
			case errors.Is(err, auth.ErrTokenMalformed), errors.Is(err, auth.ErrTokenSignature):
				obs.AuthFailure("invalid_token")
				writeError(w, r, http.StatusUnauthorized, "Invalid token. Please log in again.")
			case errors.Is(err, auth.ErrPrincipalGone):
				obs.AuthFailure("principal_gone")
				writeError(w, r, http.StatusUnauthorized, "The user belonging to this token no longer exists.")
			default:
				writeError(w, r, http.StatusInternalServerError, "An error occurred during authentication.")
			}
			return
		}

		ctx := auth.ContextWithPrincipal(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole restricts a route to principals holding one of the given roles.
// It assumes the authentication gate already ran; a missing principal means
// the gate was bypassed and the request is unauthenticated.
func RequireRole(roles ...auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := auth.Authorize(r.Context(), roles...); err != nil {
				switch {
				case errors.Is(err, auth.ErrForbidden):
					writeError(w, r, http.StatusForbidden, "You do not have permission to perform this action.")
				default:
					w.Header().Set("WWW-Authenticate", "Bearer")
					writeError(w, r, http.StatusUnauthorized, "Authentication required. Please provide a valid token.")
				}
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func extractBearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", errors.New("missing bearer token")
	}
	if !strings.HasPrefix(header, bearer) {
		return "", errors.New("invalid authorization scheme")
	}
	token := strings.TrimSpace(header[len(bearer):])
	if token == "" {
		return "", errors.New("missing bearer token")
	}
	return token, nil
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if path == p {
			return true
		}
	}
	return false
}
