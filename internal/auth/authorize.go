package auth

import "context"

// Authorize enforces role-based access for the principal in ctx. A missing
// principal (gate bypassed or not run) is unauthenticated, a principal
// outside the required set is forbidden. Pure function, no store access.
func Authorize(ctx context.Context, required ...Role) error {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}
	if len(required) == 0 {
		return nil
	}
	if !principal.Is(required...) {
		return ErrForbidden
	}
	return nil
}
