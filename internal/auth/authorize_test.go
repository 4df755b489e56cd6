package auth

import (
	"context"
	"errors"
	"testing"
)

func TestAuthorizeAllowsMatchingRole(t *testing.T) {
	ctx := ContextWithPrincipal(context.Background(), Principal{ID: "u1", Role: RoleAdmin})
	if err := Authorize(ctx, RoleAdmin); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}
}

func TestAuthorizeAllowsAnyOfRequiredRoles(t *testing.T) {
	ctx := ContextWithPrincipal(context.Background(), Principal{ID: "u1", Role: RoleBookingAgent})
	if err := Authorize(ctx, RoleAdmin, RoleBookingAgent); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}
}

func TestAuthorizeDeniesInsufficientRole(t *testing.T) {
	ctx := ContextWithPrincipal(context.Background(), Principal{ID: "u1", Role: RoleBandMember})
	if err := Authorize(ctx, RoleAdmin); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAuthorizeRequiresPrincipal(t *testing.T) {
	if err := Authorize(context.Background(), RoleAdmin); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthorizeWithEmptyRequirementOnlyNeedsAuthentication(t *testing.T) {
	ctx := ContextWithPrincipal(context.Background(), Principal{ID: "u1", Role: RoleBandMember})
	if err := Authorize(ctx); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}
}
