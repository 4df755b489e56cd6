package audit

import (
	"context"
	"testing"

	"gigbase.org/internal/auth"
)

func TestLogEventRequiresName(t *testing.T) {
	if err := LogEvent(context.Background(), "  ", nil); err == nil {
		t.Fatal("expected error for empty event name")
	}
}

func TestLogEventWithContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	ctx = auth.ContextWithPrincipal(ctx, auth.Principal{ID: "u1", Role: auth.RoleAdmin})

	if err := LogEvent(ctx, "auth.login", map[string]any{"email": "alice@x.com"}); err != nil {
		t.Fatalf("LogEvent: %v", err)
	}
}
