// Package mail isolates outbound email delivery behind a narrow interface.
// The auth core treats delivery as fire-and-forget; swapping in a real
// provider is a deployment concern, not a domain one.
package mail

import (
	"context"
	"errors"
	"strings"

	"gigbase.org/internal/obs"
)

// LogMailer writes delivery intents to the structured log instead of sending
// anything. It is the default in development and in tests.
type LogMailer struct{}

func (LogMailer) SendPasswordReset(_ context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("mail: recipient is required")
	}
	obs.LogRequest(map[string]any{
		"type":  "mail",
		"event": "password_reset.requested",
		"to":    email,
	})
	return nil
}
