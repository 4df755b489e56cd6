package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Addr:          ":8000",
		AccessSecret:  []byte("access-secret-0123456789"),
		RefreshSecret: []byte("refresh-secret-0123456789"),
		AccessTTL:     24 * time.Hour,
		RefreshTTL:    7 * 24 * time.Hour,
	}
}

func TestFromEnvRequiresSecrets(t *testing.T) {
	t.Setenv(EnvAccessSecret, "")
	t.Setenv(EnvRefreshSecret, "")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for missing secrets")
	}
}

func TestFromEnvParsesTTLs(t *testing.T) {
	t.Setenv(EnvAccessSecret, "access-secret-0123456789")
	t.Setenv(EnvRefreshSecret, "refresh-secret-0123456789")
	t.Setenv(EnvAccessTTL, "12h")
	t.Setenv(EnvRefreshTTL, "96h")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.AccessTTL != 12*time.Hour {
		t.Fatalf("unexpected access ttl: %v", cfg.AccessTTL)
	}
	if cfg.RefreshTTL != 96*time.Hour {
		t.Fatalf("unexpected refresh ttl: %v", cfg.RefreshTTL)
	}
}

func TestValidateRejectsSharedSecret(t *testing.T) {
	cfg := validConfig()
	cfg.RefreshSecret = cfg.AccessSecret

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for identical secrets")
	}
	if !strings.Contains(err.Error(), "must differ") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsShortSecret(t *testing.T) {
	cfg := validConfig()
	cfg.AccessSecret = []byte("short")

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for short secret")
	}
}

func TestValidateRejectsRefreshShorterThanAccess(t *testing.T) {
	cfg := validConfig()
	cfg.RefreshTTL = time.Hour
	cfg.AccessTTL = 2 * time.Hour

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for refresh TTL shorter than access TTL")
	}
}
