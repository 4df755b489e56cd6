package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Environment variables read at startup.
const (
	EnvAddr          = "GIGBASE_ADDR"
	EnvPGDSN         = "GIGBASE_PG_DSN"
	EnvAccessSecret  = "GIGBASE_ACCESS_SECRET"
	EnvRefreshSecret = "GIGBASE_REFRESH_SECRET"
	EnvAccessTTL     = "GIGBASE_ACCESS_TTL"
	EnvRefreshTTL    = "GIGBASE_REFRESH_TTL"
)

const (
	defaultAddr       = ":8000"
	defaultAccessTTL  = 24 * time.Hour
	defaultRefreshTTL = 7 * 24 * time.Hour
	minSecretLength   = 16
)

// Config carries process-level settings. Values are read once at startup and
// treated as immutable afterwards.
type Config struct {
	Addr          string
	PGDSN         string
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// FromEnv builds a Config from environment variables and validates it.
// Missing or weak signing secrets are a fatal configuration error, never a
// silent fallback.
func FromEnv() (Config, error) {
	cfg := Config{
		Addr:          envOr(EnvAddr, defaultAddr),
		PGDSN:         strings.TrimSpace(os.Getenv(EnvPGDSN)),
		AccessSecret:  []byte(strings.TrimSpace(os.Getenv(EnvAccessSecret))),
		RefreshSecret: []byte(strings.TrimSpace(os.Getenv(EnvRefreshSecret))),
		AccessTTL:     defaultAccessTTL,
		RefreshTTL:    defaultRefreshTTL,
	}

	if raw := strings.TrimSpace(os.Getenv(EnvAccessTTL)); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", EnvAccessTTL, err)
		}
		cfg.AccessTTL = d
	}
	if raw := strings.TrimSpace(os.Getenv(EnvRefreshTTL)); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", EnvRefreshTTL, err)
		}
		cfg.RefreshTTL = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks invariants the rest of the process relies on.
func (c Config) Validate() error {
	if len(c.AccessSecret) < minSecretLength {
		return fmt.Errorf("config: %s must be set to at least %d bytes", EnvAccessSecret, minSecretLength)
	}
	if len(c.RefreshSecret) < minSecretLength {
		return fmt.Errorf("config: %s must be set to at least %d bytes", EnvRefreshSecret, minSecretLength)
	}
	// Sharing one secret across both token classes would collapse them into a
	// single forgeable class.
	if string(c.AccessSecret) == string(c.RefreshSecret) {
		return errors.New("config: access and refresh signing secrets must differ")
	}
	if c.AccessTTL <= 0 {
		return fmt.Errorf("config: %s must be greater than zero", EnvAccessTTL)
	}
	if c.RefreshTTL <= 0 {
		return fmt.Errorf("config: %s must be greater than zero", EnvRefreshTTL)
	}
	if c.RefreshTTL < c.AccessTTL {
		return errors.New("config: refresh TTL must not be shorter than access TTL")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
