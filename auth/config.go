package auth

import (
	"errors"
	"time"
)

// Config configures the token service.
type Config struct {
	// Enabled toggles authentication on API routes.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// Secret is the HMAC signing key.
	Secret string `yaml:"secret" mapstructure:"secret"`
	// Issuer is the "iss" claim stamped on generated tokens and required
	// on validated ones when set.
	Issuer string `yaml:"issuer" mapstructure:"issuer"`
	// TokenTTL is the lifetime of generated tokens.
	TokenTTL time.Duration `yaml:"token_ttl" mapstructure:"token_ttl"`
	// SkipPaths are URL path prefixes that bypass authentication.
	SkipPaths []string `yaml:"skip_paths" mapstructure:"skip_paths"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.TokenTTL == 0 {
		c.TokenTTL = time.Hour
	}
	if len(c.SkipPaths) == 0 {
		c.SkipPaths = []string{"/health", "/alive", "/ready", "/info", "/metrics"}
	}
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.Enabled && c.Secret == "" {
		return errors.New("auth: secret is required when auth is enabled")
	}
	return nil
}
