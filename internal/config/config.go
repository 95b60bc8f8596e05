// Package config provides configuration loading and parsing for chatwithproperties.
package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/mo"
)

// Log level constants.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// RuntimeConfig defines the interface for accessing runtime configuration that
// supports hot-reload. Components that need to observe config changes should use
// this interface instead of holding a direct *Config pointer, which would become
// stale after hot-reload.
type RuntimeConfig interface {
	Get() *Config
}

// Config represents the complete chatwithproperties configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server" toml:"server"`
	Auth     AuthConfig     `yaml:"auth" toml:"auth"`
	Upstream UpstreamConfig `yaml:"upstream" toml:"upstream"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

// ServerConfig defines server-level settings.
type ServerConfig struct {
	Listen      string `yaml:"listen" toml:"listen"`
	TimeoutMS   int    `yaml:"timeout_ms" toml:"timeout_ms"`
	EnableHTTP2 bool   `yaml:"enable_http2" toml:"enable_http2"` // Enable HTTP/2 cleartext (h2c) support
}

// GetTimeoutOption returns the request timeout as an Option.
// Returns None if TimeoutMS is zero (use server defaults).
func (s *ServerConfig) GetTimeoutOption() mo.Option[time.Duration] {
	if s.TimeoutMS <= 0 {
		return mo.None[time.Duration]()
	}
	return mo.Some(time.Duration(s.TimeoutMS) * time.Millisecond)
}

// AuthConfig defines the operator credentials and session behavior.
// Username and Password support ${ENV_VAR} expansion in the config file.
type AuthConfig struct {
	// Username is the single operator login name.
	Username string `yaml:"username" toml:"username"`

	// Password is the operator password, compared verbatim (case-sensitive).
	Password string `yaml:"password" toml:"password"`

	// UseLocalDay derives the session token from the host-local calendar day
	// instead of UTC. Tokens silently expire at the chosen day boundary.
	UseLocalDay bool `yaml:"use_local_day" toml:"use_local_day"`

	// LoginRatePerMin throttles POST /login attempts. 0 disables the throttle.
	LoginRatePerMin int `yaml:"login_rate_per_min" toml:"login_rate_per_min"`
}

// HasCredentials returns true if both operator secrets are configured.
func (a *AuthConfig) HasCredentials() bool {
	return a.Username != "" && a.Password != ""
}

// GetLoginRateOption returns the login throttle rate as an Option.
// Returns None when throttling is disabled.
func (a *AuthConfig) GetLoginRateOption() mo.Option[int] {
	if a.LoginRatePerMin <= 0 {
		return mo.None[int]()
	}
	return mo.Some(a.LoginRatePerMin)
}

// UpstreamConfig defines the property-management API collaborator.
type UpstreamConfig struct {
	// BaseURL is the upstream REST API base URL.
	BaseURL string `yaml:"base_url" toml:"base_url"`

	// Token is the bearer credential for the upstream API.
	// Supports ${ENV_VAR} expansion in the config file.
	Token string `yaml:"token" toml:"token"`

	// TimeoutMS bounds a single outbound call. 0 uses the transport default.
	TimeoutMS int `yaml:"timeout_ms" toml:"timeout_ms"`
}

// HasToken returns true if the upstream bearer credential is configured.
func (u *UpstreamConfig) HasToken() bool {
	return u.Token != ""
}

// GetTimeoutOption returns the outbound call timeout as an Option.
// Returns None if TimeoutMS is zero.
func (u *UpstreamConfig) GetTimeoutOption() mo.Option[time.Duration] {
	if u.TimeoutMS <= 0 {
		return mo.None[time.Duration]()
	}
	return mo.Some(time.Duration(u.TimeoutMS) * time.Millisecond)
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`   // debug, info, warn, error
	Format string `yaml:"format" toml:"format"` // json, console
	Output string `yaml:"output" toml:"output"` // stdout, stderr, or file path
	Pretty bool   `yaml:"pretty" toml:"pretty"` // enable colored console output
}

// ParseLevel converts a string log level to zerolog.Level.
// Returns zerolog.InfoLevel if the level string is invalid.
func (l *LoggingConfig) ParseLevel() zerolog.Level {
	switch strings.ToLower(l.Level) {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
