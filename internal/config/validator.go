package config

import (
	"net"
	"net/url"
)

// Valid logging levels.
var validLogLevels = map[string]bool{
	"":      true, // Empty defaults to info
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Valid logging formats.
var validLogFormats = map[string]bool{
	"":        true, // Empty defaults to json
	"json":    true,
	"console": true,
	"pretty":  true,
}

// Validate checks the configuration for structural errors.
// Missing secrets are deliberately NOT validation errors: their absence is a
// recoverable configuration condition surfaced per request (a 500 JSON body on
// API paths, an error=config redirect on the login path). Use MissingSecrets
// to report them.
// Returns a ValidationError containing all errors found, or nil if valid.
func (c *Config) Validate() error {
	errs := &ValidationError{}

	validateServer(c, errs)
	validateUpstream(c, errs)
	validateLogging(c, errs)

	return errs.ToError()
}

// MissingSecrets reports which of the three required secrets are unset.
// Returned names match the config keys (auth.username, auth.password,
// upstream.token).
func (c *Config) MissingSecrets() []string {
	var missing []string
	if c.Auth.Username == "" {
		missing = append(missing, "auth.username")
	}
	if c.Auth.Password == "" {
		missing = append(missing, "auth.password")
	}
	if c.Upstream.Token == "" {
		missing = append(missing, "upstream.token")
	}
	return missing
}

// validateServer validates the server configuration section.
func validateServer(c *Config, errs *ValidationError) {
	if c.Server.Listen == "" {
		return // Default applied at load time
	}
	if _, _, err := net.SplitHostPort(c.Server.Listen); err != nil {
		errs.Addf("server.listen %q is not a valid host:port: %v", c.Server.Listen, err)
	}
	if c.Server.TimeoutMS < 0 {
		errs.Addf("server.timeout_ms must be >= 0, got %d", c.Server.TimeoutMS)
	}
}

// validateUpstream validates the upstream API configuration section.
func validateUpstream(c *Config, errs *ValidationError) {
	if c.Upstream.BaseURL != "" {
		u, err := url.Parse(c.Upstream.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs.Addf("upstream.base_url %q is not an absolute URL", c.Upstream.BaseURL)
		}
	}
	if c.Upstream.TimeoutMS < 0 {
		errs.Addf("upstream.timeout_ms must be >= 0, got %d", c.Upstream.TimeoutMS)
	}
	if c.Auth.LoginRatePerMin < 0 {
		errs.Addf("auth.login_rate_per_min must be >= 0, got %d", c.Auth.LoginRatePerMin)
	}
}

// validateLogging validates the logging configuration section.
func validateLogging(c *Config, errs *ValidationError) {
	if !validLogLevels[c.Logging.Level] {
		errs.Addf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	if !validLogFormats[c.Logging.Format] {
		errs.Addf("logging.format %q is not one of json, console, pretty", c.Logging.Format)
	}
}
