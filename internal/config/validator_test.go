package config_test

import (
	"strings"
	"testing"

	"github.com/Thenafi/chatwithproperties/internal/config"
)

func TestValidateOK(t *testing.T) {
	t.Parallel()

	cfg := config.MakeTestConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateListen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		listen  string
		wantErr bool
	}{
		{name: "valid host:port", listen: "127.0.0.1:8787", wantErr: false},
		{name: "empty uses default", listen: "", wantErr: false},
		{name: "missing port", listen: "localhost", wantErr: true},
		{name: "garbage", listen: "not a listen addr", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.MakeTestConfig()
			cfg.Server.Listen = tt.listen
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateUpstreamBaseURL(t *testing.T) {
	t.Parallel()

	cfg := config.MakeTestConfig()
	cfg.Upstream.BaseURL = "not-a-url"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error for relative base URL")
	}
	if !strings.Contains(err.Error(), "upstream.base_url") {
		t.Errorf("error %q does not mention upstream.base_url", err)
	}
}

func TestValidateLogging(t *testing.T) {
	t.Parallel()

	cfg := config.MakeTestConfig()
	cfg.Logging.Level = "verbose"
	cfg.Logging.Format = "xml"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error for bad logging values")
	}

	var verr *config.ValidationError
	ok := false
	if v, isValidation := err.(*config.ValidationError); isValidation {
		verr, ok = v, true
	}
	if !ok {
		t.Fatalf("error type = %T, want *config.ValidationError", err)
	}
	if len(verr.Errors) != 2 {
		t.Errorf("got %d errors, want 2: %v", len(verr.Errors), verr.Errors)
	}
}

func TestMissingSecrets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(*config.Config)
		want     []string
	}{
		{
			name:   "all present",
			mutate: func(*config.Config) {},
			want:   nil,
		},
		{
			name:   "no password",
			mutate: func(c *config.Config) { c.Auth.Password = "" },
			want:   []string{"auth.password"},
		},
		{
			name: "nothing configured",
			mutate: func(c *config.Config) {
				c.Auth.Username = ""
				c.Auth.Password = ""
				c.Upstream.Token = ""
			},
			want: []string{"auth.username", "auth.password", "upstream.token"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.MakeTestConfig()
			tt.mutate(cfg)
			got := cfg.MissingSecrets()
			if len(got) != len(tt.want) {
				t.Fatalf("MissingSecrets() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("MissingSecrets()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestValidateDoesNotFlagMissingSecrets(t *testing.T) {
	t.Parallel()

	// Missing secrets are a recoverable runtime condition, not a validation
	// failure; the serve path must still start.
	cfg := config.MakeTestConfig()
	cfg.Auth.Username = ""
	cfg.Auth.Password = ""
	cfg.Upstream.Token = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil when only secrets are missing", err)
	}
}
