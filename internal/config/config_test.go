package config_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/mo"

	"github.com/Thenafi/chatwithproperties/internal/config"
)

// assertOption is a generic helper for testing mo.Option accessors.
func assertOption[T comparable](
	t *testing.T, name string, get func() mo.Option[T], wantSome bool, wantValue T,
) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		t.Parallel()
		opt := get()
		if opt.IsPresent() != wantSome {
			t.Errorf("IsPresent() = %v, want %v", opt.IsPresent(), wantSome)
		}
		if wantSome {
			if got := opt.MustGet(); got != wantValue {
				t.Errorf("MustGet() = %v, want %v", got, wantValue)
			}
		}
	})
}

func TestServerTimeoutOption(t *testing.T) {
	t.Parallel()

	zero := config.ServerConfig{Listen: "", TimeoutMS: 0, EnableHTTP2: false}
	set := config.ServerConfig{Listen: "", TimeoutMS: 2500, EnableHTTP2: false}

	assertOption(t, "zero is none", zero.GetTimeoutOption, false, time.Duration(0))
	assertOption(t, "set is some", set.GetTimeoutOption, true, 2500*time.Millisecond)
}

func TestUpstreamTimeoutOption(t *testing.T) {
	t.Parallel()

	zero := config.UpstreamConfig{BaseURL: "", Token: "", TimeoutMS: 0}
	set := config.UpstreamConfig{BaseURL: "", Token: "", TimeoutMS: 30000}

	assertOption(t, "zero is none", zero.GetTimeoutOption, false, time.Duration(0))
	assertOption(t, "set is some", set.GetTimeoutOption, true, 30*time.Second)
}

func TestLoginRateOption(t *testing.T) {
	t.Parallel()

	off := config.AuthConfig{Username: "", Password: "", UseLocalDay: false, LoginRatePerMin: 0}
	on := config.AuthConfig{Username: "", Password: "", UseLocalDay: false, LoginRatePerMin: 10}

	assertOption(t, "zero is none", off.GetLoginRateOption, false, 0)
	assertOption(t, "set is some", on.GetLoginRateOption, true, 10)
}

func TestHasCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{name: "both set", username: "op", password: "pw", want: true},
		{name: "missing password", username: "op", password: "", want: false},
		{name: "missing username", username: "", password: "pw", want: false},
		{name: "neither", username: "", password: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := config.AuthConfig{
				Username: tt.username, Password: tt.password,
				UseLocalDay: false, LoginRatePerMin: 0,
			}
			if got := a.HasCredentials(); got != tt.want {
				t.Errorf("HasCredentials() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasToken(t *testing.T) {
	t.Parallel()

	u := config.UpstreamConfig{BaseURL: "", Token: "", TimeoutMS: 0}
	if u.HasToken() {
		t.Error("HasToken() = true for empty token")
	}
	u.Token = "tok"
	if !u.HasToken() {
		t.Error("HasToken() = false for set token")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "info", want: zerolog.InfoLevel},
		{level: "WARN", want: zerolog.WarnLevel},
		{level: "error", want: zerolog.ErrorLevel},
		{level: "", want: zerolog.InfoLevel},
		{level: "bogus", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			t.Parallel()
			l := config.LoggingConfig{Level: tt.level, Format: "", Output: "", Pretty: false}
			if got := l.ParseLevel(); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestRuntimeSwap(t *testing.T) {
	t.Parallel()

	first := config.MakeTestConfig()
	runtime := config.NewRuntime(first)

	if runtime.Get() != first {
		t.Fatal("Get() did not return the initial config")
	}

	second := config.MakeTestConfig()
	second.Auth.Password = "rotated"
	runtime.Store(second)

	if got := runtime.Get(); got.Auth.Password != "rotated" {
		t.Errorf("Get().Auth.Password = %q, want rotated", got.Auth.Password)
	}
}
