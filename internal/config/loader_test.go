package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Thenafi/chatwithproperties/internal/config"
)

const yamlConfig = `
server:
  listen: "0.0.0.0:9090"
  timeout_ms: 15000
auth:
  username: operator
  password: ${CHAT_TEST_PASSWORD}
upstream:
  base_url: "https://api.example.com/v2"
  token: tok-abc
logging:
  level: debug
  format: console
`

const tomlConfig = `
[server]
listen = "0.0.0.0:9090"
timeout_ms = 15000

[auth]
username = "operator"
password = "hunter2"

[upstream]
base_url = "https://api.example.com/v2"
token = "tok-abc"

[logging]
level = "debug"
format = "console"
`

func TestLoadFromReaderYAML(t *testing.T) {
	t.Setenv("CHAT_TEST_PASSWORD", "hunter2")

	cfg, err := config.LoadFromReader(strings.NewReader(yamlConfig), ".yaml")
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}

	if cfg.Server.Listen != "0.0.0.0:9090" {
		t.Errorf("Listen = %q, want 0.0.0.0:9090", cfg.Server.Listen)
	}
	if cfg.Auth.Password != "hunter2" {
		t.Errorf("Password = %q, want env-expanded hunter2", cfg.Auth.Password)
	}
	if cfg.Upstream.Token != "tok-abc" {
		t.Errorf("Token = %q, want tok-abc", cfg.Upstream.Token)
	}
	if got := cfg.Server.GetTimeoutOption(); !got.IsPresent() || got.MustGet() != 15*time.Second {
		t.Errorf("GetTimeoutOption() = %v, want Some(15s)", got)
	}
}

func TestLoadFromReaderTOML(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFromReader(strings.NewReader(tomlConfig), ".toml")
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}

	if cfg.Auth.Username != "operator" {
		t.Errorf("Username = %q, want operator", cfg.Auth.Username)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoadFromReaderDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFromReader(strings.NewReader("auth:\n  username: op\n"), ".yaml")
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}

	if cfg.Server.Listen != config.DefaultListen {
		t.Errorf("Listen = %q, want default %q", cfg.Server.Listen, config.DefaultListen)
	}
	if cfg.Upstream.BaseURL != config.DefaultUpstreamBaseURL {
		t.Errorf("BaseURL = %q, want default %q", cfg.Upstream.BaseURL, config.DefaultUpstreamBaseURL)
	}
}

func TestLoadFromReaderBadYAML(t *testing.T) {
	t.Parallel()

	_, err := config.LoadFromReader(strings.NewReader("server: ["), ".yaml")
	if err == nil {
		t.Fatal("expected parse error for malformed YAML")
	}
}

func TestLoadFileDispatch(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	tomlPath := filepath.Join(tmpDir, "config.toml")
	if err := os.WriteFile(tomlPath, []byte(tomlConfig), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := config.Load(tomlPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Auth.Password != "hunter2" {
		t.Errorf("Password = %q, want hunter2", cfg.Auth.Password)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := config.Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
