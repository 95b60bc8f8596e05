package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultUpstreamBaseURL is the property-management API used when
// upstream.base_url is not set.
const DefaultUpstreamBaseURL = "https://api.hospitable.com/v2"

// DefaultListen is the listen address used when server.listen is not set.
const DefaultListen = "127.0.0.1:8787"

// Load reads and parses a configuration file from the given path.
// The format is chosen by file extension: .toml parses as TOML, anything
// else as YAML. Environment variables in the format ${VAR_NAME} are
// expanded before parsing.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
	}

	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", cerr)
		}
	}()

	return LoadFromReader(file, filepath.Ext(path))
}

// LoadFromReader reads and parses configuration from an io.Reader.
// The ext parameter selects the format (".toml" for TOML, YAML otherwise).
// Environment variables in the format ${VAR_NAME} are expanded before parsing.
func LoadFromReader(r io.Reader, ext string) (*Config, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Expand environment variables so secrets can stay out of the file
	expanded := os.ExpandEnv(string(content))

	var cfg Config
	if strings.EqualFold(ext, ".toml") {
		if err := toml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config TOML: %w", err)
		}
	} else {
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults fills in defaults for fields that may be omitted.
func (c *Config) applyDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = DefaultListen
	}
	if c.Upstream.BaseURL == "" {
		c.Upstream.BaseURL = DefaultUpstreamBaseURL
	}
}
