package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setInitFlags(t *testing.T, output string, force bool) {
	t.Helper()
	require.NoError(t, configInitCmd.Flags().Set("output", output))
	if force {
		require.NoError(t, configInitCmd.Flags().Set("force", "true"))
	} else {
		require.NoError(t, configInitCmd.Flags().Set("force", "false"))
	}
}

func TestConfigInitCreatesFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "config.yaml")
	setInitFlags(t, output, false)

	require.NoError(t, runConfigInit(configInitCmd, nil))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "listen:")
	assert.Contains(t, content, "upstream:")
	assert.Contains(t, content, "${HOSPITABLE_TOKEN}")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	output := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(output, []byte("existing: true\n"), 0o600))

	setInitFlags(t, output, false)
	err := runConfigInit(configInitCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// --force replaces it
	setInitFlags(t, output, true)
	require.NoError(t, runConfigInit(configInitCmd, nil))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "existing: true")
}

func TestConfigInitCreatesParentDirs(t *testing.T) {
	output := filepath.Join(t.TempDir(), "nested", "deeper", "config.yaml")
	setInitFlags(t, output, false)

	require.NoError(t, runConfigInit(configInitCmd, nil))

	_, err := os.Stat(output)
	require.NoError(t, err)
}

func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(strings.TrimSpace(`
server:
  listen: "127.0.0.1:8787"
auth:
  username: "op"
  password: "pw"
upstream:
  base_url: "https://api.example.com/v2"
  token: "tok"
logging:
  level: "error"
`)), 0o600))

	orig := cfgFile
	defer func() { cfgFile = orig }()
	cfgFile = path

	require.NoError(t, runConfigValidate(configValidateCmd, nil))
}

func TestConfigValidateRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  listen: \"not-a-listen-addr\"\n"), 0o600))

	orig := cfgFile
	defer func() { cfgFile = orig }()
	cfgFile = path

	require.Error(t, runConfigValidate(configValidateCmd, nil))
}
