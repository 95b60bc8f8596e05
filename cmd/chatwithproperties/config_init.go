package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const defaultConfigTemplate = `# chatwithproperties configuration
server:
  listen: "127.0.0.1:8787"
  # enable_http2: true enables h2c for plaintext HTTP/2 behind an edge proxy
  enable_http2: false

auth:
  # Operator credentials. Environment variables are expanded at load time.
  username: "${CHAT_USERNAME}"
  password: "${CHAT_PASSWORD}"
  # Derive the daily session token from the local calendar day instead of UTC
  use_local_day: false
  # Uncomment to bound login attempts per minute
  # login_rate_per_min: 10

upstream:
  base_url: "https://api.hospitable.com/v2"
  token: "${HOSPITABLE_TOKEN}"

logging:
  level: "info"
  # format: json | console | pretty (console auto-detects a terminal)
  format: "console"
  output: "stdout"
`

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default config file",
	Long:  `Generate a default configuration file at ~/.config/` + appName + `/config.yaml`,
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().StringP("output", "o", "", "output path (default: ~/.config/"+appName+"/config.yaml)")
	configInitCmd.Flags().Bool("force", false, "overwrite existing config file")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("failed to get force flag: %w", err)
	}

	if output == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		output = filepath.Join(home, ".config", appName, defaultConfigFile)
	}

	if _, err := os.Stat(output); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", output)
	}

	dir := filepath.Dir(output)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(output, []byte(defaultConfigTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Config file created at %s\n", output)
	fmt.Fprintln(cmd.OutOrStdout(), "\nNext steps:")
	fmt.Fprintln(cmd.OutOrStdout(), "  1. Set CHAT_USERNAME, CHAT_PASSWORD, and HOSPITABLE_TOKEN")
	fmt.Fprintln(cmd.OutOrStdout(), "  2. Validate with: "+appName+" config validate")
	fmt.Fprintln(cmd.OutOrStdout(), "  3. Start the server: "+appName+" serve")

	return nil
}
