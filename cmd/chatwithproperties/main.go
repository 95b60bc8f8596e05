// Package main is the entry point for chatwithproperties.
package main

import (
	"context"
	"os"

	"charm.land/fang/v2"
	"github.com/spf13/cobra"
)

const (
	defaultConfigFile = "config.yaml"
	appName           = "chatwithproperties"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Self-hosted property browser",
	Long: `chatwithproperties is a small self-hosted web app for a single operator.
It serves an embedded property-browsing UI behind a date-scoped session login
and proxies the property-management API without exposing its bearer token to
the browser.`,
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file path (default: ./"+defaultConfigFile+" or ~/.config/"+appName+"/"+defaultConfigFile+")")
}

func main() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}
