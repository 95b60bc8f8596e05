package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Thenafi/chatwithproperties/cmd/chatwithproperties/di"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the " + appName + " web server",
	Long: `Start the web server that serves the property-browsing UI, handles the
operator login, and proxies API calls to the property-management service.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	configPath := cfgFile
	if configPath == "" {
		configPath = findConfigFile()
	}

	container, err := di.NewContainer(configPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to create container")
		return err
	}

	loggerSvc, err := di.Invoke[*di.LoggerService](container)
	if err != nil {
		// Fallback to console logger for error reporting
		log.Error().Err(err).Str("path", configPath).Msg("failed to initialize")
		return err
	}

	log.Logger = *loggerSvc.Logger
	zerolog.DefaultContextLogger = loggerSvc.Logger

	cfgSvc := di.MustInvoke[*di.ConfigService](container)
	for _, missing := range cfgSvc.Runtime.Get().MissingSecrets() {
		log.Warn().Str("key", missing).Msg("secret not configured")
	}

	serverSvc, err := di.Invoke[*di.ServerService](container)
	if err != nil {
		log.Error().Err(err).Msg("failed to create server")
		return err
	}

	// Watch the config file so rotated secrets apply without a restart.
	// A missing watcher is not fatal; the server just runs with a static config.
	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	if watcherSvc, werr := di.Invoke[*di.WatcherService](container); werr != nil {
		log.Warn().Err(werr).Msg("config watcher disabled")
	} else {
		go func() {
			if err := watcherSvc.Watcher.Watch(watchCtx); err != nil {
				log.Error().Err(err).Msg("config watcher stopped")
			}
		}()
	}

	// Graceful shutdown on SIGINT/SIGTERM
	done := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Info().Msg("shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := serverSvc.Server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown error")
		}

		stopWatch()
		close(done)
	}()

	listen := cfgSvc.Runtime.Get().Server.Listen
	log.Info().Str("listen", listen).Msg("starting " + appName)

	if err := serverSvc.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("server error")
		return err
	}

	<-done

	if err := container.Shutdown(); err != nil {
		log.Error().Err(err).Msg("container shutdown error")
	}

	log.Info().Msg("server stopped")

	return nil
}

// findConfigFile searches for config.yaml in default locations.
func findConfigFile() string {
	// Check current directory
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile
	}
	// Check ~/.config/chatwithproperties/
	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		p := filepath.Join(home, ".config", appName, defaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return defaultConfigFile // Default, will error if not found
}
