package di

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/samber/do/v2"

	"github.com/Thenafi/chatwithproperties/internal/config"
	"github.com/Thenafi/chatwithproperties/internal/server"
	"github.com/Thenafi/chatwithproperties/internal/upstream"
)

// Service wrapper types for DI registration.
// These provide type safety and allow distinguishing between similar types.

// ConfigService wraps the runtime config holder and the path it was loaded from.
type ConfigService struct {
	Runtime *config.Runtime
	Path    string
}

// LoggerService wraps the zerolog logger for DI.
type LoggerService struct {
	Logger *zerolog.Logger
}

// UpstreamService wraps the property API client.
type UpstreamService struct {
	Client *upstream.Client
}

// HandlerService wraps the HTTP handler.
type HandlerService struct {
	Handler http.Handler
}

// ServerService wraps the HTTP server.
type ServerService struct {
	Server *server.Server
}

// WatcherService wraps the config file watcher.
type WatcherService struct {
	Watcher *config.Watcher
}

// RegisterSingletons registers all service providers as singletons.
// Services are registered in dependency order:
// 1. Config (no dependencies)
// 2. Logger (depends on Config)
// 3. Upstream client (depends on Config)
// 4. Handler (depends on Config, Upstream)
// 5. Server (depends on Config, Handler)
// 6. Watcher (depends on Config).
func RegisterSingletons(i do.Injector) {
	do.Provide(i, NewConfig)
	do.Provide(i, NewLogger)
	do.Provide(i, NewUpstreamClient)
	do.Provide(i, NewAppHandler)
	do.Provide(i, NewHTTPServer)
	do.Provide(i, NewConfigWatcher)
}

// NewConfig loads and validates the configuration from the config path.
func NewConfig(i do.Injector) (*ConfigService, error) {
	path := do.MustInvokeNamed[string](i, ConfigPathKey)

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &ConfigService{Runtime: config.NewRuntime(cfg), Path: path}, nil
}

// NewLogger creates the zerolog logger from configuration.
func NewLogger(i do.Injector) (*LoggerService, error) {
	cfgSvc := do.MustInvoke[*ConfigService](i)

	logger, err := server.NewLogger(cfgSvc.Runtime.Get().Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &LoggerService{Logger: &logger}, nil
}

// NewUpstreamClient creates the property API client.
func NewUpstreamClient(i do.Injector) (*UpstreamService, error) {
	cfgSvc := do.MustInvoke[*ConfigService](i)

	return &UpstreamService{Client: upstream.NewClient(cfgSvc.Runtime)}, nil
}

// NewAppHandler creates the HTTP handler with all middleware.
func NewAppHandler(i do.Injector) (*HandlerService, error) {
	cfgSvc := do.MustInvoke[*ConfigService](i)
	upstreamSvc := do.MustInvoke[*UpstreamService](i)

	return &HandlerService{
		Handler: server.SetupRoutes(cfgSvc.Runtime, upstreamSvc.Client),
	}, nil
}

// NewHTTPServer creates the HTTP server.
func NewHTTPServer(i do.Injector) (*ServerService, error) {
	cfgSvc := do.MustInvoke[*ConfigService](i)
	handlerSvc := do.MustInvoke[*HandlerService](i)

	cfg := cfgSvc.Runtime.Get()
	srv := server.NewServer(
		cfg.Server.Listen,
		handlerSvc.Handler,
		cfg.Server.EnableHTTP2,
		cfg.Server.GetTimeoutOption().OrElse(0),
	)

	return &ServerService{Server: srv}, nil
}

// NewConfigWatcher creates the file watcher that hot-swaps the runtime config.
// Rotated secrets take effect on the next request once the file is rewritten.
func NewConfigWatcher(i do.Injector) (*WatcherService, error) {
	cfgSvc := do.MustInvoke[*ConfigService](i)

	watcher, err := config.NewWatcher(cfgSvc.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}

	runtime := cfgSvc.Runtime
	watcher.OnReload(func(cfg *config.Config) error {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("reloaded config rejected: %w", err)
		}
		runtime.Store(cfg)
		return nil
	})

	return &WatcherService{Watcher: watcher}, nil
}

// Shutdown implements do.Shutdowner for graceful watcher cleanup.
func (w *WatcherService) Shutdown() error {
	if w.Watcher != nil {
		return w.Watcher.Close()
	}
	return nil
}
