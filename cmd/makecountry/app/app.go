// Package app provides the application context and dependency management
// for the makecountry CLI. It centralizes configuration, logging and the
// catalog store that every command reads from.
package app

import (
	"context"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/karonyt/MakeCountryDocument/internal/cmd/application"
	"github.com/karonyt/MakeCountryDocument/pkg/catalogs"
	"github.com/karonyt/MakeCountryDocument/pkg/errors"
)

// App represents the makecountry application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Store is built on first use and shared afterwards
	mu    sync.RWMutex
	store *catalogs.Store
}

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment and config file; options
// may override it.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Store returns the catalog store, loading it on first use. Content comes
// from the configured content directory, or the embedded catalogs when none
// is set.
func (a *App) Store() (*catalogs.Store, error) {
	a.mu.RLock()
	if a.store != nil {
		s := a.store
		a.mu.RUnlock()
		return s, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.store != nil {
		return a.store, nil
	}

	store, err := a.loadStore()
	if err != nil {
		return nil, err
	}

	a.logger.Debug().
		Str("content_dir", a.config.ContentDir).
		Interface("catalogs", store.Counts()).
		Msg("Catalogs loaded")

	a.store = store
	return store, nil
}

func (a *App) loadStore() (*catalogs.Store, error) {
	if a.config.ContentDir == "" {
		store, err := catalogs.NewEmbedded()
		if err != nil {
			return nil, errors.WrapResource("load", "catalogs", "embedded", err)
		}
		return store, nil
	}

	info, err := os.Stat(a.config.ContentDir)
	if err != nil {
		return nil, errors.WrapResource("read", "content directory", a.config.ContentDir, err)
	}
	if !info.IsDir() {
		return nil, errors.NewConfigError("content_dir", a.config.ContentDir+" is not a directory", nil)
	}

	store, err := catalogs.Load(os.DirFS(a.config.ContentDir))
	if err != nil {
		return nil, errors.WrapResource("load", "catalogs", a.config.ContentDir, err)
	}
	return store, nil
}

// Shutdown releases application resources. The store holds nothing that
// needs closing, so only the event is logged.
func (a *App) Shutdown(_ context.Context) error {
	a.logger.Debug().Msg("Application shutdown")
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithStore sets a prebuilt store (useful for testing).
func WithStore(store *catalogs.Store) Option {
	return func(a *App) error {
		a.store = store
		return nil
	}
}

var _ application.Application = (*App)(nil)
