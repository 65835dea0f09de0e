// Package app provides the application context and dependency wiring
// for the crosslist CLI. It centralizes configuration, logging, and
// client construction so commands stay thin.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/sellerstack/crosslist/internal/config"
	"github.com/sellerstack/crosslist/internal/sources/storefront"
)

// App represents the crosslist application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Storefront client (lazy-initialized, singleton)
	mu     sync.Mutex
	client *storefront.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
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

// Version returns the version string.
func (a *App) Version() string { return a.version }

// Commit returns the git commit hash.
func (a *App) Commit() string { return a.commit }

// Date returns the build date.
func (a *App) Date() string { return a.date }

// Config returns the application configuration.
func (a *App) Config() *Config { return a.config }

// Engine returns the reconciliation engine settings.
func (a *App) Engine() *config.Config { return a.config.Engine }

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger { return a.logger }

// Storefront returns the storefront API client, creating it on first
// use. It validates the connection settings before constructing.
func (a *App) Storefront() (*storefront.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client, nil
	}

	if err := a.config.Engine.ValidateStorefront(); err != nil {
		return nil, err
	}

	a.client = storefront.NewClient(
		a.config.Engine.Storefront.BaseURL,
		a.config.Engine.Storefront.ConsumerKey,
		a.config.Engine.Storefront.ConsumerSecret,
	)
	return a.client, nil
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

// WithStorefront sets a custom storefront client (useful for testing).
func WithStorefront(client *storefront.Client) Option {
	return func(a *App) error {
		a.client = client
		return nil
	}
}
