// Package cmd implements the crosslist subcommands.
package cmd

import (
	"github.com/rs/zerolog"

	"github.com/sellerstack/crosslist/internal/config"
	"github.com/sellerstack/crosslist/internal/sources/storefront"
)

// Application is what commands need from the surrounding app shell.
// The app package implements it; tests substitute their own.
type Application interface {
	Engine() *config.Config
	Storefront() (*storefront.Client, error)
	Logger() *zerolog.Logger
	Version() string
	Commit() string
	Date() string
}
