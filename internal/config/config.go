// Package config holds runtime settings for the crosslist tool,
// resolved from flags, environment, and optional config files.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/sellerstack/crosslist/pkg/errors"
)

// Storefront holds the REST API connection settings.
type Storefront struct {
	BaseURL        string `mapstructure:"base_url"`
	ConsumerKey    string `mapstructure:"consumer_key"`
	ConsumerSecret string `mapstructure:"consumer_secret"`
}

// Marketplace holds the CSV export settings.
type Marketplace struct {
	CSVPath string `mapstructure:"csv_path"`
}

// Config is the full runtime configuration.
type Config struct {
	Storefront   Storefront  `mapstructure:"storefront"`
	Marketplace  Marketplace `mapstructure:"marketplace"`
	SnapshotPath string      `mapstructure:"snapshot_path"`
}

// EnvPrefix is the prefix for environment variable overrides, e.g.
// CROSSLIST_STOREFRONT_BASE_URL.
const EnvPrefix = "CROSSLIST"

// Load resolves configuration through viper: defaults, then an optional
// .crosslist.yaml in the working directory or home, then environment
// variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".crosslist")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("snapshot_path", "storefront-items.json")

	// Bind explicitly so AutomaticEnv sees nested keys that never
	// appear in a config file.
	for _, key := range []string{
		"storefront.base_url",
		"storefront.consumer_key",
		"storefront.consumer_secret",
		"marketplace.csv_path",
		"snapshot_path",
	} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("config file", "failed to read", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.NewConfigError("config file", "failed to decode", err)
	}
	return &cfg, nil
}

// ValidateStorefront checks the settings required to reach the
// storefront API. Commands that never touch the API skip this.
func (c *Config) ValidateStorefront() error {
	if c.Storefront.BaseURL == "" {
		return errors.NewConfigError("storefront", "base URL is required", errors.ErrInvalidInput)
	}
	if c.Storefront.ConsumerKey == "" || c.Storefront.ConsumerSecret == "" {
		return errors.NewConfigError("storefront", "consumer key and secret are required", errors.ErrCredentialsRequired)
	}
	return nil
}

// ValidateMarketplace checks that a CSV export path is set.
func (c *Config) ValidateMarketplace() error {
	if c.Marketplace.CSVPath == "" {
		return errors.NewConfigError("marketplace", "CSV export path is required", errors.ErrInvalidInput)
	}
	return nil
}
