// Package config loads the runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Missing configuration is fatal to the whole run - there is no fallback or
// retry once a required setting is absent.
var (
	ErrNoSheet       = errors.New("missing spreadsheet ID (set SHEET_ID or use --sheet-id/--url)")
	ErrNoCredentials = errors.New("missing Google credentials (set GOOGLE_SERVICE_ACCOUNT_JSON or GOOGLE_APPLICATION_CREDENTIALS)")
)

// Config is the environment-driven configuration. Command line flags may
// override individual fields before use.
type Config struct {
	SheetID            string `envconfig:"SHEET_ID"`
	Range              string `envconfig:"SHEET_RANGE" default:"Lines!A1:Z999"`
	ServiceAccountJSON string `envconfig:"GOOGLE_SERVICE_ACCOUNT_JSON"`
	CredentialsFile    string `envconfig:"GOOGLE_APPLICATION_CREDENTIALS"`
	Output             string `envconfig:"OUTPUT_FILE" default:"data.json"`
	LogLevel           string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the configuration from the environment, applying defaults for
// unset fields.
func Load() (Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load configuration from environment: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings required to fetch from Google Sheets. Builds
// from a local workbook file don't need either.
func (c Config) Validate() error {
	if c.SheetID == "" {
		return ErrNoSheet
	}

	if c.ServiceAccountJSON == "" && c.CredentialsFile == "" {
		return ErrNoCredentials
	}

	return nil
}
