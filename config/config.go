// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"codeberg.org/pixivfe/masonry/core/masonry"
)

// Global exposes the server configuration.
var Global ServerConfig

// ServerConfig holds the application configuration.
type ServerConfig struct {
	Build buildInfo `yaml:"-"`

	Basic struct {
		Host string `env:"MASONRY_HOST,overwrite" yaml:"host"`
		Port string `env:"MASONRY_PORT,overwrite" yaml:"port"`

		ShutdownTimeout time.Duration `env:"MASONRY_SHUTDOWN_TIMEOUT,overwrite" yaml:"shutdownTimeout"`
	} `yaml:"basic"`

	// Masonry configures the grid component used by every page.
	Masonry struct {
		BreakpointCols  masonry.Breakpoints `env:"MASONRY_BREAKPOINT_COLS,overwrite" yaml:"breakpointCols"`
		ClassName       string              `env:"MASONRY_CLASS_NAME,overwrite" yaml:"className"`
		ColumnClassName string              `env:"MASONRY_COLUMN_CLASS_NAME,overwrite" yaml:"columnClassName"`
	} `yaml:"masonry"`

	Gallery struct {
		Title        string `env:"MASONRY_GALLERY_TITLE,overwrite" yaml:"title"`
		DefaultItems int    `env:"MASONRY_GALLERY_DEFAULT_ITEMS,overwrite" yaml:"defaultItems"`
		MaxItems     int    `env:"MASONRY_GALLERY_MAX_ITEMS,overwrite" yaml:"maxItems"`
		// MaxColumns caps the column count of any grid, including cols overrides from requests.
		MaxColumns   int    `env:"MASONRY_GALLERY_MAX_COLUMNS,overwrite" yaml:"maxColumns"`
	} `yaml:"gallery"`

	Response struct {
		Compression bool `env:"MASONRY_COMPRESSION,overwrite" yaml:"compression"`
	} `yaml:"response"`

	Limiter struct {
		Enabled           bool `env:"MASONRY_LIMITER,overwrite" yaml:"enabled"`
		RequestsPerMinute int  `env:"MASONRY_LIMITER_REQUESTS_PER_MINUTE,overwrite" yaml:"requestsPerMinute"`
		Burst             int  `env:"MASONRY_LIMITER_BURST,overwrite" yaml:"burst"`
	} `yaml:"limiter"`

	Development struct {
		InDevelopment bool `env:"MASONRY_DEV" yaml:"inDevelopment"`
	} `yaml:"development"`

	Log struct {
		Level   string   `env:"MASONRY_LOG_LEVEL,overwrite" yaml:"logLevel"`
		Outputs []string `env:"MASONRY_LOG_OUTPUTS,overwrite" yaml:"logOutputs"`
		Format  string   `env:"MASONRY_LOG_FORMAT,overwrite" yaml:"logFormat"`
	} `yaml:"log"`
}

// LoadConfig loads the configuration from various sources.
//
// Sources are applied in order: defaults, YAML file, .env file, environment.
// The result is validated before anything else uses it, so an invalid grid
// configuration stops the server at startup.
func (cfg *ServerConfig) LoadConfig() error {
	parsedConfigFlagValue := parseCommandLineArgs()

	// Check if the -config flag was explicitly set by the user.
	configFlagUserSet := false

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configFlagUserSet = true
		}
	})

	var configFilePath string

	// Precedence: -config flag, then MASONRY_CONFIGFILE, then ./config.yaml
	// with a fallback to ./config.yml.
	if configFlagUserSet {
		configFilePath = parsedConfigFlagValue
	} else if envVar := os.Getenv("MASONRY_CONFIGFILE"); envVar != "" {
		configFilePath = envVar
	} else {
		configFilePath = parsedConfigFlagValue
		if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
			ymlPath := "./config.yml"
			if _, statErr := os.Stat(ymlPath); statErr == nil {
				configFilePath = ymlPath
			}
		}
	}

	cfg.SetDefaults()

	cfg.Build.load()

	if err := cfg.readYAML(configFilePath); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := useDotEnv(); err != nil {
		return fmt.Errorf("error using .env file: %w", err)
	}

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validateAndSet(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupAudit()

	cfg.print()

	return nil
}

var staticSkippedPathPrefixes = []string{"/favicon.ico", "/robots.txt"}

// ShouldSkipServerLogging determines if a request should bypass the logging middleware.
func (cfg *ServerConfig) ShouldSkipServerLogging(path string) bool {
	for _, prefix := range staticSkippedPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// GetDurationEncoderOption returns a YAML encoder option that marshals
// time.Duration into a human-readable string format (e.g., "30m", "1h").
func GetDurationEncoderOption() yaml.EncodeOption {
	return yaml.CustomMarshaler[time.Duration](
		func(d time.Duration) ([]byte, error) {
			return yaml.Marshal(d.String())
		},
	)
}
