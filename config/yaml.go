// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

var errInvalidYAML = errors.New("invalid YAML configuration")

// readYAML applies the YAML file at configFilePath on top of cfg.
//
// A missing file is not an error. Unknown keys are, so a misspelt
// breakpointCols cannot leave the grid unconfigured without a hint.
func (cfg *ServerConfig) readYAML(configFilePath string) error {
	if configFilePath == "" {
		return nil
	}

	yamlCfg, err := os.ReadFile(configFilePath) // #nosec G304 -- Only loading a config file
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().
			Str("path", configFilePath).
			Msg("No YAML configuration file found, skipping")

		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", configFilePath, err)
	}

	if err := yaml.UnmarshalWithOptions(yamlCfg, cfg, yaml.Strict()); err != nil {
		// FormatError points at the offending line, e.g. a mapping without "default".
		return fmt.Errorf("%w in %s:\n%s", errInvalidYAML, configFilePath, yaml.FormatError(err, false, true))
	}

	log.Info().
		Str("path", configFilePath).
		Str("breakpoint_cols", cfg.Masonry.BreakpointCols.String()).
		Msg("Successfully loaded configuration")

	return nil
}
