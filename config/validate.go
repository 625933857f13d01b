// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/rs/zerolog/log"

	"codeberg.org/pixivfe/masonry/assets/components/fragments"
)

// validation errors.
var (
	errBreakpointColsRequired = errors.New("masonry.breakpointCols is required")
	errInvalidClassName       = errors.New("not a valid CSS class name")
	errInvalidGalleryItems    = errors.New("gallery.defaultItems must be between 0 and gallery.maxItems")
	errInvalidMaxColumns      = errors.New("gallery.maxColumns must be positive")
	errTooManyColumns         = errors.New("masonry.breakpointCols exceeds gallery.maxColumns")
	errInvalidLimiterRate     = errors.New("limiter.requestsPerMinute and limiter.burst must be positive")
	errInvalidLogFormat       = errors.New(`log.logFormat must be "console" or "json"`)
	errInvalidShutdownTimeout = errors.New("basic.shutdownTimeout must be positive")
)

var classNameRegexp = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*$`)

// validateAndSet validates the server configuration and populates some fields.
func (cfg *ServerConfig) validateAndSet() error {
	if cfg.Basic.Host == "" {
		cfg.Basic.Host = "localhost"
		log.Info().
			Str("host", cfg.Basic.Host).
			Msg("Binding to default host")
	}

	if cfg.Basic.Port == "" {
		cfg.Basic.Port = "8283"
		log.Info().
			Str("port", cfg.Basic.Port).
			Msg("Using default port")
	}

	if cfg.Basic.ShutdownTimeout <= 0 {
		return errInvalidShutdownTimeout
	}

	// The grid configuration is checked here, once, so that a bad mapping
	// stops startup instead of degrading every page.
	if cfg.Masonry.BreakpointCols.IsZero() {
		return errBreakpointColsRequired
	}

	if err := cfg.Masonry.BreakpointCols.Validate(); err != nil {
		return fmt.Errorf("masonry.breakpointCols: %w", err)
	}

	if cfg.Masonry.ClassName == "" {
		cfg.Masonry.ClassName = fragments.DefaultClassName
	}

	if cfg.Masonry.ColumnClassName == "" {
		cfg.Masonry.ColumnClassName = fragments.DefaultColumnClassName
	}

	for name, value := range map[string]string{
		"masonry.className":       cfg.Masonry.ClassName,
		"masonry.columnClassName": cfg.Masonry.ColumnClassName,
	} {
		if !classNameRegexp.MatchString(value) {
			return fmt.Errorf("%s %q: %w", name, value, errInvalidClassName)
		}
	}

	if cfg.Gallery.MaxColumns <= 0 {
		return errInvalidMaxColumns
	}

	if most := cfg.Masonry.BreakpointCols.MaxColumns(); most > cfg.Gallery.MaxColumns {
		return fmt.Errorf("%w: %d > %d", errTooManyColumns, most, cfg.Gallery.MaxColumns)
	}

	if cfg.Gallery.MaxItems < 0 || cfg.Gallery.DefaultItems < 0 || cfg.Gallery.DefaultItems > cfg.Gallery.MaxItems {
		return errInvalidGalleryItems
	}

	switch cfg.Log.Format {
	case "console", "json":
		// valid
	default:
		return errInvalidLogFormat
	}

	// Skip validating Limiter configuration if it's not enabled
	if !cfg.Limiter.Enabled {
		return nil
	}

	if cfg.Limiter.RequestsPerMinute <= 0 || cfg.Limiter.Burst <= 0 {
		return errInvalidLimiterRate
	}

	return nil
}

// GridProps returns the grid configuration shared by all pages.
func (cfg *ServerConfig) GridProps() fragments.MasonryProps {
	return fragments.MasonryProps{
		BreakpointCols:  cfg.Masonry.BreakpointCols,
		ClassName:       cfg.Masonry.ClassName,
		ColumnClassName: cfg.Masonry.ColumnClassName,
	}
}
