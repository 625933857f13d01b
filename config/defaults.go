// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"time"

	"codeberg.org/pixivfe/masonry/assets/components/fragments"
)

const (
	// Default graceful shutdown deadline in seconds.
	defaultShutdownTimeoutSeconds = 5

	// Default and maximum number of demo cards on the gallery page.
	defaultGalleryItems    = 24
	defaultGalleryMaxItems = 500

	// Upper bound for resolved column counts.
	defaultGalleryMaxColumns = 24

	// Default limiter budget.
	defaultLimiterRequestsPerMinute = 120
	defaultLimiterBurst             = 60
)

// SetDefaults populates the configuration with default values.
//
// Masonry.BreakpointCols has no default and must be configured.
func (cfg *ServerConfig) SetDefaults() {
	cfg.Basic.Host = "localhost"
	cfg.Basic.Port = "8283"
	cfg.Basic.ShutdownTimeout = defaultShutdownTimeoutSeconds * time.Second

	cfg.Masonry.ClassName = fragments.DefaultClassName
	cfg.Masonry.ColumnClassName = fragments.DefaultColumnClassName

	cfg.Gallery.Title = "Masonry"
	cfg.Gallery.DefaultItems = defaultGalleryItems
	cfg.Gallery.MaxItems = defaultGalleryMaxItems
	cfg.Gallery.MaxColumns = defaultGalleryMaxColumns

	cfg.Response.Compression = true

	cfg.Limiter.Enabled = false
	cfg.Limiter.RequestsPerMinute = defaultLimiterRequestsPerMinute
	cfg.Limiter.Burst = defaultLimiterBurst

	cfg.Log.Level = "info"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"
}
