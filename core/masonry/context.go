// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package masonry

import "context"

type widthKeyType struct{}

var widthKey = widthKeyType{}

// WithWidth attaches the viewport width of the current rendering context.
func WithWidth(ctx context.Context, width int) context.Context {
	return context.WithValue(ctx, widthKey, width)
}

// WidthFromContext returns the width set by WithWidth, or UnknownWidth.
func WidthFromContext(ctx context.Context) int {
	if width, ok := ctx.Value(widthKey).(int); ok && width > UnknownWidth {
		return width
	}

	return UnknownWidth
}
