// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package masonry

// UnknownWidth marks a rendering context without a viewport, such as static
// generation. Any non-positive width is treated the same way.
const UnknownWidth = 0

// Columns returns the column count active at the given viewport width.
//
// A fixed configuration ignores width. Otherwise the smallest threshold that
// is at least width wins, so a width equal to a threshold matches it, as with
// a CSS max-width media query. When no threshold qualifies, or the width is
// unknown, the default count applies.
//
// The result is always at least 1 for a configuration that passed Validate.
func (b Breakpoints) Columns(width int) int {
	if b.IsFixed() {
		return b.fixed
	}

	if width <= UnknownWidth {
		return b.defaultCol
	}

	for _, threshold := range b.Thresholds() {
		if width <= threshold {
			return b.thresholds[threshold]
		}
	}

	return b.defaultCol
}
