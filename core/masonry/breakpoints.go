// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package masonry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// DefaultKey is the mapping key holding the fallback column count.
const DefaultKey = "default"

// Configuration errors. All of them are reported when a Breakpoints value is
// built or parsed, never while rendering.
var (
	ErrMissingDefault       = errors.New(`breakpoint mapping has no "default" entry`)
	ErrInvalidColumns       = errors.New("column count must be at least 1")
	ErrInvalidThreshold     = errors.New("breakpoint threshold must be a positive width")
	ErrMalformedBreakpoints = errors.New("malformed breakpoint columns")
)

// Breakpoints describes how many columns the grid has at a given viewport width.
//
// It is either a fixed column count, or a mapping from width thresholds to
// column counts with a mandatory default. A threshold applies when the
// viewport is no wider than it.
//
// The zero value is not valid; use Fixed, Responsive or ParseBreakpoints.
type Breakpoints struct {
	fixed      int
	defaultCol int
	thresholds map[int]int
}

// Fixed returns a configuration that always resolves to columns.
func Fixed(columns int) (Breakpoints, error) {
	if columns < 1 {
		return Breakpoints{}, fmt.Errorf("%w: got %d", ErrInvalidColumns, columns)
	}

	return Breakpoints{fixed: columns}, nil
}

// Responsive returns a configuration using defaultColumns unless the viewport
// width is at or below one of the thresholds.
func Responsive(defaultColumns int, thresholds map[int]int) (Breakpoints, error) {
	if defaultColumns < 1 {
		return Breakpoints{}, fmt.Errorf("%w: default got %d", ErrInvalidColumns, defaultColumns)
	}

	for threshold, columns := range thresholds {
		if threshold < 1 {
			return Breakpoints{}, fmt.Errorf("%w: got %d", ErrInvalidThreshold, threshold)
		}

		if columns < 1 {
			return Breakpoints{}, fmt.Errorf("%w: threshold %d got %d", ErrInvalidColumns, threshold, columns)
		}
	}

	return Breakpoints{
		defaultCol: defaultColumns,
		thresholds: maps.Clone(thresholds),
	}, nil
}

// FromMap builds a configuration from a string-keyed mapping as found in
// YAML or JSON documents, where the keys are widths or DefaultKey.
func FromMap(raw map[string]int) (Breakpoints, error) {
	defaultColumns, ok := raw[DefaultKey]
	if !ok {
		return Breakpoints{}, ErrMissingDefault
	}

	thresholds := make(map[int]int, len(raw)-1)

	for key, columns := range raw {
		if key == DefaultKey {
			continue
		}

		threshold, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return Breakpoints{}, fmt.Errorf("%w: key %q is neither a width nor %q", ErrMalformedBreakpoints, key, DefaultKey)
		}

		// "700", "0700" and " 700" are one threshold.
		if _, dup := thresholds[threshold]; dup {
			return Breakpoints{}, fmt.Errorf("%w: threshold %d appears twice", ErrMalformedBreakpoints, threshold)
		}

		thresholds[threshold] = columns
	}

	return Responsive(defaultColumns, thresholds)
}

// ParseBreakpoints parses the textual form used by environment variables,
// query strings and command-line flags.
//
// Accepted forms are a single column count ("3") or a comma-separated list of
// key:columns pairs ("default:4,1200:3,700:2").
func ParseBreakpoints(s string) (Breakpoints, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Breakpoints{}, fmt.Errorf("%w: empty value", ErrMalformedBreakpoints)
	}

	if !strings.Contains(s, ":") {
		columns, err := strconv.Atoi(s)
		if err != nil {
			return Breakpoints{}, fmt.Errorf("%w: %q is not a column count", ErrMalformedBreakpoints, s)
		}

		return Fixed(columns)
	}

	raw := make(map[string]int)

	for pair := range strings.SplitSeq(s, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(pair), ":")
		if !found {
			return Breakpoints{}, fmt.Errorf("%w: %q is not a key:columns pair", ErrMalformedBreakpoints, pair)
		}

		key = strings.TrimSpace(key)

		columns, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return Breakpoints{}, fmt.Errorf("%w: %q has no valid column count", ErrMalformedBreakpoints, pair)
		}

		if _, dup := raw[key]; dup {
			return Breakpoints{}, fmt.Errorf("%w: %q appears twice", ErrMalformedBreakpoints, key)
		}

		raw[key] = columns
	}

	return FromMap(raw)
}

// MustParseBreakpoints is like ParseBreakpoints but panics on error.
// It is meant for package-level declarations with literal input.
func MustParseBreakpoints(s string) Breakpoints {
	b, err := ParseBreakpoints(s)
	if err != nil {
		panic(err)
	}

	return b
}

// IsZero reports whether b was never initialized.
func (b Breakpoints) IsZero() bool {
	return b.fixed == 0 && b.defaultCol == 0
}

// IsFixed reports whether b ignores the viewport width.
func (b Breakpoints) IsFixed() bool {
	return b.fixed != 0
}

// Validate returns an error if b cannot be resolved.
func (b Breakpoints) Validate() error {
	if b.IsZero() {
		return fmt.Errorf("%w: breakpoint columns are not configured", ErrMalformedBreakpoints)
	}

	return nil
}

// Thresholds returns the configured widths in ascending order.
// A fixed configuration has none.
func (b Breakpoints) Thresholds() []int {
	return slices.Sorted(maps.Keys(b.thresholds))
}

// Default returns the column count used when the viewport width is unknown
// or wider than every threshold.
func (b Breakpoints) Default() int {
	if b.IsFixed() {
		return b.fixed
	}

	return b.defaultCol
}

// MaxColumns returns the largest column count any width can resolve to.
func (b Breakpoints) MaxColumns() int {
	most := b.Default()
	for _, columns := range b.thresholds {
		most = max(most, columns)
	}

	return most
}

// ToMap returns the string-keyed form accepted by FromMap.
// A fixed configuration yields nil.
func (b Breakpoints) ToMap() map[string]int {
	if b.IsFixed() || b.IsZero() {
		return nil
	}

	out := make(map[string]int, len(b.thresholds)+1)
	out[DefaultKey] = b.defaultCol

	for threshold, columns := range b.thresholds {
		out[strconv.Itoa(threshold)] = columns
	}

	return out
}

// String renders the canonical textual form, with thresholds listed from
// widest to narrowest.
func (b Breakpoints) String() string {
	if b.IsZero() {
		return ""
	}

	if b.IsFixed() {
		return strconv.Itoa(b.fixed)
	}

	parts := []string{DefaultKey + ":" + strconv.Itoa(b.defaultCol)}

	thresholds := b.Thresholds()
	for i := len(thresholds) - 1; i >= 0; i-- {
		parts = append(parts, strconv.Itoa(thresholds[i])+":"+strconv.Itoa(b.thresholds[thresholds[i]]))
	}

	return strings.Join(parts, ",")
}
