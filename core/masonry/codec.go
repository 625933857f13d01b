// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package masonry

import (
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-yaml"
)

// MarshalYAML writes a fixed configuration as a scalar and a responsive one
// as a mapping.
func (b Breakpoints) MarshalYAML() (any, error) {
	if b.IsFixed() {
		return b.fixed, nil
	}

	return b.ToMap(), nil
}

// UnmarshalYAML accepts either a scalar column count or a mapping of widths
// (and "default") to column counts.
func (b *Breakpoints) UnmarshalYAML(data []byte) error {
	var scalar any
	if err := yaml.Unmarshal(data, &scalar); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedBreakpoints, err)
	}

	if columns, ok := toInt(scalar); ok {
		parsed, err := Fixed(columns)
		if err != nil {
			return err
		}

		*b = parsed

		return nil
	}

	var items yaml.MapSlice
	if err := yaml.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("%w: expected a column count or a mapping: %w", ErrMalformedBreakpoints, err)
	}

	raw := make(map[string]int, len(items))

	for _, item := range items {
		key := fmt.Sprint(item.Key)

		value, ok := toInt(item.Value)
		if !ok {
			return fmt.Errorf("%w: %q maps to %v, not a column count", ErrMalformedBreakpoints, key, item.Value)
		}

		if _, dup := raw[key]; dup {
			return fmt.Errorf("%w: %q appears twice", ErrMalformedBreakpoints, key)
		}

		raw[key] = value
	}

	parsed, err := FromMap(raw)
	if err != nil {
		return err
	}

	*b = parsed

	return nil
}

// Set parses the textual form. Together with String and Type it lets
// Breakpoints be used as a command-line flag and an environment value.
func (b *Breakpoints) Set(s string) error {
	parsed, err := ParseBreakpoints(s)
	if err != nil {
		return err
	}

	*b = parsed

	return nil
}

// Type names the flag value type in usage output.
func (b *Breakpoints) Type() string {
	return "breakpoints"
}

// toInt converts the scalar types a YAML decoder produces for integers.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}

		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}

		return int(n), true
	case string:
		i, err := strconv.Atoi(n)

		return i, err == nil
	default:
		return 0, false
	}
}
