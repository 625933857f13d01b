// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// ErrInvalidQueryParam is returned for query parameters that fail to parse.
var ErrInvalidQueryParam = errors.New("invalid query parameter")

// GetQueryParam retrieves the value of a query parameter by name.
//
// If the parameter is not present, it returns the provided default value or an empty string.
func GetQueryParam(r *http.Request, name string, defaultValue ...string) string {
	v := r.URL.Query().Get(name)
	if v != "" {
		return v
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}

	return ""
}

// GetIntQueryParam parses a non-negative integer query parameter.
//
// An absent parameter yields defaultValue. Values above maxValue are clamped.
func GetIntQueryParam(r *http.Request, name string, defaultValue, maxValue int) (int, error) {
	raw := GetQueryParam(r, name)
	if raw == "" {
		return defaultValue, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s=%q must be a non-negative integer", ErrInvalidQueryParam, name, raw)
	}

	return min(v, maxValue), nil
}
