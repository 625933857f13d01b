// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"io"
	"net/http"
)

const robotsTxt = "User-agent: *\nDisallow: /api/\n"

// RobotsTxt serves a static robots.txt.
func RobotsTxt(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	_, err := io.WriteString(w, robotsTxt)

	return err
}
