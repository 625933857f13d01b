// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package limiter provides per-client token-bucket rate limiting for the demo server.
package limiter
