// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package middleware provides the HTTP middleware used by the masonry server.

Each middleware has the Middleware signature and is bound to the next handler
with Wrap. The chain itself is assembled in the router package.
*/
package middleware
