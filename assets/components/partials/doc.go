// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package partials holds components that would otherwise be included under fragments/,
but are built directly by backend code, such as the demo gallery cards.
*/
package partials
