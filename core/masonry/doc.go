// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package masonry holds the layout decisions behind the masonry grid: resolving
the active column count from a breakpoint configuration, and distributing an
ordered item sequence across those columns.

Nothing here renders markup; see package components for that.
*/
package masonry
