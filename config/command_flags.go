// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import "flag"

const configFlagName = "config"

// parseCommandLineArgs defines and parses flags, returning the value of the "config" flag.
//
// The flag is only defined once, so repeated calls (as in tests) see the same value.
func parseCommandLineArgs() string {
	if flag.Lookup(configFlagName) == nil {
		flag.String(configFlagName, "./config.yaml", "Path to a masonry server configuration file in YAML format.")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	return flag.Lookup(configFlagName).Value.String()
}
