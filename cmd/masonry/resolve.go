// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	var opts layoutOptions

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the column count for a viewport width",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return err
			}

			columns := opts.cols.Columns(opts.width)

			log.Debug().
				Str("breakpoint_cols", opts.cols.String()).
				Int("width", opts.width).
				Ints("thresholds", opts.cols.Thresholds()).
				Int("columns", columns).
				Msg("Resolved column count")

			_, err := fmt.Fprintln(cmd.OutOrStdout(), columns)

			return err
		},
	}

	opts.addFlags(cmd, false)

	return cmd
}
