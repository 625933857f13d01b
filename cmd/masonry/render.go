// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"codeberg.org/pixivfe/masonry/assets/components/fragments"
	"codeberg.org/pixivfe/masonry/assets/components/partials"
)

func newRenderCmd() *cobra.Command {
	var (
		opts            layoutOptions
		className       string
		columnClassName string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write static grid markup for demo items to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return err
			}

			grid, err := fragments.NewMasonryGrid(fragments.MasonryProps{
				BreakpointCols:  opts.cols,
				ClassName:       className,
				ColumnClassName: columnClassName,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if err := grid.MasonryAt(opts.width, partials.Cards(opts.items)...).Render(cmd.Context(), out); err != nil {
				return err
			}

			_, err = fmt.Fprintln(out)

			return err
		},
	}

	opts.addFlags(cmd, true)
	cmd.Flags().StringVar(&className, "class-name", fragments.DefaultClassName, "class of the grid container")
	cmd.Flags().StringVar(&columnClassName, "column-class-name", fragments.DefaultColumnClassName, "class of each column")

	return cmd
}
