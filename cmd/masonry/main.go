// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Masonry is a command-line companion to the grid component.

It resolves breakpoint columns for a viewport width, previews how items are
distributed across columns, and renders static grid markup.
*/
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"codeberg.org/pixivfe/masonry/config"
	"codeberg.org/pixivfe/masonry/core/audit"
	"codeberg.org/pixivfe/masonry/core/masonry"
)

const defaultItems = 12

var errNegativeItems = errors.New("--items must not be negative")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	audit.SetDefaultLogger()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "masonry",
		Short:        "Resolve, preview and render masonry grid layouts",
		Version:      config.BuildVersion,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}

			zerolog.SetGlobalLevel(level)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newResolveCmd())
	root.AddCommand(newDistributeCmd())
	root.AddCommand(newRenderCmd())

	return root
}

// layoutOptions are the flags shared by every subcommand.
type layoutOptions struct {
	cols  masonry.Breakpoints
	width int
	items int
}

func (o *layoutOptions) addFlags(cmd *cobra.Command, withItems bool) {
	cmd.Flags().Var(&o.cols, "cols", `breakpoint columns, e.g. "3" or "default:4,1200:3,700:2"`)
	cmd.Flags().IntVar(&o.width, "width", masonry.UnknownWidth, "viewport width in CSS pixels, 0 when unknown")

	_ = cmd.MarkFlagRequired("cols")

	if withItems {
		cmd.Flags().IntVar(&o.items, "items", defaultItems, "number of demo items")
	}
}

func (o *layoutOptions) validate() error {
	if o.items < 0 {
		return errNegativeItems
	}

	return o.cols.Validate()
}
