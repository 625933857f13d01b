// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"codeberg.org/pixivfe/masonry/assets/components/partials"
	"codeberg.org/pixivfe/masonry/core/masonry"
)

const (
	previewColumnWidth = 8

	// previewPixelsPerLine scales demo card heights down to terminal lines.
	previewPixelsPerLine = 80
)

var (
	colorCyan = lipgloss.Color("36")
	colorDim  = lipgloss.Color("240")
)

func newDistributeCmd() *cobra.Command {
	var opts layoutOptions

	cmd := &cobra.Command{
		Use:   "distribute",
		Short: "Preview how items are distributed across columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return err
			}

			columns := opts.cols.Columns(opts.width)

			assignment, err := masonry.Indices(opts.items, columns)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, err = fmt.Fprintln(out, renderPreview(out, opts, assignment))

			return err
		},
	}

	opts.addFlags(cmd, true)

	return cmd
}

// renderPreview draws the columns side by side, each item as tall as its
// demo card would be in the gallery.
func renderPreview(w io.Writer, opts layoutOptions, assignment [][]int) string {
	renderer := lipgloss.NewRenderer(w)

	titleStyle := renderer.NewStyle().Bold(true).Foreground(colorCyan)
	dimStyle := renderer.NewStyle().Foreground(colorDim)
	columnStyle := renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorDim).
		Width(previewColumnWidth)
	itemStyle := renderer.NewStyle().Foreground(colorCyan)

	width := "unknown width"
	if opts.width > 0 {
		width = strconv.Itoa(opts.width) + "px"
	}

	title := titleStyle.Render(fmt.Sprintf("%d items in %d columns", opts.items, len(assignment))) +
		dimStyle.Render(fmt.Sprintf(" at %s (%s)", width, opts.cols.String()))

	rendered := make([]string, 0, len(assignment))

	for c, column := range assignment {
		cells := []string{dimStyle.Render("col " + strconv.Itoa(c+1))}

		for _, i := range column {
			height := max(1, partials.CardHeight(i)/previewPixelsPerLine)
			cells = append(cells, itemStyle.Height(height).Render("#"+strconv.Itoa(i+1)))
		}

		rendered = append(rendered, columnStyle.Render(lipgloss.JoinVertical(lipgloss.Left, cells...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
}
