// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package fragments

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"codeberg.org/pixivfe/masonry/core/masonry"
)

// Default class names for the grid markup.
const (
	DefaultClassName       = "astro-masonry-grid"
	DefaultColumnClassName = "astro-masonry-grid_column"
)

// MasonryProps configures a masonry grid.
type MasonryProps struct {
	// BreakpointCols decides the column count. Required.
	BreakpointCols masonry.Breakpoints

	// ClassName is set on the outer container. Empty means DefaultClassName.
	ClassName string

	// ColumnClassName is set on each column. Empty means DefaultColumnClassName.
	ColumnClassName string
}

// MasonryGrid is a validated grid configuration that can render any number of
// item sequences.
type MasonryGrid struct {
	props MasonryProps
}

// NewMasonryGrid validates props and fills in default class names.
//
// Configuration problems are reported here so that they surface when pages are
// composed, not halfway through writing a response.
func NewMasonryGrid(props MasonryProps) (*MasonryGrid, error) {
	if err := props.BreakpointCols.Validate(); err != nil {
		return nil, fmt.Errorf("invalid masonry configuration: %w", err)
	}

	if props.ClassName == "" {
		props.ClassName = DefaultClassName
	}

	if props.ColumnClassName == "" {
		props.ColumnClassName = DefaultColumnClassName
	}

	return &MasonryGrid{props: props}, nil
}

// MustMasonryGrid is like NewMasonryGrid but panics on error.
func MustMasonryGrid(props MasonryProps) *MasonryGrid {
	grid, err := NewMasonryGrid(props)
	if err != nil {
		panic(err)
	}

	return grid
}

// Props returns the effective configuration, with defaults applied.
func (g *MasonryGrid) Props() MasonryProps {
	return g.props
}

// Columns returns the column count for the viewport width carried by ctx.
func (g *MasonryGrid) Columns(ctx context.Context) int {
	return g.props.BreakpointCols.Columns(masonry.WidthFromContext(ctx))
}

// Masonry renders items using the viewport width found in the render context.
func (g *MasonryGrid) Masonry(items ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return g.render(ctx, w, g.Columns(ctx), items)
	})
}

// MasonryAt renders items for an explicit viewport width, ignoring the context.
func (g *MasonryGrid) MasonryAt(width int, items ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return g.render(ctx, w, g.props.BreakpointCols.Columns(width), items)
	})
}

func (g *MasonryGrid) render(ctx context.Context, w io.Writer, columns int, items []templ.Component) error {
	buckets, err := masonry.Distribute(items, columns)
	if err != nil {
		return err
	}

	columnWidth := strconv.FormatFloat(100/float64(columns), 'f', -1, 64) + "%"

	if _, err := io.WriteString(w, `<div class="`+templ.EscapeString(g.props.ClassName)+`">`); err != nil {
		return err
	}

	for _, bucket := range buckets {
		// Empty columns are still written so the markup shape only depends on the column count.
		if _, err := io.WriteString(w, `<div class="`+templ.EscapeString(g.props.ColumnClassName)+
			`" style="width: `+columnWidth+`">`); err != nil {
			return err
		}

		for _, item := range bucket {
			if item == nil {
				continue
			}

			if err := item.Render(ctx, w); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, `</div>`)

	return err
}
