// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package masonry

import "fmt"

// Distribute assigns items to columns round-robin: item i lands in column
// i mod columns, so column sizes never differ by more than one and each
// column keeps the original relative order.
//
// Item heights play no part. Every one of the returned columns is non-nil,
// including when items is empty.
func Distribute[T any](items []T, columns int) ([][]T, error) {
	if columns < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidColumns, columns)
	}

	buckets := make([][]T, columns)

	for i := range buckets {
		buckets[i] = make([]T, 0, (len(items)+columns-1-i)/columns)
	}

	for i, item := range items {
		buckets[i%columns] = append(buckets[i%columns], item)
	}

	return buckets, nil
}

// Interleave reads columns back in round-robin order, undoing Distribute.
func Interleave[T any](columns [][]T) []T {
	total, rows := 0, 0

	for _, column := range columns {
		total += len(column)
		rows = max(rows, len(column))
	}

	out := make([]T, 0, total)

	for row := range rows {
		for _, column := range columns {
			if row < len(column) {
				out = append(out, column[row])
			}
		}
	}

	return out
}

// Indices returns the column assignment for n items as item indices, which is
// what the JSON layout API and the terminal preview report.
func Indices(n, columns int) ([][]int, error) {
	items := make([]int, max(n, 0))
	for i := range items {
		items[i] = i
	}

	return Distribute(items, columns)
}
