// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package partials

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

const (
	cardBaseHeight     = 120
	cardHeightStep     = 40
	cardHeightVariants = 5

	// cardHeightStride spreads neighbouring cards over the height variants.
	cardHeightStride = 3
)

// CardHeight returns the pixel height of demo card i. Heights vary so the
// gallery looks like a masonry layout, but stay deterministic per index.
func CardHeight(i int) int {
	return cardBaseHeight + (i*cardHeightStride%cardHeightVariants)*cardHeightStep
}

// Card renders a placeholder item for the demo gallery.
func Card(i int) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		label := strconv.Itoa(i + 1)

		_, err := io.WriteString(w, `<figure class="masonry-card" data-index="`+strconv.Itoa(i)+
			`" style="height: `+strconv.Itoa(CardHeight(i))+`px"><figcaption>#`+label+`</figcaption></figure>`)

		return err
	})
}

// Cards returns n demo cards in order.
func Cards(n int) []templ.Component {
	cards := make([]templ.Component, 0, max(n, 0))
	for i := range max(n, 0) {
		cards = append(cards, Card(i))
	}

	return cards
}
