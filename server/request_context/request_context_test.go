// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package request_context

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"codeberg.org/pixivfe/masonry/core/masonry"
)

func TestViewportWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		headers map[string]string
		want    int
	}{
		{name: "nothing", url: "/", want: masonry.UnknownWidth},
		{name: "client hint", url: "/", headers: map[string]string{HeaderViewportWidth: "650"}, want: 650},
		{name: "fractional hint", url: "/", headers: map[string]string{HeaderViewportWidth: "412.5"}, want: 412},
		{name: "legacy hint", url: "/", headers: map[string]string{HeaderLegacyViewportWidth: "1024"}, want: 1024},
		{
			name:    "standard hint wins over legacy",
			url:     "/",
			headers: map[string]string{HeaderViewportWidth: "800", HeaderLegacyViewportWidth: "1024"},
			want:    800,
		},
		{name: "query wins", url: "/?width=320", headers: map[string]string{HeaderViewportWidth: "800"}, want: 320},
		{name: "bad query falls through", url: "/?width=wide", headers: map[string]string{HeaderViewportWidth: "800"}, want: 800},
		{name: "non-positive ignored", url: "/?width=0", want: masonry.UnknownWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest("GET", tt.url, nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, ViewportWidth(r))
		})
	}
}

func TestWithRequestContext(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/?width=700", nil)
	ctx := WithRequestContext(r.Context(), r)

	rc := FromContext(ctx)
	assert.Equal(t, 700, rc.ViewportWidth)
	assert.Equal(t, 200, rc.StatusCode)
	assert.NotEmpty(t, rc.RequestID)
	assert.Equal(t, 700, masonry.WidthFromContext(ctx))
}

func TestFromContextWithoutValue(t *testing.T) {
	t.Parallel()

	rc := FromContext(context.Background())
	assert.NotNil(t, rc)
	assert.Empty(t, rc.RequestID)
}

func TestNewRequestID(t *testing.T) {
	t.Parallel()

	now := time.Now()

	id := newRequestID(now)
	assert.True(t, strings.HasPrefix(id, strings.ReplaceAll(now.Format("15:04:05"), ":", "")))
	assert.Len(t, id, 10)
}
