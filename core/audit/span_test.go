// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package audit

import (
	"bytes"
	"context"
	"errors"
	"testing"

	servertiming "github.com/mitchellh/go-server-timing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestHumanizeSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512", humanizeSize(512))
	assert.Equal(t, "1.50K", humanizeSize(1536))
	assert.Equal(t, "2.00M", humanizeSize(2*bytesInMB))
	assert.Equal(t, "1.00G", humanizeSize(bytesInGB))
}

func TestSpanRecordsServerTiming(t *testing.T) {
	t.Parallel()

	var header servertiming.Header
	ctx := servertiming.NewContext(context.Background(), &header)

	span := Span{Method: "GET", URL: "/?items=3"}
	span.Begin(ctx)
	span.End()
	span.End()

	require.Len(t, header.Metrics, 1)
	assert.Equal(t, "render", header.Metrics[0].Name)
	assert.Equal(t, "GET /?items=3", header.Metrics[0].Desc)
	assert.Equal(t, span.Duration(), header.Metrics[0].Duration)
}

func TestSpanFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	span := Span{
		RequestID:  "123456abcd",
		Method:     "GET",
		URL:        "/",
		StatusCode: 500,
		Error:      errors.New("boom"),
		BodyLen:    2048,
		Columns:    3,
		Width:      650,
	}

	span.fill(logger.Info()).Send()

	line := buf.String()
	assert.Equal(t, "http", gjson.Get(line, "sys").String())
	assert.Equal(t, int64(500), gjson.Get(line, "status_code").Int())
	assert.Equal(t, "2.00K", gjson.Get(line, "len").String())
	assert.Equal(t, int64(3), gjson.Get(line, "columns").Int())
	assert.Equal(t, int64(650), gjson.Get(line, "width").Int())
	assert.Equal(t, "boom", gjson.Get(line, "error").String())
}
