// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package audit

import (
	"context"
	"fmt"
	"runtime/trace"
	"strconv"
	"time"

	servertiming "github.com/mitchellh/go-server-timing"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Span represents an HTTP request in flight.
type Span struct {
	// only these fields are set automatically
	task     *trace.Task
	start    time.Time
	duration time.Duration
	metric   *servertiming.Metric

	RequestID  string
	Method     string
	URL        string
	StatusCode int
	Error      error
	BodyLen    int

	// Columns is the resolved grid column count, 0 if the route rendered no grid.
	Columns int
	// Width is the viewport width the grid was resolved for, 0 if unknown.
	Width int
}

// ServerTimingName names the Server-Timing metric for this span.
func (span *Span) ServerTimingName() string {
	return "render"
}

// Begin starts timing the span and registers a Server-Timing metric when the
// request carries a servertiming header collector.
func (span *Span) Begin(ctx context.Context) context.Context {
	span.start = time.Now()

	ctx, span.task = trace.NewTask(ctx, "http.render")
	if timing := servertiming.FromContext(ctx); timing != nil {
		span.metric = timing.NewMetric(span.ServerTimingName())
		span.metric.Desc = span.Method + " " + span.URL
		span.metric.Extra = map[string]string{
			"start": strconv.FormatFloat(float64(span.start.UnixNano())/float64(time.Millisecond), 'f', -1, 64),
		}
	}

	return ctx
}

// End stops timing. Calling it more than once has no effect.
func (span *Span) End() {
	if span.task == nil {
		return
	}

	span.duration = time.Since(span.start)
	span.task.End()

	if span.metric != nil {
		span.metric.Duration = span.duration
	}

	span.task = nil
}

// Duration returns the time between Begin and End.
func (span *Span) Duration() time.Duration {
	return span.duration
}

// Log writes the span as a debug event, or as a warning for server errors.
func (span *Span) Log() {
	event := log.Debug()
	if span.StatusCode >= 500 {
		event = log.Warn()
	}

	span.fill(event).Send()
}

func (span *Span) fill(event *zerolog.Event) *zerolog.Event {
	event.Str("sys", "http").
		Str("method", span.Method).
		Str("url", span.URL).
		Int("status_code", span.StatusCode).
		Str("len", humanizeSize(span.BodyLen)).
		Dur("dur", span.duration).
		Str("request_id", span.RequestID)

	if span.Columns > 0 {
		event.Int("columns", span.Columns)
	}

	if span.Width > 0 {
		event.Int("width", span.Width)
	}

	if span.Error != nil {
		event.Err(span.Error)
	}

	return event
}

const (
	bytesInKB = 1024
	bytesInMB = bytesInKB * bytesInKB
	bytesInGB = bytesInMB * bytesInKB
)

func humanizeSize(x int) string {
	if x < bytesInKB {
		return strconv.Itoa(x)
	}

	if x < bytesInMB {
		return fmt.Sprintf("%.2fK", float64(x)/bytesInKB)
	}

	if x < bytesInGB {
		return fmt.Sprintf("%.2fM", float64(x)/bytesInMB)
	}

	return fmt.Sprintf("%.2fG", float64(x)/bytesInGB)
}
