// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

//go:build integration

/*
To run these tests, specify `-tags=integration` when running `go test`.
*/
package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// Server configuration constants.
	host      = "127.0.0.1:8284"
	authority = "http://127.0.0.1:8284"

	// Polling constants.
	retryCount  = 10
	dialTimeout = 250 * time.Millisecond
)

// httpTestCase defines a test case.
type httpTestCase struct {
	URL                string
	ExpectedStatusCode int
}

// TestMain is used for global setup and teardown.
//
// It starts the server and waits for it to be available before running tests.
func TestMain(m *testing.M) {
	for key, value := range map[string]string{
		"MASONRY_HOST":            "127.0.0.1",
		"MASONRY_PORT":            "8284",
		"MASONRY_BREAKPOINT_COLS": "default:4,1200:3,700:2,500:1",
		"MASONRY_CONFIGFILE":      "./integration-absent.yaml",
	} {
		_ = os.Setenv(key, value)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- run(ctx)
	}()

	// Wait for the server.
	if !waitForServerReady() {
		log.Fatalf("Server did not start in time")
	}

	code := m.Run()

	cancel()

	if err := <-done; err != nil {
		log.Fatalf("Server failed: %v", err)
	}

	os.Exit(code)
}

// waitForServerReady polls the server until it's available or the retries are exhausted.
func waitForServerReady() bool {
	for range retryCount {
		conn, err := net.DialTimeout("tcp", host, dialTimeout)
		if err == nil {
			_ = conn.Close()

			return true // Server is up.
		}

		time.Sleep(dialTimeout)
	}

	return false
}

// TestBasicAllRoutes tests all basic routes of the server.
func TestBasicAllRoutes(t *testing.T) {
	t.Parallel()

	testCases := []httpTestCase{
		{URL: "/"},
		{URL: "/?items=100&width=480"},
		{URL: "/?cols=default:5,900:2"},
		{URL: "/api/layout?items=12"},
		{URL: "/robots.txt"},
		{URL: "/?cols=900:2", ExpectedStatusCode: http.StatusBadRequest},
		{URL: "/api/layout?items=-3", ExpectedStatusCode: http.StatusBadRequest},
		{URL: "/missing", ExpectedStatusCode: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.URL, func(t *testing.T) {
			t.Parallel()

			if tc.ExpectedStatusCode == 0 {
				tc.ExpectedStatusCode = http.StatusOK
			}

			req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, authority+tc.URL, nil)
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)

			defer resp.Body.Close()

			assert.Equal(t, tc.ExpectedStatusCode, resp.StatusCode)
		})
	}
}
