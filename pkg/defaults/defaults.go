/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package defaults centralizes tuning constants shared across statio
// components. Keeping them in one place makes the relationships
// between related values (server timeouts, refresh cadence, rate
// limits) visible and easy to adjust.
package defaults

import "time"

// Server timeouts for the snapshot HTTP server.
const (
	// ServerReadTimeout is the maximum duration for reading a request.
	ServerReadTimeout = 10 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next
	// request on a keep-alive connection.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful
	// shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Server rate limiting.
const (
	// ServerRateLimit is the sustained API request rate per second.
	ServerRateLimit = 100

	// ServerRateLimitBurst is the API request burst size.
	ServerRateLimitBurst = 200
)

// Dashboard cadence.
const (
	// DashboardRefreshInterval is the auto-refresh period for the
	// terminal dashboard.
	DashboardRefreshInterval = 5 * time.Second
)
