/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package server exposes host snapshots over a stateless HTTP API.
//
// Endpoints:
//
//	GET /              service descriptor
//	GET /health        liveness probe
//	GET /ready         readiness probe
//	GET /v1/snapshot   current host snapshot as JSON
//	GET /v1/report     current host snapshot as the text report
//	GET /metrics       Prometheus metrics
//
// The API endpoints run behind a middleware chain providing request ID
// tracking, token-bucket rate limiting, panic recovery, Prometheus
// instrumentation, and request logging.
//
// Basic startup:
//
//	if err := server.Run(ctx, server.DefaultConfig()); err != nil {
//	    ...
//	}
package server
