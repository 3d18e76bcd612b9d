/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/
package server

// contextKey is a private type for context keys to avoid collisions.
type contextKey string

// contextKeyRequestID carries the request ID through the middleware
// chain and into handlers.
const contextKeyRequestID contextKey = "requestID"
