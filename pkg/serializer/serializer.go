/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer writes snapshot data in machine- and
// human-readable formats.
//
// Three formats are supported:
//   - JSON: indented, machine readable
//   - YAML: human readable
//   - Table: flattened key/value rows for quick inspection
//
// Usage:
//
//	w := serializer.NewStdoutWriter(serializer.FormatJSON)
//	defer w.Close()
//	if err := w.Serialize(ctx, snap); err != nil {
//		...
//	}
package serializer

import "context"

// Serializer writes one value in a configured format.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}

// Closer is an optional interface for Serializers holding resources
// such as file handles.
type Closer interface {
	Close() error
}
