/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package collector provides the per-facet collectors that produce a
// host inventory snapshot, and the factory that wires them to their
// OS sources.
//
// # Contracts
//
// Each facet (cpu, mem, os, disk, net, gpu) lives in its own
// subpackage and exposes a Collector whose Collect method returns a
// value from the snapshot package, never an error. The best-effort
// policy is uniform across facets:
//
//   - Source unavailable: fields stay at zero/empty sentinels.
//   - Malformed value: the token is skipped at the parse site.
//   - Partial enumeration failure: the single entry is dropped and
//     enumeration continues.
//
// Only truly exceptional conditions (runtime failures) can escape a
// collection, and those are handled once at the process boundary.
//
// # Factory
//
// The Factory interface abstracts collector creation so callers and
// tests can substitute sources:
//
//	factory := collector.NewDefaultFactory(
//		collector.WithProcRoot("/host/proc"),
//		collector.WithSysRoot("/host/sys"),
//	)
//
// Collectors are independent and order-insensitive; the snapshotter
// package composes them sequentially into one Snapshot.
package collector
