/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package snapshotter assembles the six facet collectors into one
// immutable host snapshot.
package snapshotter

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/statio-project/statio/pkg/collector"
	"github.com/statio-project/statio/pkg/snapshot"
)

// Snapshotter collects complete host snapshots. Collectors run
// strictly sequentially: each performs a handful of local reads with
// negligible cost, and sequential composition keeps failure isolation
// trivial — a misbehaving source can neither delay nor corrupt
// another facet.
type Snapshotter struct {
	// Factory is the collector factory to use. If nil, the default
	// factory is used.
	Factory collector.Factory

	// Version is stamped into each snapshot's metadata.
	Version string
}

// Collect produces one fully populated snapshot. It never fails:
// every expected failure mode is already absorbed by the per-facet
// best-effort contracts. Cancellation applies to the call as a whole;
// a canceled context yields a snapshot of sentinel values.
func (s *Snapshotter) Collect(ctx context.Context) *snapshot.Snapshot {
	factory := s.Factory
	if factory == nil {
		factory = collector.NewDefaultFactory()
	}

	slog.Debug("starting host snapshot")
	start := time.Now()
	defer func() {
		snapshotCollectionDuration.Observe(time.Since(start).Seconds())
	}()

	snap := &snapshot.Snapshot{
		Meta: snapshot.Meta{
			ID:          uuid.NewString(),
			CollectedAt: start.UTC(),
			Version:     s.Version,
		},
	}

	snap.CPU = timed("cpu", func() snapshot.CPUInfo {
		return factory.CreateCPUCollector().Collect(ctx)
	})
	snap.Memory = timed("memory", func() snapshot.MemoryInfo {
		return factory.CreateMemoryCollector().Collect(ctx)
	})
	snap.OS = timed("os", func() snapshot.OSInfo {
		return factory.CreateOSCollector().Collect(ctx)
	})
	snap.Disks = timed("disk", func() []snapshot.DiskInfo {
		return factory.CreateDiskCollector().Collect(ctx)
	})
	snap.Network = timed("network", func() []snapshot.NetworkInfo {
		return factory.CreateNetworkCollector().Collect(ctx)
	})
	snap.GPUs = timed("gpu", func() []snapshot.GPUInfo {
		return factory.CreateGPUCollector().Collect(ctx)
	})

	snapshotCollectionTotal.Inc()
	snapshotDiskCount.Set(float64(len(snap.Disks)))
	snapshotInterfaceCount.Set(float64(len(snap.Network)))

	slog.Debug("snapshot collection complete",
		slog.String("id", snap.Meta.ID),
		slog.Int("disks", len(snap.Disks)),
		slog.Int("interfaces", len(snap.Network)),
		slog.Int("gpus", len(snap.GPUs)))

	return snap
}

// timed observes one collector's duration under its facet label.
func timed[T any](name string, collect func() T) T {
	start := time.Now()
	defer func() {
		snapshotCollectorDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()
	return collect()
}
