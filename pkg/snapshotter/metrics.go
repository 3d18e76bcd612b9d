/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/
package snapshotter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Snapshot collection metrics
	snapshotCollectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "statio_snapshot_collection_duration_seconds",
			Help:    "Time taken to collect a complete host snapshot",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	snapshotCollectionTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "statio_snapshot_collection_total",
			Help: "Total number of snapshot collections",
		},
	)

	snapshotCollectorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "statio_snapshot_collector_duration_seconds",
			Help:    "Time taken by individual collectors",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"collector"}, // cpu, memory, os, disk, network, gpu
	)

	snapshotDiskCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "statio_snapshot_disks",
			Help: "Number of disks in the last collected snapshot",
		},
	)

	snapshotInterfaceCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "statio_snapshot_network_interfaces",
			Help: "Number of network interfaces in the last collected snapshot",
		},
	)
)
