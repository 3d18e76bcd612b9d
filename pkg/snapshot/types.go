/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package snapshot defines the immutable value types produced by one
// collection cycle. Every entity is constructed fresh inside a single
// Collect call, returned by value, and discarded once the consuming
// renderer is done with it; nothing here persists across cycles.
//
// Absence is represented by sentinel values (empty string, zero), not
// by errors: a field the host could not report is simply left at its
// zero value.
package snapshot

import "time"

// Meta identifies one collection result.
type Meta struct {
	// ID is a fresh UUID minted per collection.
	ID string `json:"id" yaml:"id"`

	// CollectedAt is the UTC instant the collection started.
	CollectedAt time.Time `json:"collectedAt" yaml:"collectedAt"`

	// Version is the statio build that produced the snapshot.
	Version string `json:"version" yaml:"version"`
}

// CPUInfo describes the host processor. Model may be empty and
// PhysicalCores/CurrentMHz may be zero when the descriptor source is
// unavailable; LogicalThreads is always positive.
type CPUInfo struct {
	Model          string  `json:"model" yaml:"model"`
	LogicalThreads int     `json:"logicalThreads" yaml:"logicalThreads"`
	PhysicalCores  int     `json:"physicalCores" yaml:"physicalCores"`
	CurrentMHz     float64 `json:"currentMHz" yaml:"currentMHz"`
}

// MemoryInfo reports RAM and swap in whole megabytes. AvailableMB is
// the kernel-reported MemAvailable value when readable, otherwise the
// free+buffer approximation.
type MemoryInfo struct {
	TotalMB     uint64 `json:"totalMB" yaml:"totalMB"`
	FreeMB      uint64 `json:"freeMB" yaml:"freeMB"`
	AvailableMB uint64 `json:"availableMB" yaml:"availableMB"`
	SwapTotalMB uint64 `json:"swapTotalMB" yaml:"swapTotalMB"`
	SwapFreeMB  uint64 `json:"swapFreeMB" yaml:"swapFreeMB"`
}

// OSInfo holds distro/kernel/host identity. Empty means "not
// determinable".
type OSInfo struct {
	Distro       string `json:"distro" yaml:"distro"`
	Version      string `json:"version" yaml:"version"`
	Kernel       string `json:"kernel" yaml:"kernel"`
	Architecture string `json:"architecture" yaml:"architecture"`
	Hostname     string `json:"hostname" yaml:"hostname"`
}

// DiskInfo reports one mounted filesystem. MountPoint is unique
// within a snapshot.
type DiskInfo struct {
	MountPoint string `json:"mountPoint" yaml:"mountPoint"`
	Filesystem string `json:"filesystem" yaml:"filesystem"`
	TotalGB    uint64 `json:"totalGB" yaml:"totalGB"`
	FreeGB     uint64 `json:"freeGB" yaml:"freeGB"`
}

// UsedGB derives used capacity, floored at zero when free exceeds
// total (the mount table and the statfs call are not read atomically).
func (d DiskInfo) UsedGB() uint64 {
	if d.FreeGB > d.TotalGB {
		return 0
	}
	return d.TotalGB - d.FreeGB
}

// NetworkInfo reports one interface. IPv4 is empty when no IPv4
// address is assigned; Rx/TxBytes are cumulative counters since the
// interface came up.
type NetworkInfo struct {
	Name    string `json:"name" yaml:"name"`
	IPv4    string `json:"ipv4" yaml:"ipv4"`
	MAC     string `json:"mac" yaml:"mac"`
	RxBytes uint64 `json:"rxBytes" yaml:"rxBytes"`
	TxBytes uint64 `json:"txBytes" yaml:"txBytes"`
}

// GPUInfo is a best-effort presence record. Detected is false only on
// the sentinel entry emitted when no adapter slot was readable.
type GPUInfo struct {
	Adapter  string `json:"adapter" yaml:"adapter"`
	Detected bool   `json:"detected" yaml:"detected"`
}

// Snapshot is one complete, self-contained collection result. Disks
// are sorted by mount point, Network by interface name; GPUs keep
// probe order and are never empty.
type Snapshot struct {
	Meta    Meta          `json:"meta" yaml:"meta"`
	CPU     CPUInfo       `json:"cpu" yaml:"cpu"`
	Memory  MemoryInfo    `json:"memory" yaml:"memory"`
	OS      OSInfo        `json:"os" yaml:"os"`
	Disks   []DiskInfo    `json:"disks" yaml:"disks"`
	Network []NetworkInfo `json:"network" yaml:"network"`
	GPUs    []GPUInfo     `json:"gpus" yaml:"gpus"`
}
