/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package mem collects RAM and swap facts from the sysinfo(2) call,
// refined with the kernel's MemAvailable estimate from /proc/meminfo.
package mem

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/statio-project/statio/pkg/collector/file"
	"github.com/statio-project/statio/pkg/snapshot"
	"github.com/statio-project/statio/pkg/units"
)

var filePathMeminfo = "/proc/meminfo"

// Collector reads memory facts. Sysinfo provides totals directly;
// availableMB starts as the free+buffer approximation and is
// overwritten with the kernel's MemAvailable value when that line is
// readable, since the kernel accounts reclaimable caches the
// approximation misses.
type Collector struct {
	// Sysinfo overrides the memory-statistics syscall. Nil means
	// unix.Sysinfo.
	Sysinfo func(*unix.Sysinfo_t) error

	// MeminfoPath overrides the refinement source. Empty means
	// /proc/meminfo.
	MeminfoPath string
}

// Collect returns a best-effort MemoryInfo. If the syscall fails, all
// fields stay zero; if only the refinement source is unavailable, the
// approximation stands.
func (c *Collector) Collect(ctx context.Context) snapshot.MemoryInfo {
	var info snapshot.MemoryInfo
	if ctx.Err() != nil {
		return info
	}

	sysinfo := c.Sysinfo
	if sysinfo == nil {
		sysinfo = unix.Sysinfo
	}

	var data unix.Sysinfo_t
	if err := sysinfo(&data); err != nil {
		slog.Debug("sysinfo call failed", "error", err)
		return info
	}

	unit := uint64(data.Unit)
	info.TotalMB = units.BytesToMB(uint64(data.Totalram) * unit)
	info.FreeMB = units.BytesToMB(uint64(data.Freeram) * unit)
	info.AvailableMB = units.BytesToMB((uint64(data.Freeram) + uint64(data.Bufferram)) * unit)
	info.SwapTotalMB = units.BytesToMB(uint64(data.Totalswap) * unit)
	info.SwapFreeMB = units.BytesToMB(uint64(data.Freeswap) * unit)

	path := c.MeminfoPath
	if path == "" {
		path = filePathMeminfo
	}

	lines, err := file.NewParser().Lines(path)
	if err != nil {
		slog.Debug("meminfo unavailable, keeping free+buffer approximation",
			"path", path, "error", err)
		return info
	}

	for _, line := range lines {
		if !strings.HasPrefix(line, "MemAvailable:") {
			continue
		}
		for _, token := range strings.Fields(strings.TrimPrefix(line, "MemAvailable:")) {
			kb, err := strconv.ParseUint(token, 10, 64)
			if err != nil {
				continue
			}
			info.AvailableMB = units.KBToMB(kb)
			return info
		}
	}

	return info
}
