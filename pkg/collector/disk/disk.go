/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package disk enumerates mounted filesystems from the mount table,
// filters out the synthetic and duplicate mounts a modern Linux system
// accumulates, and queries capacity for the survivors.
package disk

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/statio-project/statio/pkg/collector/file"
	"github.com/statio-project/statio/pkg/snapshot"
	"github.com/statio-project/statio/pkg/units"
)

var filePathMounts = "/proc/mounts"

// Collector reads disk facts from the mount table and per-mount
// capacity statistics.
type Collector struct {
	// MountsPath overrides the mount table location. Empty means
	// /proc/mounts.
	MountsPath string

	// Statfs overrides the capacity-statistics syscall. Nil means
	// unix.Statfs.
	Statfs func(path string, buf *unix.Statfs_t) error
}

// mountEntry is one whitespace-delimited mount table record.
type mountEntry struct {
	source     string
	mountPoint string
	fsType     string
	options    string
}

// Collect returns the filtered, capacity-annotated mount list sorted
// by mount point. A mount whose capacity query fails is dropped;
// enumeration continues for the rest.
func (c *Collector) Collect(ctx context.Context) []snapshot.DiskInfo {
	disks := []snapshot.DiskInfo{}
	if ctx.Err() != nil {
		return disks
	}

	path := c.MountsPath
	if path == "" {
		path = filePathMounts
	}

	lines, err := file.NewParser(file.WithSkipComments(false)).Lines(path)
	if err != nil {
		slog.Debug("mount table unavailable", "path", path, "error", err)
		return disks
	}

	statfs := c.Statfs
	if statfs == nil {
		statfs = unix.Statfs
	}

	scan := newMountScan()
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}

		entry := mountEntry{
			source:     fields[0],
			mountPoint: fields[1],
			fsType:     fields[2],
			options:    fields[3],
		}

		if reason, excluded := scan.exclude(entry); excluded {
			slog.Debug("mount excluded", "mountPoint", entry.mountPoint, "filter", reason)
			continue
		}

		var stat unix.Statfs_t
		if err := statfs(entry.mountPoint, &stat); err != nil {
			slog.Debug("capacity query failed, dropping mount",
				"mountPoint", entry.mountPoint, "error", err)
			continue
		}

		scan.markSeen(entry.mountPoint)
		disks = append(disks, snapshot.DiskInfo{
			MountPoint: entry.mountPoint,
			Filesystem: entry.fsType,
			TotalGB:    units.BytesToGB(stat.Blocks * uint64(stat.Frsize)),
			FreeGB:     units.BytesToGB(stat.Bavail * uint64(stat.Frsize)),
		})
	}

	sort.Slice(disks, func(i, j int) bool {
		return disks[i].MountPoint < disks[j].MountPoint
	})

	return disks
}
