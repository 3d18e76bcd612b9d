/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cpu collects processor facts from the hardware-concurrency
// query and the /proc/cpuinfo descriptor table.
package cpu

import (
	"context"
	"log/slog"
	"runtime"
	"strconv"
	"strings"

	"github.com/statio-project/statio/pkg/collector/file"
	"github.com/statio-project/statio/pkg/snapshot"
)

var filePathCPUInfo = "/proc/cpuinfo"

// Collector reads CPU facts. The descriptor table repeats its keys
// once per logical processor; the first occurrence of each key wins,
// which keeps the reported values stable across reordered processor
// blocks.
type Collector struct {
	// InfoPath overrides the descriptor table location. Empty means
	// /proc/cpuinfo.
	InfoPath string

	// NumCPU overrides the hardware-concurrency query. Nil means
	// runtime.NumCPU.
	NumCPU func() int
}

// Collect returns a best-effort CPUInfo. The logical thread count is
// always populated; model, core count, and clock speed are left at
// their zero values when the descriptor table is unavailable or
// malformed.
func (c *Collector) Collect(ctx context.Context) snapshot.CPUInfo {
	var info snapshot.CPUInfo
	if ctx.Err() != nil {
		return info
	}

	numCPU := c.NumCPU
	if numCPU == nil {
		numCPU = runtime.NumCPU
	}
	info.LogicalThreads = numCPU()

	path := c.InfoPath
	if path == "" {
		path = filePathCPUInfo
	}

	lines, err := file.NewParser().Lines(path)
	if err != nil {
		slog.Debug("cpu descriptor table unavailable", "path", path, "error", err)
		return info
	}

	for _, line := range lines {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch {
		case key == "model name" && info.Model == "":
			info.Model = value
		case key == "cpu cores" && info.PhysicalCores == 0:
			if cores, err := strconv.Atoi(value); err == nil && cores >= 0 {
				info.PhysicalCores = cores
			}
		case key == "cpu MHz" && info.CurrentMHz == 0:
			if mhz, err := strconv.ParseFloat(value, 64); err == nil && mhz >= 0 {
				info.CurrentMHz = mhz
			}
		}
	}

	return info
}
