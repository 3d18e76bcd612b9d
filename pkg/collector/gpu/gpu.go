/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package gpu probes for display adapter presence through the DRM
// card entries under /sys/class/drm. It is a presence check only; no
// driver is queried.
package gpu

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/statio-project/statio/pkg/collector/file"
	"github.com/statio-project/statio/pkg/snapshot"
)

var sysClassDrm = "/sys/class/drm"

// adapterSlots is the number of DRM card slots probed.
const adapterSlots = 8

// fallbackAdapter is the sentinel emitted when no slot is readable.
// Callers rely on the GPU sequence never being empty, so the sentinel
// replaces the empty list rather than augmenting it.
const fallbackAdapter = "No GPU details (platform-specific collector needed)"

// Collector probes adapter slots for a readable vendor descriptor.
type Collector struct {
	// SysClassDrmPath overrides the DRM class root. Empty means
	// /sys/class/drm.
	SysClassDrmPath string
}

// Collect returns one entry per readable adapter slot, in slot order,
// or the single not-detected sentinel when none is readable.
func (c *Collector) Collect(ctx context.Context) []snapshot.GPUInfo {
	gpus := []snapshot.GPUInfo{}
	if ctx.Err() != nil {
		return append(gpus, snapshot.GPUInfo{Adapter: fallbackAdapter})
	}

	root := c.SysClassDrmPath
	if root == "" {
		root = sysClassDrm
	}

	for i := 0; i < adapterSlots; i++ {
		card := fmt.Sprintf("card%d", i)
		vendor := file.FirstLine(filepath.Join(root, card, "device", "vendor"))
		if vendor == "" {
			continue
		}
		gpus = append(gpus, snapshot.GPUInfo{
			Adapter:  fmt.Sprintf("%s vendor=%s", card, vendor),
			Detected: true,
		})
	}

	if len(gpus) == 0 {
		gpus = append(gpus, snapshot.GPUInfo{Adapter: fallbackAdapter})
	}

	return gpus
}
