/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/
package collector

import (
	"context"
	"path/filepath"

	"github.com/statio-project/statio/pkg/collector/cpu"
	"github.com/statio-project/statio/pkg/collector/disk"
	"github.com/statio-project/statio/pkg/collector/gpu"
	"github.com/statio-project/statio/pkg/collector/mem"
	"github.com/statio-project/statio/pkg/collector/net"
	"github.com/statio-project/statio/pkg/collector/os"
	"github.com/statio-project/statio/pkg/snapshot"
)

// Per-facet collector contracts. Every Collect is best-effort and
// error-opaque: it returns a value for all expected failure modes,
// with absence encoded as sentinel fields.
type (
	CPUCollector interface {
		Collect(ctx context.Context) snapshot.CPUInfo
	}
	MemoryCollector interface {
		Collect(ctx context.Context) snapshot.MemoryInfo
	}
	OSCollector interface {
		Collect(ctx context.Context) snapshot.OSInfo
	}
	DiskCollector interface {
		Collect(ctx context.Context) []snapshot.DiskInfo
	}
	NetworkCollector interface {
		Collect(ctx context.Context) []snapshot.NetworkInfo
	}
	GPUCollector interface {
		Collect(ctx context.Context) []snapshot.GPUInfo
	}
)

// Factory abstracts collector creation for dependency injection and
// testing.
type Factory interface {
	CreateCPUCollector() CPUCollector
	CreateMemoryCollector() MemoryCollector
	CreateOSCollector() OSCollector
	CreateDiskCollector() DiskCollector
	CreateNetworkCollector() NetworkCollector
	CreateGPUCollector() GPUCollector
}

// Option configures a DefaultFactory.
type Option func(*DefaultFactory)

// WithProcRoot redirects the /proc-backed sources (cpuinfo, meminfo,
// mounts) to an alternate root. Used by tests and containerized runs
// with a host /proc bind mount.
func WithProcRoot(root string) Option {
	return func(f *DefaultFactory) {
		f.procRoot = root
	}
}

// WithSysRoot redirects the /sys-backed sources (class/net,
// class/drm) to an alternate root.
func WithSysRoot(root string) Option {
	return func(f *DefaultFactory) {
		f.sysRoot = root
	}
}

// WithReleasePath overrides the os-release metadata location.
func WithReleasePath(path string) Option {
	return func(f *DefaultFactory) {
		f.releasePath = path
	}
}

// DefaultFactory creates collectors reading the production OS
// sources, optionally rerooted.
type DefaultFactory struct {
	procRoot    string
	sysRoot     string
	releasePath string
}

// NewDefaultFactory creates a factory with the provided options
// applied.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// proc resolves a path under the configured proc root; empty root
// keeps the collector's builtin default.
func (f *DefaultFactory) proc(name string) string {
	if f.procRoot == "" {
		return ""
	}
	return filepath.Join(f.procRoot, name)
}

func (f *DefaultFactory) sys(name string) string {
	if f.sysRoot == "" {
		return ""
	}
	return filepath.Join(f.sysRoot, name)
}

// CreateCPUCollector creates a CPU collector.
func (f *DefaultFactory) CreateCPUCollector() CPUCollector {
	return &cpu.Collector{InfoPath: f.proc("cpuinfo")}
}

// CreateMemoryCollector creates a memory collector.
func (f *DefaultFactory) CreateMemoryCollector() MemoryCollector {
	return &mem.Collector{MeminfoPath: f.proc("meminfo")}
}

// CreateOSCollector creates an OS identity collector.
func (f *DefaultFactory) CreateOSCollector() OSCollector {
	return &os.Collector{ReleasePath: f.releasePath}
}

// CreateDiskCollector creates a disk collector.
func (f *DefaultFactory) CreateDiskCollector() DiskCollector {
	return &disk.Collector{MountsPath: f.proc("mounts")}
}

// CreateNetworkCollector creates a network collector.
func (f *DefaultFactory) CreateNetworkCollector() NetworkCollector {
	return &net.Collector{SysClassNetPath: f.sys(filepath.Join("class", "net"))}
}

// CreateGPUCollector creates a GPU presence collector.
func (f *DefaultFactory) CreateGPUCollector() GPUCollector {
	return &gpu.Collector{SysClassDrmPath: f.sys(filepath.Join("class", "drm"))}
}
