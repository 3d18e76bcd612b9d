/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/
package collector

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statio-project/statio/pkg/collector/cpu"
	"github.com/statio-project/statio/pkg/collector/disk"
	"github.com/statio-project/statio/pkg/collector/gpu"
	"github.com/statio-project/statio/pkg/collector/mem"
	"github.com/statio-project/statio/pkg/collector/net"
	osc "github.com/statio-project/statio/pkg/collector/os"
)

func TestNewDefaultFactoryKeepsBuiltinDefaults(t *testing.T) {
	f := NewDefaultFactory()

	assert.Empty(t, f.CreateCPUCollector().(*cpu.Collector).InfoPath)
	assert.Empty(t, f.CreateMemoryCollector().(*mem.Collector).MeminfoPath)
	assert.Empty(t, f.CreateOSCollector().(*osc.Collector).ReleasePath)
	assert.Empty(t, f.CreateDiskCollector().(*disk.Collector).MountsPath)
	assert.Empty(t, f.CreateNetworkCollector().(*net.Collector).SysClassNetPath)
	assert.Empty(t, f.CreateGPUCollector().(*gpu.Collector).SysClassDrmPath)
}

func TestNewDefaultFactoryReroots(t *testing.T) {
	f := NewDefaultFactory(
		WithProcRoot("/host/proc"),
		WithSysRoot("/host/sys"),
		WithReleasePath("/host/etc/os-release"),
	)

	assert.Equal(t, "/host/proc/cpuinfo", f.CreateCPUCollector().(*cpu.Collector).InfoPath)
	assert.Equal(t, "/host/proc/meminfo", f.CreateMemoryCollector().(*mem.Collector).MeminfoPath)
	assert.Equal(t, "/host/proc/mounts", f.CreateDiskCollector().(*disk.Collector).MountsPath)
	assert.Equal(t, "/host/sys/class/net", f.CreateNetworkCollector().(*net.Collector).SysClassNetPath)
	assert.Equal(t, "/host/sys/class/drm", f.CreateGPUCollector().(*gpu.Collector).SysClassDrmPath)
	assert.Equal(t, "/host/etc/os-release", f.CreateOSCollector().(*osc.Collector).ReleasePath)
}

func TestRerootedCollectorsReadFixtures(t *testing.T) {
	procRoot := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(procRoot, "cpuinfo"),
		[]byte("model name\t: Fixture CPU\n"), 0o644))

	f := NewDefaultFactory(WithProcRoot(procRoot))
	info := f.CreateCPUCollector().Collect(context.Background())

	assert.Equal(t, "Fixture CPU", info.Model)
}
