/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/
package mem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

const mib = 1024 * 1024

func fakeSysinfo(totalMB, freeMB, bufferMB, swapTotalMB, swapFreeMB uint64) func(*unix.Sysinfo_t) error {
	return func(data *unix.Sysinfo_t) error {
		data.Unit = 1
		data.Totalram = totalMB * mib
		data.Freeram = freeMB * mib
		data.Bufferram = bufferMB * mib
		data.Totalswap = swapTotalMB * mib
		data.Freeswap = swapFreeMB * mib
		return nil
	}
}

func writeMeminfo(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meminfo")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCollectMemAvailableRefinement(t *testing.T) {
	c := &Collector{
		Sysinfo: fakeSysinfo(16000, 1000, 500, 4096, 4096),
		MeminfoPath: writeMeminfo(t, `MemTotal:       16384000 kB
MemFree:         1024000 kB
MemAvailable:    2048000 kB
Buffers:          512000 kB
`),
	}

	info := c.Collect(context.Background())

	assert.Equal(t, uint64(16000), info.TotalMB)
	assert.Equal(t, uint64(1000), info.FreeMB)
	// 2048000 kB / 1024, overriding the free+buffer approximation.
	assert.Equal(t, uint64(2000), info.AvailableMB)
	assert.Equal(t, uint64(4096), info.SwapTotalMB)
	assert.Equal(t, uint64(4096), info.SwapFreeMB)
}

func TestCollectApproximationWhenMeminfoMissing(t *testing.T) {
	c := &Collector{
		Sysinfo:     fakeSysinfo(8000, 1000, 500, 0, 0),
		MeminfoPath: filepath.Join(t.TempDir(), "absent"),
	}

	info := c.Collect(context.Background())

	assert.Equal(t, uint64(1500), info.AvailableMB)
}

func TestCollectMalformedMemAvailableTokenSkipped(t *testing.T) {
	c := &Collector{
		Sysinfo:     fakeSysinfo(8000, 1000, 500, 0, 0),
		MeminfoPath: writeMeminfo(t, "MemAvailable:    garbage 1024000 kB\n"),
	}

	info := c.Collect(context.Background())

	// First parsable token wins: 1024000 kB = 1000 MB.
	assert.Equal(t, uint64(1000), info.AvailableMB)
}

func TestCollectSysinfoFailure(t *testing.T) {
	c := &Collector{
		Sysinfo:     func(*unix.Sysinfo_t) error { return errors.New("boom") },
		MeminfoPath: writeMeminfo(t, "MemAvailable:    2048000 kB\n"),
	}

	info := c.Collect(context.Background())

	assert.Zero(t, info)
}

func TestCollectScalesByMemUnit(t *testing.T) {
	c := &Collector{
		Sysinfo: func(data *unix.Sysinfo_t) error {
			data.Unit = 4096
			data.Totalram = 2 * mib // 2 MiB worth of 4 KiB units = 8192 MB
			return nil
		},
		MeminfoPath: filepath.Join(t.TempDir(), "absent"),
	}

	info := c.Collect(context.Background())

	assert.Equal(t, uint64(8192), info.TotalMB)
}
