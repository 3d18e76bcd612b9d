/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/
package os

import (
	"context"
	"errors"
	stdos "os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func fakeUname(release, machine, nodename string) func(*unix.Utsname) error {
	return func(uts *unix.Utsname) error {
		copy(uts.Release[:], release)
		copy(uts.Machine[:], machine)
		copy(uts.Nodename[:], nodename)
		return nil
	}
}

func writeRelease(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "os-release")
	require.NoError(t, stdos.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCollect(t *testing.T) {
	c := &Collector{
		Uname: fakeUname("6.8.0-41-generic", "x86_64", "workstation"),
		ReleasePath: writeRelease(t, `NAME="Ubuntu"
VERSION_ID="24.04"
PRETTY_NAME="Ubuntu 24.04 LTS"
ID=ubuntu
`),
	}

	info := c.Collect(context.Background())

	assert.Equal(t, "6.8.0-41-generic", info.Kernel)
	assert.Equal(t, "x86_64", info.Architecture)
	assert.Equal(t, "workstation", info.Hostname)
	assert.Equal(t, "Ubuntu 24.04 LTS", info.Distro)
	assert.Equal(t, "24.04", info.Version)
}

func TestCollectUnquotedValues(t *testing.T) {
	c := &Collector{
		Uname:       fakeUname("6.1.0", "aarch64", "pi"),
		ReleasePath: writeRelease(t, "PRETTY_NAME=Alpine\nVERSION_ID=3.20\n"),
	}

	info := c.Collect(context.Background())

	assert.Equal(t, "Alpine", info.Distro)
	assert.Equal(t, "3.20", info.Version)
}

func TestCollectUnameFailureKeepsReleaseFields(t *testing.T) {
	c := &Collector{
		Uname:       func(*unix.Utsname) error { return errors.New("boom") },
		ReleasePath: writeRelease(t, "PRETTY_NAME=\"Debian GNU/Linux 12\"\n"),
	}

	info := c.Collect(context.Background())

	assert.Empty(t, info.Kernel)
	assert.Empty(t, info.Hostname)
	assert.Equal(t, "Debian GNU/Linux 12", info.Distro)
}

func TestCollectReleaseMissing(t *testing.T) {
	c := &Collector{
		Uname:       fakeUname("5.15.0", "x86_64", "host"),
		ReleasePath: filepath.Join(t.TempDir(), "absent"),
	}

	info := c.Collect(context.Background())

	assert.Equal(t, "5.15.0", info.Kernel)
	assert.Empty(t, info.Distro)
	assert.Empty(t, info.Version)
}
