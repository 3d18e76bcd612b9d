/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package os collects distro, kernel, and host identity facts from
// the uname(2) call and the os-release metadata file.
package os

import (
	"context"
	"log/slog"
	stdos "os"

	"golang.org/x/sys/unix"

	"github.com/statio-project/statio/pkg/collector/file"
	"github.com/statio-project/statio/pkg/snapshot"
)

var (
	filePathReleasePrimary  = "/etc/os-release"
	filePathReleaseFallback = "/usr/lib/os-release"
)

// Collector reads OS identity facts. Both sources are optional; any
// combination of fields may stay empty.
type Collector struct {
	// Uname overrides the kernel-identity syscall. Nil means
	// unix.Uname.
	Uname func(*unix.Utsname) error

	// ReleasePath overrides the release-metadata location. Empty
	// means /etc/os-release with the freedesktop.org fallback to
	// /usr/lib/os-release.
	ReleasePath string
}

// Collect returns a best-effort OSInfo.
func (c *Collector) Collect(ctx context.Context) snapshot.OSInfo {
	var info snapshot.OSInfo
	if ctx.Err() != nil {
		return info
	}

	uname := c.Uname
	if uname == nil {
		uname = unix.Uname
	}

	var uts unix.Utsname
	if err := uname(&uts); err != nil {
		slog.Debug("uname call failed", "error", err)
	} else {
		info.Kernel = unix.ByteSliceToString(uts.Release[:])
		info.Architecture = unix.ByteSliceToString(uts.Machine[:])
		info.Hostname = unix.ByteSliceToString(uts.Nodename[:])
	}

	path := c.ReleasePath
	if path == "" {
		path = filePathReleasePrimary
		if _, err := stdos.Stat(path); err != nil {
			path = filePathReleaseFallback
		}
	}

	params, err := file.NewParser(file.WithVTrimChars(`"`)).Map(path)
	if err != nil {
		slog.Debug("os release metadata unavailable", "path", path, "error", err)
		return info
	}

	info.Distro = params["PRETTY_NAME"]
	info.Version = params["VERSION_ID"]

	return info
}
