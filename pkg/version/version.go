/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package version exposes build-time identity for the statio binary.
package version

import "fmt"

const versionDefault = "dev"

var (
	// overridden during build with ldflags
	Version = versionDefault
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the full build identity in a single line suitable
// for --version output and log attributes.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
