/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/
package disk

import "strings"

// pseudoFilesystems are kernel-synthesized mounts with no persistent
// backing; they carry no capacity worth reporting.
var pseudoFilesystems = map[string]struct{}{
	"proc":       {},
	"sysfs":      {},
	"tmpfs":      {},
	"devtmpfs":   {},
	"cgroup":     {},
	"cgroup2":    {},
	"overlay":    {},
	"squashfs":   {},
	"devpts":     {},
	"securityfs": {},
	"pstore":     {},
	"mqueue":     {},
	"tracefs":    {},
	"fusectl":    {},
}

// allowedMountPoints is the fixed allow-list of conventional top-level
// paths. Anything else is excluded regardless of the other filters.
var allowedMountPoints = map[string]struct{}{
	"/":         {},
	"/home":     {},
	"/boot":     {},
	"/boot/efi": {},
	"/var":      {},
	"/opt":      {},
	"/mnt":      {},
	"/media":    {},
	"/srv":      {},
}

// maxMountDepth is the deepest nesting still reported; "/boot/efi" is
// the single exception.
const maxMountDepth = 2

// mountFilter is one exclusion rule. Filters run in a fixed order and
// the first match wins, so each rule stays independently testable and
// the order is an explicit artifact rather than nested control flow.
type mountFilter struct {
	name    string
	exclude func(s *mountScan, e mountEntry) bool
}

// mountFilters, in application order.
var mountFilters = []mountFilter{
	{"pseudo-filesystem", func(_ *mountScan, e mountEntry) bool {
		_, pseudo := pseudoFilesystems[e.fsType]
		return pseudo
	}},
	{"duplicate-mount-point", func(s *mountScan, e mountEntry) bool {
		_, dup := s.seen[e.mountPoint]
		return dup
	}},
	{"non-device-source", func(_ *mountScan, e mountEntry) bool {
		return !strings.HasPrefix(e.source, "/dev/")
	}},
	{"bind-mount", func(_ *mountScan, e mountEntry) bool {
		return strings.Contains(e.options, "bind")
	}},
	{"hidden-path-segment", func(_ *mountScan, e mountEntry) bool {
		return strings.Contains(e.mountPoint, "/.")
	}},
	{"nesting-depth", func(_ *mountScan, e mountEntry) bool {
		return mountDepth(e.mountPoint) > maxMountDepth && e.mountPoint != "/boot/efi"
	}},
	{"not-allow-listed", func(_ *mountScan, e mountEntry) bool {
		_, allowed := allowedMountPoints[e.mountPoint]
		return !allowed
	}},
}

// mountScan carries the per-scan state the duplicate filter needs.
type mountScan struct {
	seen map[string]struct{}
}

func newMountScan() *mountScan {
	return &mountScan{seen: make(map[string]struct{})}
}

// exclude runs the filter pipeline and reports the first matching
// rule, if any.
func (s *mountScan) exclude(e mountEntry) (string, bool) {
	for _, f := range mountFilters {
		if f.exclude(s, e) {
			return f.name, true
		}
	}
	return "", false
}

// markSeen records a successfully captured mount point so later
// duplicates of it are suppressed.
func (s *mountScan) markSeen(mountPoint string) {
	s.seen[mountPoint] = struct{}{}
}

// mountDepth counts path separators; the root mount is depth 0.
func mountDepth(mountPoint string) int {
	if mountPoint == "/" {
		return 0
	}
	return strings.Count(mountPoint, "/")
}
