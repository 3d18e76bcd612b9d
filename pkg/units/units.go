/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package units converts raw byte counts into the fixed units used by
// the snapshot types and the renderers. All integer conversions
// truncate; the snapshot's MB/GB fields are already-converted integers
// and renderers must not re-scale them.
package units

import "fmt"

const (
	kb = 1024
	mb = kb * 1024
	gb = mb * 1024
	tb = gb * 1024
)

// BytesToMB converts bytes to whole megabytes, truncating.
func BytesToMB(bytes uint64) uint64 {
	return bytes / mb
}

// BytesToGB converts bytes to whole gigabytes, truncating.
func BytesToGB(bytes uint64) uint64 {
	return bytes / gb
}

// KBToMB converts a kilobyte count (as reported by /proc/meminfo) to
// whole megabytes, truncating.
func KBToMB(kilobytes uint64) uint64 {
	return kilobytes / 1024
}

// FormatBytes renders a byte count with binary-prefix units
// (1024-based) and two decimal places. Counts below 1 KB are printed
// as an exact integer.
func FormatBytes(bytes uint64) string {
	v := float64(bytes)
	switch {
	case v >= tb:
		return fmt.Sprintf("%.2f TB", v/tb)
	case v >= gb:
		return fmt.Sprintf("%.2f GB", v/gb)
	case v >= mb:
		return fmt.Sprintf("%.2f MB", v/mb)
	case v >= kb:
		return fmt.Sprintf("%.2f KB", v/kb)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
