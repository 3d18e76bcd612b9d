/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package report renders a snapshot as the flat diagnostic text
// report. The section names, field order, and line formats are a
// stable wire format scraped by scripts; do not change them without a
// coordinated decision.
package report

import (
	"fmt"
	"strings"

	"github.com/statio-project/statio/pkg/snapshot"
)

// notAvailable substitutes for empty string fields.
const notAvailable = "N/A"

// orNA returns the value, or "N/A" when it is empty.
func orNA(value string) string {
	if value == "" {
		return notAvailable
	}
	return value
}

// Render produces the full text report for one snapshot.
func Render(snap *snapshot.Snapshot) string {
	var b strings.Builder

	version := snap.Meta.Version
	if version == "" {
		version = "dev"
	}
	title := fmt.Sprintf("Statio %s - Hardware/OS Diagnostic Report", version)
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")

	b.WriteString("[OS]\n")
	fmt.Fprintf(&b, "Distro: %s\n", orNA(snap.OS.Distro))
	fmt.Fprintf(&b, "Version: %s\n", orNA(snap.OS.Version))
	fmt.Fprintf(&b, "Kernel: %s\n", orNA(snap.OS.Kernel))
	fmt.Fprintf(&b, "Arch: %s\n", orNA(snap.OS.Architecture))
	fmt.Fprintf(&b, "Host: %s\n\n", orNA(snap.OS.Hostname))

	b.WriteString("[CPU]\n")
	fmt.Fprintf(&b, "Model: %s\n", orNA(snap.CPU.Model))
	fmt.Fprintf(&b, "Physical cores: %d\n", snap.CPU.PhysicalCores)
	fmt.Fprintf(&b, "Logical threads: %d\n", snap.CPU.LogicalThreads)
	fmt.Fprintf(&b, "Current MHz: %.2f\n\n", snap.CPU.CurrentMHz)

	b.WriteString("[Memory]\n")
	fmt.Fprintf(&b, "Total RAM: %d MB\n", snap.Memory.TotalMB)
	fmt.Fprintf(&b, "Free RAM: %d MB\n", snap.Memory.FreeMB)
	fmt.Fprintf(&b, "Available RAM*: %d MB\n", snap.Memory.AvailableMB)
	fmt.Fprintf(&b, "Total Swap: %d MB\n", snap.Memory.SwapTotalMB)
	fmt.Fprintf(&b, "Free Swap: %d MB\n\n", snap.Memory.SwapFreeMB)

	b.WriteString("[Disks]\n")
	for _, d := range snap.Disks {
		fmt.Fprintf(&b, "%s (%s) total=%dGB free=%dGB\n", d.MountPoint, d.Filesystem, d.TotalGB, d.FreeGB)
	}
	if len(snap.Disks) == 0 {
		b.WriteString("No mounted disks detected\n")
	}
	b.WriteString("\n")

	b.WriteString("[Network]\n")
	for _, n := range snap.Network {
		fmt.Fprintf(&b, "%s ipv4=%s mac=%s rx=%d tx=%d\n",
			n.Name, orNA(n.IPv4), orNA(n.MAC), n.RxBytes, n.TxBytes)
	}
	if len(snap.Network) == 0 {
		b.WriteString("No network interfaces detected\n")
	}
	b.WriteString("\n")

	b.WriteString("[GPU]\n")
	for _, g := range snap.GPUs {
		b.WriteString(g.Adapter + "\n")
	}

	b.WriteString("\n*Available RAM approximation uses free + buffer memory.\n")

	return b.String()
}
