/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package net collects interface facts: IPv4 assignment from the OS
// interface-address list, plus MAC address and rx/tx byte counters
// from the per-interface /sys/class/net attribute files.
package net

import (
	"context"
	"log/slog"
	stdnet "net"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/statio-project/statio/pkg/collector/file"
	"github.com/statio-project/statio/pkg/snapshot"
)

var sysClassNet = "/sys/class/net"

// IfaceAddrs is one interface with its assigned addresses, in the
// order the OS reports them.
type IfaceAddrs struct {
	Name  string
	Addrs []stdnet.IP
}

// Collector reads network interface facts.
type Collector struct {
	// Interfaces overrides the OS interface-address enumeration.
	// Nil means the net package's interface list.
	Interfaces func() ([]IfaceAddrs, error)

	// SysClassNetPath overrides the per-interface attribute root.
	// Empty means /sys/class/net.
	SysClassNetPath string
}

// listInterfaces is the production enumeration over net.Interfaces.
// An interface whose address query fails still appears with no
// addresses.
func listInterfaces() ([]IfaceAddrs, error) {
	ifaces, err := stdnet.Interfaces()
	if err != nil {
		return nil, err
	}

	result := make([]IfaceAddrs, 0, len(ifaces))
	for _, iface := range ifaces {
		entry := IfaceAddrs{Name: iface.Name}
		addrs, err := iface.Addrs()
		if err != nil {
			slog.Debug("interface address query failed", "interface", iface.Name, "error", err)
			result = append(result, entry)
			continue
		}
		for _, addr := range addrs {
			if ipNet, ok := addr.(*stdnet.IPNet); ok {
				entry.Addrs = append(entry.Addrs, ipNet.IP)
			}
		}
		result = append(result, entry)
	}
	return result, nil
}

// Collect returns one entry per distinct interface name, sorted by
// name. The last IPv4 address reported for an interface wins; an
// interface without IPv4 still appears with an empty field. MAC and
// counters degrade to empty/zero when their attribute files are
// unreadable.
func (c *Collector) Collect(ctx context.Context) []snapshot.NetworkInfo {
	list := []snapshot.NetworkInfo{}
	if ctx.Err() != nil {
		return list
	}

	interfaces := c.Interfaces
	if interfaces == nil {
		interfaces = listInterfaces
	}

	ifaces, err := interfaces()
	if err != nil {
		slog.Debug("interface enumeration failed", "error", err)
		return list
	}

	byName := make(map[string]*snapshot.NetworkInfo)
	for _, iface := range ifaces {
		entry, ok := byName[iface.Name]
		if !ok {
			entry = &snapshot.NetworkInfo{Name: iface.Name}
			byName[iface.Name] = entry
		}
		for _, ip := range iface.Addrs {
			if v4 := ip.To4(); v4 != nil {
				entry.IPv4 = v4.String()
			}
		}
	}

	root := c.SysClassNetPath
	if root == "" {
		root = sysClassNet
	}

	for name, entry := range byName {
		entry.MAC = file.FirstLine(filepath.Join(root, name, "address"))
		entry.RxBytes = readCounter(filepath.Join(root, name, "statistics", "rx_bytes"))
		entry.TxBytes = readCounter(filepath.Join(root, name, "statistics", "tx_bytes"))
		list = append(list, *entry)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})

	return list
}

// readCounter parses a single-line numeric attribute file, treating
// unreadable or unparsable content as zero.
func readCounter(path string) uint64 {
	raw := file.FirstLine(path)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return value
}
