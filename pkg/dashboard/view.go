/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/
package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/statio-project/statio/pkg/units"
)

// View implements tea.Model.
func (model Model) View() string {
	var b strings.Builder

	b.WriteString(model.renderTabBar())
	b.WriteString("\n\n")
	b.WriteString(model.renderBody())
	b.WriteString("\n")
	b.WriteString(model.renderStatusBar())

	return b.String()
}

func (model Model) renderTabBar() string {
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Background(model.theme.ActiveTabBackground).
		Foreground(model.theme.ActiveTabForeground)
	inactiveStyle := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(model.theme.FaintText)

	tabs := make([]string, 0, tabCount)
	for i, title := range tabTitles {
		if Tab(i) == model.activeTab {
			tabs = append(tabs, activeStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (model Model) renderBody() string {
	if model.snap == nil {
		return lipgloss.NewStyle().Foreground(model.theme.FaintText).
			Render("Collecting host snapshot...")
	}

	switch model.activeTab {
	case TabCPU:
		return model.renderCPU()
	case TabMemory:
		return model.renderMemory()
	case TabDisks:
		return model.renderDisks()
	case TabNetwork:
		return model.renderNetwork()
	case TabGPU:
		return model.renderGPU()
	default:
		return model.renderOverview()
	}
}

// field renders one labeled value line.
func (model Model) field(label, value string) string {
	labelStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText).Width(18)
	valueStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	return labelStyle.Render(label) + valueStyle.Render(value)
}

func (model Model) section(title string, lines ...string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground)
	body := strings.Join(lines, "\n")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(model.theme.BorderColor).
		Padding(0, 1).
		Render(titleStyle.Render(title) + "\n" + body)
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

func (model Model) renderOverview() string {
	snap := model.snap

	gpuCount := 0
	for _, g := range snap.GPUs {
		if g.Detected {
			gpuCount++
		}
	}

	host := model.section("Host",
		model.field("Hostname", orDash(snap.OS.Hostname)),
		model.field("Distro", orDash(snap.OS.Distro)),
		model.field("Kernel", orDash(snap.OS.Kernel)),
		model.field("Architecture", orDash(snap.OS.Architecture)),
	)
	compute := model.section("Compute",
		model.field("CPU", orDash(snap.CPU.Model)),
		model.field("Threads", fmt.Sprintf("%d", snap.CPU.LogicalThreads)),
		model.field("RAM available", fmt.Sprintf("%d / %d MB", snap.Memory.AvailableMB, snap.Memory.TotalMB)),
	)
	inventory := model.section("Inventory",
		model.field("Disks", fmt.Sprintf("%d", len(snap.Disks))),
		model.field("Interfaces", fmt.Sprintf("%d", len(snap.Network))),
		model.field("GPUs detected", fmt.Sprintf("%d", gpuCount)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, host, compute, inventory)
}

func (model Model) renderCPU() string {
	snap := model.snap
	return model.section("CPU",
		model.field("Model", orDash(snap.CPU.Model)),
		model.field("Physical cores", fmt.Sprintf("%d", snap.CPU.PhysicalCores)),
		model.field("Logical threads", fmt.Sprintf("%d", snap.CPU.LogicalThreads)),
		model.field("Current MHz", fmt.Sprintf("%.2f", snap.CPU.CurrentMHz)),
	)
}

func (model Model) renderMemory() string {
	snap := model.snap
	return model.section("Memory",
		model.field("Total RAM", fmt.Sprintf("%d MB", snap.Memory.TotalMB)),
		model.field("Free RAM", fmt.Sprintf("%d MB", snap.Memory.FreeMB)),
		model.field("Available RAM", fmt.Sprintf("%d MB", snap.Memory.AvailableMB)),
		model.field("Total Swap", fmt.Sprintf("%d MB", snap.Memory.SwapTotalMB)),
		model.field("Free Swap", fmt.Sprintf("%d MB", snap.Memory.SwapFreeMB)),
	)
}

func (model Model) renderDisks() string {
	snap := model.snap
	if len(snap.Disks) == 0 {
		return model.section("Disks", "No mounted disks detected")
	}

	lines := make([]string, 0, len(snap.Disks))
	for _, d := range snap.Disks {
		lines = append(lines, model.field(
			d.MountPoint,
			fmt.Sprintf("%s  total=%dGB  free=%dGB  used=%dGB",
				d.Filesystem, d.TotalGB, d.FreeGB, d.UsedGB()),
		))
	}
	return model.section("Disks", lines...)
}

func (model Model) renderNetwork() string {
	snap := model.snap
	if len(snap.Network) == 0 {
		return model.section("Network", "No network interfaces detected")
	}

	lines := make([]string, 0, len(snap.Network))
	for _, n := range snap.Network {
		lines = append(lines, model.field(
			n.Name,
			fmt.Sprintf("ipv4=%s  mac=%s  rx=%s  tx=%s",
				orDash(n.IPv4), orDash(n.MAC),
				units.FormatBytes(n.RxBytes), units.FormatBytes(n.TxBytes)),
		))
	}
	return model.section("Network", lines...)
}

func (model Model) renderGPU() string {
	snap := model.snap
	goodStyle := lipgloss.NewStyle().Foreground(model.theme.StatusGood)
	warnStyle := lipgloss.NewStyle().Foreground(model.theme.StatusWarn)

	lines := make([]string, 0, len(snap.GPUs))
	for _, g := range snap.GPUs {
		status := goodStyle.Render("Detected")
		if !g.Detected {
			status = warnStyle.Render("Fallback")
		}
		lines = append(lines, model.field(status, g.Adapter))
	}
	return model.section("GPU", lines...)
}

func (model Model) renderStatusBar() string {
	helpStyle := lipgloss.NewStyle().Foreground(model.theme.HelpText)

	lastUpdate := "never"
	if !model.lastUpdate.IsZero() {
		lastUpdate = model.lastUpdate.Format("15:04:05")
	}

	return helpStyle.Render(fmt.Sprintf(
		"Last update: %s | Auto-refresh: %s | Theme: %s | tab switch · r refresh · t theme · q quit",
		lastUpdate, model.refreshEvery, model.theme.Name))
}
