/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package dashboard implements the interactive terminal dashboard: a
// tabbed live view over periodically refreshed host snapshots.
package dashboard

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/statio-project/statio/pkg/defaults"
	"github.com/statio-project/statio/pkg/snapshot"
	"github.com/statio-project/statio/pkg/snapshotter"
)

// Tab identifies which facet view is active.
type Tab int

const (
	TabOverview Tab = iota
	TabCPU
	TabMemory
	TabDisks
	TabNetwork
	TabGPU

	tabCount
)

// tabTitles maps tabs to their header labels, in display order.
var tabTitles = [tabCount]string{
	"Overview", "CPU", "Memory", "Disks", "Network", "GPU",
}

// DefaultRefreshInterval is the auto-refresh period when none is
// configured.
const DefaultRefreshInterval = defaults.DashboardRefreshInterval

// snapshotMsg delivers a freshly collected snapshot through the
// bubbletea message loop.
type snapshotMsg struct {
	snap *snapshot.Snapshot
}

// refreshTickMsg drives the periodic auto-refresh cycle.
type refreshTickMsg struct{}

// Model is the bubbletea model for the dashboard.
type Model struct {
	snapshotter  *snapshotter.Snapshotter
	refreshEvery time.Duration

	snap       *snapshot.Snapshot
	lastUpdate time.Time

	activeTab Tab
	theme     Theme
	keys      KeyMap

	width  int
	height int
}

// NewModel creates a Model over the given snapshotter. A non-positive
// interval means DefaultRefreshInterval.
func NewModel(s *snapshotter.Snapshotter, interval time.Duration) Model {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return Model{
		snapshotter:  s,
		refreshEvery: interval,
		activeTab:    TabOverview,
		theme:        DarkTheme,
		keys:         DefaultKeyMap,
	}
}

// Init implements tea.Model. Collects the first snapshot immediately
// and starts the auto-refresh timer.
func (model Model) Init() tea.Cmd {
	return tea.Batch(
		model.collectSnapshot(),
		model.scheduleRefresh(),
	)
}

// collectSnapshot returns a tea.Cmd that collects one snapshot off the
// UI loop and delivers it as a snapshotMsg.
func (model Model) collectSnapshot() tea.Cmd {
	s := model.snapshotter
	return func() tea.Msg {
		return snapshotMsg{snap: s.Collect(context.Background())}
	}
}

// scheduleRefresh arms the next auto-refresh tick.
func (model Model) scheduleRefresh() tea.Cmd {
	return tea.Tick(model.refreshEvery, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit
		case key.Matches(message, model.keys.NextTab):
			model.activeTab = (model.activeTab + 1) % tabCount
		case key.Matches(message, model.keys.PrevTab):
			model.activeTab = (model.activeTab + tabCount - 1) % tabCount
		case key.Matches(message, model.keys.Refresh):
			return model, model.collectSnapshot()
		case key.Matches(message, model.keys.ThemeToggle):
			if model.theme.Name == DarkTheme.Name {
				model.theme = LightTheme
			} else {
				model.theme = DarkTheme
			}
		}
		return model, nil

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		return model, nil

	case snapshotMsg:
		model.snap = message.snap
		model.lastUpdate = time.Now()
		return model, nil

	case refreshTickMsg:
		return model, tea.Batch(
			model.collectSnapshot(),
			model.scheduleRefresh(),
		)
	}

	return model, nil
}
