/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/
package dashboard

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statio-project/statio/pkg/snapshot"
	"github.com/statio-project/statio/pkg/snapshotter"
)

func testModel() Model {
	return NewModel(&snapshotter.Snapshotter{Version: "test"}, 0)
}

func keyPress(k string) tea.KeyMsg {
	if k == "tab" {
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	if k == "shift+tab" {
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func dashboardSnapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Meta: snapshot.Meta{ID: "abc", Version: "test"},
		CPU:  snapshot.CPUInfo{Model: "Test CPU", LogicalThreads: 8, PhysicalCores: 4},
		OS:   snapshot.OSInfo{Hostname: "host01", Distro: "Fixture Linux"},
		Disks: []snapshot.DiskInfo{
			{MountPoint: "/", Filesystem: "ext4", TotalGB: 100, FreeGB: 40},
		},
		Network: []snapshot.NetworkInfo{
			{Name: "eth0", IPv4: "192.168.1.10", RxBytes: 2048, TxBytes: 1024},
		},
		GPUs: []snapshot.GPUInfo{
			{Adapter: "card0 vendor=0x10de", Detected: true},
		},
	}
}

func TestNewModelDefaults(t *testing.T) {
	model := testModel()

	assert.Equal(t, TabOverview, model.activeTab)
	assert.Equal(t, DarkTheme.Name, model.theme.Name)
	assert.Equal(t, DefaultRefreshInterval, model.refreshEvery)
}

func TestNewModelCustomInterval(t *testing.T) {
	model := NewModel(&snapshotter.Snapshotter{}, 10*time.Second)
	assert.Equal(t, 10*time.Second, model.refreshEvery)
}

func TestUpdateTabCycling(t *testing.T) {
	var m tea.Model = testModel()

	m, _ = m.Update(keyPress("tab"))
	assert.Equal(t, TabCPU, m.(Model).activeTab)

	m, _ = m.Update(keyPress("shift+tab"))
	assert.Equal(t, TabOverview, m.(Model).activeTab)

	// Wraps backwards from the first tab to the last.
	m, _ = m.Update(keyPress("shift+tab"))
	assert.Equal(t, TabGPU, m.(Model).activeTab)

	// And forwards from the last back to the first.
	m, _ = m.Update(keyPress("tab"))
	assert.Equal(t, TabOverview, m.(Model).activeTab)
}

func TestUpdateSnapshotMsg(t *testing.T) {
	var m tea.Model = testModel()

	m, cmd := m.Update(snapshotMsg{snap: dashboardSnapshot()})

	assert.Nil(t, cmd)
	model := m.(Model)
	require.NotNil(t, model.snap)
	assert.Equal(t, "Test CPU", model.snap.CPU.Model)
	assert.False(t, model.lastUpdate.IsZero())
}

func TestUpdateRefreshTickReschedules(t *testing.T) {
	var m tea.Model = testModel()

	_, cmd := m.Update(refreshTickMsg{})
	assert.NotNil(t, cmd, "tick must trigger collection and the next tick")
}

func TestUpdateThemeToggle(t *testing.T) {
	var m tea.Model = testModel()

	m, _ = m.Update(keyPress("t"))
	assert.Equal(t, LightTheme.Name, m.(Model).theme.Name)

	m, _ = m.Update(keyPress("t"))
	assert.Equal(t, DarkTheme.Name, m.(Model).theme.Name)
}

func TestUpdateQuit(t *testing.T) {
	var m tea.Model = testModel()

	_, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdateWindowSize(t *testing.T) {
	var m tea.Model = testModel()

	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.(Model).width)
	assert.Equal(t, 40, m.(Model).height)
}

func TestViewBeforeFirstSnapshot(t *testing.T) {
	out := testModel().View()
	assert.Contains(t, out, "Collecting host snapshot")
	assert.Contains(t, out, "Last update: never")
}

func TestViewRendersActiveTab(t *testing.T) {
	var m tea.Model = testModel()
	m, _ = m.Update(snapshotMsg{snap: dashboardSnapshot()})

	out := m.(Model).View()
	assert.Contains(t, out, "Overview")
	assert.Contains(t, out, "host01")
	assert.Contains(t, out, "Fixture Linux")

	m, _ = m.Update(keyPress("tab"))
	out = m.(Model).View()
	assert.Contains(t, out, "Test CPU")
}

func TestViewEmptySequences(t *testing.T) {
	var m tea.Model = testModel()
	snap := dashboardSnapshot()
	snap.Disks = nil
	snap.Network = nil
	m, _ = m.Update(snapshotMsg{snap: snap})

	model := m.(Model)
	model.activeTab = TabDisks
	assert.Contains(t, model.View(), "No mounted disks detected")

	model.activeTab = TabNetwork
	assert.Contains(t, model.View(), "No network interfaces detected")
}
