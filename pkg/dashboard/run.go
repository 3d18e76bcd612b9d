/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/
package dashboard

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/statio-project/statio/pkg/snapshotter"
)

// Run starts the dashboard and blocks until the user quits or the
// context is canceled.
func Run(ctx context.Context, s *snapshotter.Snapshotter, interval time.Duration) error {
	program := tea.NewProgram(
		NewModel(s, interval),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
