/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/statio-project/statio/pkg/dashboard"
	"github.com/statio-project/statio/pkg/snapshotter"
	"github.com/statio-project/statio/pkg/version"
)

func dashCmd() *cli.Command {
	return &cli.Command{
		Name:                  "dash",
		EnableShellCompletion: true,
		Usage:                 "Run the interactive terminal dashboard",
		Description: `Run a tabbed live dashboard over periodically refreshed host
snapshots.

Tabs: Overview, CPU, Memory, Disks, Network, GPU.

Keys:
  tab / shift+tab  switch tabs
  r                refresh now
  t                toggle light/dark theme
  q                quit

# Examples

Run with the default 5s auto-refresh:
  statio dash

Refresh every 10 seconds:
  statio dash --interval 10s`,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   "auto-refresh interval",
				Sources: cli.EnvVars("STATIO_REFRESH_INTERVAL"),
				Value:   dashboard.DefaultRefreshInterval,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s := &snapshotter.Snapshotter{Version: version.Version}
			return dashboard.Run(ctx, s, cmd.Duration("interval"))
		},
	}
}
