/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/statio-project/statio/pkg/report"
	"github.com/statio-project/statio/pkg/snapshotter"
	"github.com/statio-project/statio/pkg/version"
)

func reportCmd() *cli.Command {
	return &cli.Command{
		Name:                  "report",
		EnableShellCompletion: true,
		Usage:                 "Render the host diagnostic text report",
		Description: `Collect a fresh host snapshot and render it as the flat text report.

The report covers:
  - OS identity (distro, version, kernel, architecture, hostname)
  - CPU model, core and thread counts, current frequency
  - RAM and swap totals with the available-memory approximation
  - Mounted physical filesystems with capacity
  - Network interfaces with addresses and traffic counters
  - GPU adapter presence

# Examples

Print the report to stdout:
  statio report

Write the report to a file:
  statio report --output host-report.txt`,
		Flags: []cli.Flag{
			outputFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s := &snapshotter.Snapshotter{Version: version.Version}
			text := report.Render(s.Collect(ctx))

			path := strings.TrimSpace(cmd.String("output"))
			if path == "" {
				fmt.Print(text)
				return nil
			}

			if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
				return fmt.Errorf("failed to write report to %q: %w", path, err)
			}
			return nil
		},
	}
}
