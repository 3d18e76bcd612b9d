/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/statio-project/statio/pkg/serializer"
	"github.com/statio-project/statio/pkg/snapshotter"
	"github.com/statio-project/statio/pkg/version"
)

func snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Capture a host hardware/OS snapshot",
		Description: `Capture a point-in-time snapshot of the host inventory including:
  - CPU model, core and thread counts, current frequency
  - RAM and swap usage
  - OS identity and kernel version
  - Mounted physical filesystems
  - Network interfaces with addresses and traffic counters
  - GPU adapter presence

The snapshot can be output in JSON, YAML, or table format.

# Examples

Print the snapshot as JSON to stdout:
  statio snapshot

Write the snapshot as YAML to a file:
  statio snapshot --format yaml --output host.yaml`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			s := &snapshotter.Snapshotter{Version: version.Version}
			snap := s.Collect(ctx)

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer w.Close()
			return w.Serialize(ctx, snap)
		},
	}
}
