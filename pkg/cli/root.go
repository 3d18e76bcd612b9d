/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/statio-project/statio/pkg/logging"
	"github.com/statio-project/statio/pkg/version"
)

const name = "statio"

// shared flags used by the output-producing commands
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "output format (json, yaml, table)",
		Value:   "json",
	}
)

// rootCmd assembles the full command tree.
func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Host hardware and OS diagnostic tool",
		Version:               version.String(),
		EnableShellCompletion: true,
		Description: `statio collects a point-in-time inventory of the host: CPU, memory,
OS identity, mounted disks, network interfaces, and GPU presence.
Collection is best-effort; missing sources degrade to sentinel values
instead of failing the run.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("STATIO_LOG_LEVEL", "LOG_LEVEL"),
				Value:   "info",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version.Version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version.Version,
				"commit", version.Commit,
				"date", version.Date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			reportCmd(),
			snapshotCmd(),
			dashCmd(),
			serveCmd(),
		},
	}
}

// Run executes the CLI with the given arguments (including the program
// name at args[0]).
func Run(ctx context.Context, args []string) error {
	return rootCmd().Run(ctx, args)
}

// Execute runs the CLI with os.Args and signal-driven cancellation.
// This is the entry point called by main.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
