/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/statio-project/statio/pkg/server"
	"github.com/statio-project/statio/pkg/version"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the snapshot HTTP server",
		Description: `Run a stateless HTTP server exposing host snapshots.

Endpoints:
  GET /v1/snapshot  current snapshot as JSON
  GET /v1/report    current snapshot as the text report
  GET /health       liveness probe
  GET /ready        readiness probe
  GET /metrics      Prometheus metrics

The server shuts down gracefully on SIGINT/SIGTERM.

# Examples

Serve on the default port 8080:
  statio serve

Serve on a custom port with a tighter rate limit:
  statio serve --port 9090 --rate-limit 10`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "listen port",
				Sources: cli.EnvVars("PORT"),
				Value:   8080,
			},
			&cli.FloatFlag{
				Name:  "rate-limit",
				Usage: "API requests per second",
				Value: 100,
			},
			&cli.IntFlag{
				Name:  "rate-limit-burst",
				Usage: "API request burst size",
				Value: 200,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := server.DefaultConfig()
			cfg.Version = version.Version
			cfg.Port = int(cmd.Int("port"))
			cfg.RateLimit = rate.Limit(cmd.Float("rate-limit"))
			cfg.RateLimitBurst = int(cmd.Int("rate-limit-burst"))

			return server.Run(ctx, cfg)
		},
	}
}
