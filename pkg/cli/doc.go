// Package cli implements the command-line interface for the statio
// diagnostic tool.
//
// # Commands
//
// report - Render the host diagnostic text report:
//
//	statio report [--output FILE]
//
// Collects a fresh host snapshot and renders the flat text report
// covering OS, CPU, memory, disks, network, and GPU facets.
//
// snapshot - Capture a host snapshot:
//
//	statio snapshot [--output FILE] [--format json|yaml|table]
//
// Captures the same snapshot and writes it in a structured format.
// Output defaults to stdout in JSON format.
//
// dash - Run the interactive terminal dashboard:
//
//	statio dash [--interval 5s]
//
// Tabbed live view over periodically refreshed snapshots with light
// and dark themes.
//
// serve - Run the snapshot HTTP server:
//
//	statio serve [--port 8080]
//
// Exposes /v1/snapshot, /v1/report, health probes, and Prometheus
// metrics.
//
// # Global Flags
//
//	--log-level    Logging verbosity: debug, info, warn, error
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	STATIO_LOG_LEVEL  Set logging verbosity (debug, info, warn, error)
//	PORT              Override the serve command listen port
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//
// The CLI uses the urfave/cli/v3 framework and delegates to the
// specialized packages: pkg/snapshotter for collection, pkg/report and
// pkg/serializer for output, pkg/dashboard and pkg/server for the
// interactive surfaces.
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/statio-project/statio/pkg/version.Version=1.0.0'"
package cli
