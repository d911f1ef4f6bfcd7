// Package cli implements the tileadj command-line interface.
//
// The CLI wraps the tileset slicer and the adjacency matcher into two
// commands:
//
//   - build: slice a tileset image into fixed-size tiles, build the
//     directional edge-adjacency graph, and emit it as JSON
//   - info: report image dimensions and the inferred tile size without
//     building the graph
//
// Matching parameters (tile size, color tolerance, match ratio, metric) can
// come from flags or from a TOML config file; explicit flags win. All
// commands support --verbose (-v) for debug-level logging. Loggers are passed
// through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// called by the main package with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the tileadj CLI and returns an error if any command fails.
//
// Logging defaults to info level on stderr; --verbose switches to debug. The
// logger is attached to the command context and retrieved by subcommands via
// loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "tileadj",
		Short:        "tileadj derives tile adjacency from a tileset image",
		Long:         `tileadj slices a tileset image into fixed-size square tiles and derives, for every tile and cardinal direction, which tiles may be placed next to it based on edge color similarity. The resulting adjacency graph is emitted as JSON for downstream auto-tiling and procedural map generators.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("tileadj %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newInfoCmd())

	return root.ExecuteContext(context.Background())
}
