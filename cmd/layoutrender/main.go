// Command layoutrender lays out scene files and renders them to images.
//
// Usage:
//
//	layoutrender render scene.toml -o scene.png --width 400 --height 300
//	layoutrender measure scene.yaml --width 160
//	layoutrender backends
//
// Build with -tags gpu to enable GPU-accelerated rasterization.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/gogpu/layout"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "layoutrender",
		Short:        "Lay out and render scene files",
		Long:         `layoutrender reads a view tree described in TOML, YAML or JSON, runs the layout passes over it and renders the result to PNG or any registered recording backend.`,
		Version:      layout.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			layout.SetLogger(slog.New(logger))
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("layoutrender %s\n", layout.Version))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging, including layout passes")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newMeasureCmd())
	root.AddCommand(newBackendsCmd())
	return root
}
