package main

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gogpu/gg/recording"
	_ "github.com/gogpu/gg/recording/backends/raster"
	"github.com/gogpu/layout"
	"github.com/gogpu/layout/scene"
	"github.com/spf13/cobra"
)

const (
	defaultWidth  = 400
	defaultHeight = 300

	// backendPNG renders straight to a gg raster context instead of going
	// through a recording.
	backendPNG = "png"
)

type renderOpts struct {
	output     string
	width      int
	height     int
	backend    string
	background string
}

func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <scene>",
		Short: "Render a scene file",
		Long: `Render lays out the scene at the canvas size and draws it.

The canvas size and background default to the values in the scene file, then
to 400×300 on a transparent background. With --backend png the scene is drawn
on a gg raster context; any other name selects a registered recording backend.`,
		Example: `  layoutrender render card.toml
  layoutrender render card.yaml -o card.png --width 800 --height 600 --background white`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: scene name with .png)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "canvas width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "canvas height in pixels")
	cmd.Flags().StringVar(&opts.backend, "backend", backendPNG, "output backend: png or a recording backend name")
	cmd.Flags().StringVar(&opts.background, "background", "", "background color name or #hex")
	return cmd
}

func runRender(cmd *cobra.Command, path string, opts renderOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	doc, root, err := loadScene(path)
	if err != nil {
		return err
	}
	w, h := canvasSize(doc, opts.width, opts.height)

	var renderOptions []layout.RenderOption
	if bg := cmp.Or(opts.background, doc.Background); bg != "" {
		c, err := scene.ParseColor(bg)
		if err != nil {
			return fmt.Errorf("background: %w", err)
		}
		renderOptions = append(renderOptions, layout.WithBackground(c))
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	}
	logger.Debug("rendering", "scene", path, "backend", opts.backend, "width", w, "height", h)

	if err := renderTo(root, w, h, opts.backend, output, renderOptions); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s (%dx%d)", output, w, h))
	return nil
}

func renderTo(root layout.View, w, h int, backend, output string, opts []layout.RenderOption) error {
	if backend == backendPNG {
		dc := layout.NewImage(root, w, h, opts...)
		defer dc.Close()
		if err := dc.SavePNG(output); err != nil {
			return fmt.Errorf("save %s: %w", output, err)
		}
		return nil
	}

	if !recording.IsRegistered(backend) {
		return fmt.Errorf("unknown backend %q (available: %s)", backend, strings.Join(availableBackends(), ", "))
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := layout.Export(root, w, h, backend, f, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func loadScene(path string) (*scene.Document, layout.View, error) {
	doc, err := scene.Load(path)
	if err != nil {
		return nil, nil, err
	}
	root, err := doc.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, root, nil
}

// canvasSize prefers explicit flags, then the document, then the defaults.
func canvasSize(doc *scene.Document, width, height int) (int, int) {
	w := firstPositive(width, doc.Width, defaultWidth)
	h := firstPositive(height, doc.Height, defaultHeight)
	return w, h
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func availableBackends() []string {
	names := append([]string{backendPNG}, recording.Backends()...)
	slices.Sort(names)
	return slices.Compact(names)
}

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List output backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range availableBackends() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
