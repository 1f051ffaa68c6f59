package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/layout"
	"github.com/spf13/cobra"
)

func newMeasureCmd() *cobra.Command {
	var width, height float64

	cmd := &cobra.Command{
		Use:   "measure <scene>",
		Short: "Print the size a scene takes for a proposal",
		Long: `Measure runs the sizing pass over the scene and prints the result.

An axis left out of the proposal is unconstrained. When the root is a
horizontal stack, the width given to each child is printed as well.`,
		Example: `  layoutrender measure card.toml
  layoutrender measure card.toml --width 160 --height 40`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p layout.ProposedSize
			if cmd.Flags().Changed("width") {
				p.Width = layout.Some(width)
			}
			if cmd.Flags().Changed("height") {
				p.Height = layout.Some(height)
			}

			_, root, err := loadScene(args[0])
			if err != nil {
				return err
			}
			printMeasurement(cmd.OutOrStdout(), root, p)
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 0, "proposed width (unconstrained if unset)")
	cmd.Flags().Float64Var(&height, "height", 0, "proposed height (unconstrained if unset)")
	return cmd
}

func printMeasurement(w io.Writer, root layout.View, p layout.ProposedSize) {
	fmt.Fprintf(w, "proposed: %v\n", p)
	h, ok := root.(layout.HStack)
	if !ok {
		size := root.Measure(p)
		fmt.Fprintf(w, "size: %s × %s\n", formatLength(size.Width), formatLength(size.Height))
		return
	}

	l := h.Layout(p)
	fmt.Fprintf(w, "size: %s × %s\n", formatLength(l.Size.Width), formatLength(l.Size.Height))
	widths := make([]string, len(l.Sizes))
	for i, s := range l.Sizes {
		widths[i] = formatLength(s.Width)
	}
	fmt.Fprintf(w, "children: %s\n", strings.Join(widths, ", "))
}

func formatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
