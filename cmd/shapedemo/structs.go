package main

import (
	"fmt"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/layout"
	"github.com/spf13/cobra"
)

func newStructsCmd() *cobra.Command {
	var pngPath string

	cmd := &cobra.Command{
		Use:   "structs",
		Short: "Build points from different struct forms and join them into a figure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			c := shapes.NewCanvas()
			defer func() { _ = c.Close() }()

			pts := layout.StructPoints(float32(c.Width()), float32(c.Height()))
			for _, line := range layout.StructLines(pts) {
				fmt.Fprintln(out, line)
			}

			if pngPath == "" {
				return nil
			}
			if err := layout.DrawStructs(c, pts); err != nil {
				return err
			}
			if err := c.SavePNG(pngPath); err != nil {
				return err
			}
			fmt.Fprintf(out, "saved %s\n", pngPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&pngPath, "png", "", "also render the figure to this PNG file")
	return cmd
}
