package main

import (
	"fmt"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/layout"
	"github.com/spf13/cobra"
)

func newLayoutCmd() *cobra.Command {
	var pngPath string

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print type sizes, field offsets and padding",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			catalog := layout.Catalog()
			if err := layout.WriteReport(out, catalog); err != nil {
				return err
			}

			dispatch := layout.DispatchLines(layout.DispatchSizes())
			fmt.Fprintln(out)
			for _, line := range dispatch {
				fmt.Fprintln(out, line)
			}

			if pngPath == "" {
				return nil
			}
			c := shapes.NewCanvas()
			defer func() { _ = c.Close() }()
			if err := layout.Render(c, append(layout.Lines(catalog), dispatch...)); err != nil {
				return err
			}
			if err := c.SavePNG(pngPath); err != nil {
				return err
			}
			fmt.Fprintf(out, "saved %s\n", pngPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&pngPath, "png", "", "also render the summary to this PNG file")
	return cmd
}
