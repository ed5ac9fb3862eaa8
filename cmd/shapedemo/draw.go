package main

import (
	"errors"
	"fmt"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/arena"
	"github.com/gogpu/shapes/scene"
	"github.com/spf13/cobra"
)

func newDrawCmd() *cobra.Command {
	var (
		scenePath string
		pngPath   string
		leak      bool
	)

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw a shape collection through Shape handles",
		Long: `Allocate every shape of the scene into an owned collection, draw each one
once through its Shape handle, then release them.

With --leak only the collection storage is released; the shapes stay live
and the run fails with a leak report.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := scene.Default()
			if scenePath != "" {
				var err error
				if sc, err = scene.Load(scenePath); err != nil {
					return err
				}
			}
			list, err := sc.Build()
			if err != nil {
				return err
			}

			text := shapes.NewTextDrawer(cmd.OutOrStdout())
			var d shapes.Drawer = text
			var canvas *shapes.Canvas
			if pngPath != "" {
				canvas = shapes.NewCanvas(shapes.WithCanvasSize(sc.Width, sc.Height))
				defer func() { _ = canvas.Close() }()
				d = shapes.MultiDrawer{text, canvas}
			}

			rep, runErr := shapes.Run(list, d, shapes.WithLeak(leak))
			if err := text.Err(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "drawn %d, %v\n", rep.Drawn, rep.Stats)

			if canvas != nil {
				if err := canvas.SavePNG(pngPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%dx%d)\n", pngPath, canvas.Width(), canvas.Height())
			}

			var leakErr *arena.LeakError
			if errors.As(runErr, &leakErr) {
				fmt.Fprintf(cmd.ErrOrStderr(), "leak: %d shape(s) orphaned by releasing only the collection storage\n", rep.Orphaned)
			}
			return runErr
		},
	}

	cmd.Flags().StringVar(&scenePath, "scene", "", "YAML scene file (default: built-in ten-shape scene)")
	cmd.Flags().StringVar(&pngPath, "png", "", "also render the scene to this PNG file")
	cmd.Flags().BoolVar(&leak, "leak", false, "release only the collection storage, leaking every shape")
	return cmd
}
