package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/gogpu/gg"
	"github.com/gogpu/shapes"
	"github.com/spf13/cobra"
)

// drawPixelFrame sets n pixels at random positions to random colors.
func drawPixelFrame(c *shapes.Canvas, rng *rand.Rand, n int) {
	for range n {
		x, y := rng.IntN(c.Width()), rng.IntN(c.Height())
		c.SetPixel(x, y, gg.RGB(rng.Float64(), rng.Float64(), rng.Float64()))
	}
}

func newPixelsCmd() *cobra.Command {
	var (
		pngPath string
		count   int
		frames  int
		seed    uint64
	)

	cmd := &cobra.Command{
		Use:   "pixels",
		Short: "Render frames of randomly colored pixels to a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 || frames < 1 {
				return fmt.Errorf("pixels: --count must be >= 0 and --frames >= 1")
			}
			c := shapes.NewCanvas()
			defer func() { _ = c.Close() }()

			if err := c.DrawLabel("Random pixels", float64(c.Width())/2-40, float64(c.Height())/2); err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(seed, seed))
			for range frames {
				drawPixelFrame(c, rng, count)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "set %d pixels over %d frame(s), seed %d\n", count*frames, frames, seed)
			if err := c.SavePNG(pngPath); err != nil {
				return err
			}
			fmt.Fprintf(out, "saved %s\n", pngPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&pngPath, "png", "pixels.png", "PNG file to write")
	cmd.Flags().IntVar(&count, "count", 50, "pixels per frame")
	cmd.Flags().IntVar(&frames, "frames", 1, "number of frames drawn onto the canvas")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	return cmd
}
