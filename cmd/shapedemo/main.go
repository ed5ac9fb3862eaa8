// Command shapedemo runs the shapes demonstrations: polymorphic drawing,
// struct layout and struct literals, random pixel frames, handle ownership,
// and the small numeric helpers.
package main

import (
	"log/slog"
	"os"

	"github.com/gogpu/shapes"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "shapedemo",
		Short: "Shape polymorphism, layout and ownership demos",
		Long: `shapedemo draws a collection of shapes through dynamic-dispatch handles,
reports struct sizes and padding, and walks through handle-based ownership
with use-after-release and leak detection.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !verbose {
				shapes.SetLogger(nil)
				return
			}
			shapes.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable lifecycle logging on stderr")

	root.AddCommand(newDrawCmd())
	root.AddCommand(newLayoutCmd())
	root.AddCommand(newStructsCmd())
	root.AddCommand(newPixelsCmd())
	root.AddCommand(newPointersCmd())
	root.AddCommand(newFibCmd())
	root.AddCommand(newMinMaxCmd())
	return root
}
