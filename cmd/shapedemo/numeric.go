package main

import (
	"fmt"

	"github.com/gogpu/shapes/numeric"
	"github.com/spf13/cobra"
)

// maxFib bounds the naive recursion to keep the command responsive.
const maxFib = 40

func newFibCmd() *cobra.Command {
	var n uint

	cmd := &cobra.Command{
		Use:   "fib",
		Short: "Print the first n Fibonacci numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n > maxFib {
				return fmt.Errorf("fib: n must be at most %d, got %d", maxFib, n)
			}
			for i := uint(0); i < n; i++ {
				fmt.Fprintf(cmd.OutOrStdout(), "The Fibonacci series of %d is %d\n", i, numeric.Fibonacci(i))
			}
			return nil
		},
	}
	cmd.Flags().UintVarP(&n, "count", "n", 10, "how many numbers to print")
	return cmd
}

func newMinMaxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "minmax",
		Short: "Apply the generic Min and Max to several ordered types",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Min(8, 10): %d\n", numeric.Min(10, 8))
			fmt.Fprintf(out, "Min(8.0, 10.0): %g\n", numeric.Min(10.0, 8.0))
			fmt.Fprintf(out, "Min(float32(8), float32(10)): %g\n", numeric.Min(float32(10), float32(8)))
			fmt.Fprintf(out, "Min('A', 'a'): %c\n", numeric.Min('A', 'a'))
			fmt.Fprintf(out, "Max(8, 10): %d\n", numeric.Max(10, 8))
			fmt.Fprintf(out, "Max('A', 'a'): %c\n", numeric.Max('A', 'a'))
		},
	}
}
