package main

import (
	"fmt"
	"io"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/arena"
	"github.com/spf13/cobra"
)

func newPointersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pointers",
		Short: "Walk through scalar allocation, handle arrays and stale handles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return pointersWalkthrough(cmd.OutOrStdout())
		},
	}
}

// pointersWalkthrough allocates scalars from an arena, shows that an array
// of zero handles owns nothing, and lets the arena catch a read through a
// released handle and a second release.
func pointersWalkthrough(w io.Writer) error {
	a := arena.New[int](arena.WithName("scalars"), arena.WithLogger(shapes.Logger()))

	fmt.Fprintln(w, "Allocating a scalar")
	h := a.Alloc(0)
	alias := h
	if err := a.Update(h, func(v *int) { *v = 5150 }); err != nil {
		return err
	}
	v, err := a.Get(alias)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  value through alias %v: %d\n", alias, v)

	fmt.Fprintln(w, "Declaring an array of 10 handles")
	var unowned [10]arena.Handle
	if _, err := a.Get(unowned[0]); err != nil {
		fmt.Fprintf(w, "  element 0 owns nothing: %v\n", err)
	}

	fmt.Fprintln(w, "Allocating an array of 10 scalars")
	owned := make([]arena.Handle, 10)
	for i := range owned {
		owned[i] = a.Alloc(i)
	}
	fmt.Fprintf(w, "  %v\n", a.Stats())

	fmt.Fprintln(w, "Releasing each element of the array")
	for _, oh := range owned {
		if err := a.Release(oh); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "Releasing the scalar")
	if err := a.Release(h); err != nil {
		return err
	}
	a.Alloc(0) // someone else reuses the freed slot

	if _, err := a.Get(alias); err != nil {
		fmt.Fprintf(w, "  reading through the stale alias: %v\n", err)
	}
	if err := a.Release(alias); err != nil {
		fmt.Fprintf(w, "  releasing the stale alias: %v\n", err)
	}

	fmt.Fprintf(w, "Final %v\n", a.Stats())
	fmt.Fprintln(w, "Closing the arena with the reused slot still live")
	if err := a.Close(); err != nil {
		fmt.Fprintf(w, "  %v\n", err)
	}
	return nil
}
