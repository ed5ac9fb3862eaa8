package shapes

import (
	"errors"
	"fmt"

	"github.com/gogpu/shapes/arena"
)

// RunOption configures Run.
type RunOption func(*runOptions)

type runOptions struct {
	leak   bool
	strict bool
}

// WithLeak makes Run release only the collection storage, without
// destroying the shapes first. The arena then reports them as leaked.
func WithLeak(leak bool) RunOption {
	return func(o *runOptions) {
		o.leak = leak
	}
}

// WithStrictArena makes ownership defects panic instead of returning errors.
func WithStrictArena(strict bool) RunOption {
	return func(o *runOptions) {
		o.strict = strict
	}
}

// Report summarizes one driver run.
type Report struct {
	Drawn    int         // draw calls dispatched through Shape handles
	Orphaned int         // elements left live when the collection storage was released
	Stats    arena.Stats // arena counters after the run
}

// Run owns the given shapes for one draw pass: every shape is stored in an
// arena-backed Collection, drawn once on d in order, then released.
//
// By default each shape is destroyed before the collection storage is
// released. With WithLeak(true) only the storage is released; the returned
// error then wraps an *arena.LeakError naming the orphaned shapes.
func Run(list []Shape, d Drawer, opts ...RunOption) (Report, error) {
	var o runOptions
	for _, opt := range opts {
		opt(&o)
	}

	a := arena.New[Shape](
		arena.WithName("shapes"),
		arena.WithCapacity(len(list)),
		arena.WithStrict(o.strict),
		arena.WithLogger(Logger()),
	)
	c := NewCollection(a, len(list))

	var rep Report
	for i, s := range list {
		if err := c.Put(i, s); err != nil {
			return rep, errors.Join(fmt.Errorf("shapes: run: %w", err), c.Free(), a.Close())
		}
	}

	drawn, err := c.DrawAll(d)
	rep.Drawn = drawn
	if err != nil {
		return rep, errors.Join(fmt.Errorf("shapes: run: %w", err), c.Free(), a.Close())
	}

	if o.leak {
		rep.Orphaned, err = c.Release()
	} else {
		err = c.Free()
	}
	if err != nil {
		return rep, fmt.Errorf("shapes: run: %w", err)
	}

	rep.Stats = a.Stats()
	if err := a.Close(); err != nil {
		return rep, fmt.Errorf("shapes: run: %w", err)
	}
	return rep, nil
}
