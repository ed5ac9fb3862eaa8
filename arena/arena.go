// Package arena provides a generic owning arena with generation-checked
// handles.
//
// Every value stored in an Arena is exclusively owned by its slot. Callers
// hold a Handle, a small value type that is not a Go pointer, and resolve it
// right before use. Releasing a value bumps its slot generation, so a stale
// handle is reported as use after release or double release instead of
// silently reaching reused storage.
//
// The arena counts constructions (Alloc) and destructions (Release). Close
// reports every value that is still live as a *LeakError.
package arena

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Finalizer is implemented by values that need a hook when their slot is
// released. The hook is invoked through the interface, so the most-derived
// implementation of the stored dynamic value always runs.
type Finalizer interface {
	Finalize()
}

// Handle references a value inside one Arena.
//
// Handle is a plain struct passed by value. The zero Handle is never valid.
type Handle struct {
	arenaID    uint32
	index      uint32
	generation uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h == Handle{}
}

// String provides a string snapshot of the handle.
func (h Handle) String() string {
	return fmt.Sprintf("{arena: %v index: %v gen: %v}", h.arenaID, h.index, h.generation)
}

// Stats is a snapshot of arena lifecycle counters.
type Stats struct {
	Constructed int // values stored with Alloc
	Destroyed   int // values released with Release
	Live        int // Constructed - Destroyed
	Capacity    int // slots backing the arena, live or free
	Reused      int // allocations served from a previously released slot
}

// String provides a string snapshot of the Stats state.
func (s Stats) String() string {
	return fmt.Sprintf(
		"{Constructed: %v Destroyed: %v Live: %v Capacity: %v Reused: %v}",
		s.Constructed, s.Destroyed, s.Live, s.Capacity, s.Reused,
	)
}

type slot[T any] struct {
	value      T
	generation uint32
	live       bool
}

var nextArenaID atomic.Uint32

// Arena owns values of type T. It is not safe for concurrent use.
type Arena[T any] struct {
	id     uint32
	name   string
	strict bool
	logger *slog.Logger

	slots  []slot[T]
	free   []uint32
	closed bool

	constructed int
	destroyed   int
	reused      int
}

// New creates an empty arena.
func New[T any](opts ...Option) *Arena[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Arena[T]{
		id:     nextArenaID.Add(1),
		name:   o.name,
		strict: o.strict,
		logger: logger,
		slots:  make([]slot[T], 0, o.capacity),
	}
}

// Name returns the arena name used in logs and leak reports.
func (a *Arena[T]) Name() string {
	return a.name
}

// Strict reports whether misuse panics instead of returning an error.
func (a *Arena[T]) Strict() bool {
	return a.strict
}

// Alloc stores v in the arena and returns its handle.
// Allocating from a closed arena returns the zero Handle.
func (a *Arena[T]) Alloc(v T) Handle {
	if a.closed {
		a.fail(ErrClosed, Handle{})
		return Handle{}
	}

	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
		a.reused++
	} else {
		a.slots = append(a.slots, slot[T]{})
		idx = uint32(len(a.slots) - 1)
	}

	s := &a.slots[idx]
	s.generation++
	s.value = v
	s.live = true
	a.constructed++

	h := Handle{arenaID: a.id, index: idx, generation: s.generation}
	a.logger.Debug("arena: construct", "arena", a.name, "handle", h.String())
	return h
}

// Get returns the value referenced by h.
func (a *Arena[T]) Get(h Handle) (T, error) {
	s, err := a.resolve(h, ErrUseAfterRelease)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.value, nil
}

// Update calls fn with a pointer to the value referenced by h.
// The pointer must not be retained after fn returns.
func (a *Arena[T]) Update(h Handle, fn func(*T)) error {
	s, err := a.resolve(h, ErrUseAfterRelease)
	if err != nil {
		return err
	}
	fn(&s.value)
	return nil
}

// Release destroys the value referenced by h. If the value implements
// Finalizer, Finalize is called before the slot is cleared.
func (a *Arena[T]) Release(h Handle) error {
	s, err := a.resolve(h, ErrDoubleRelease)
	if err != nil {
		return err
	}

	if f, ok := any(s.value).(Finalizer); ok {
		f.Finalize()
	}

	var zero T
	s.value = zero
	s.live = false
	a.free = append(a.free, h.index)
	a.destroyed++

	a.logger.Debug("arena: destroy", "arena", a.name, "handle", h.String())
	return nil
}

// Live reports whether h references a live value of this arena.
func (a *Arena[T]) Live(h Handle) bool {
	if a.closed || h.arenaID != a.id || int(h.index) >= len(a.slots) {
		return false
	}
	s := &a.slots[h.index]
	return s.live && s.generation == h.generation
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.constructed - a.destroyed
}

// Stats returns a snapshot of the lifecycle counters.
func (a *Arena[T]) Stats() Stats {
	return Stats{
		Constructed: a.constructed,
		Destroyed:   a.destroyed,
		Live:        a.constructed - a.destroyed,
		Capacity:    len(a.slots),
		Reused:      a.reused,
	}
}

// Close releases the arena storage. Live values are not finalized: they are
// reported as leaked through a *LeakError. Closing twice returns ErrClosed.
func (a *Arena[T]) Close() error {
	if a.closed {
		return a.fail(ErrClosed, Handle{})
	}
	live := a.Len()
	a.closed = true
	a.slots = nil
	a.free = nil

	if live == 0 {
		a.logger.Debug("arena: closed", "arena", a.name, "stats", a.Stats().String())
		return nil
	}
	leak := &LeakError{Arena: a.name, Live: live}
	a.logger.Warn("arena: closed with live values", "arena", a.name, "live", live)
	if a.strict {
		panic(leak)
	}
	return leak
}

// resolve validates h and returns its slot. stale is the error reported
// when the slot generation no longer matches the handle.
func (a *Arena[T]) resolve(h Handle, stale Error) (*slot[T], error) {
	switch {
	case a.closed:
		return nil, a.fail(ErrClosed, h)
	case h.IsZero():
		return nil, a.fail(ErrInvalidHandle, h)
	case h.arenaID != a.id:
		return nil, a.fail(ErrForeignHandle, h)
	case int(h.index) >= len(a.slots):
		return nil, a.fail(ErrInvalidHandle, h)
	}
	s := &a.slots[h.index]
	if !s.live || s.generation != h.generation {
		return nil, a.fail(stale, h)
	}
	return s, nil
}

func (a *Arena[T]) fail(err Error, h Handle) error {
	a.logger.Warn("arena: misuse", "arena", a.name, "handle", h.String(), "err", err)
	if a.strict {
		panic(fmt.Errorf("%w: %v", err, h))
	}
	return err
}
