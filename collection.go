package shapes

import (
	"errors"
	"fmt"

	"github.com/gogpu/shapes/arena"
)

// State is the lifecycle state of one collection slot.
type State uint8

const (
	// StateUninitialized means no shape has been put in the slot yet.
	StateUninitialized State = iota
	// StateConstructed means the slot owns a shape that was never drawn.
	StateConstructed
	// StateDrawn means the shape was drawn at least once.
	StateDrawn
	// StateDestroyed is terminal: the shape was released.
	StateDestroyed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateConstructed:
		return "constructed"
	case StateDrawn:
		return "drawn"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

var (
	// ErrReleased is returned by every operation on a released collection.
	ErrReleased = errors.New("shapes: collection released")

	// ErrDestroyed is returned when a destroyed slot is drawn or destroyed again.
	ErrDestroyed = errors.New("shapes: shape destroyed")

	// ErrEmptySlot is returned when an uninitialized slot is accessed.
	ErrEmptySlot = errors.New("shapes: empty slot")

	// ErrOccupied is returned when Put targets a slot that already holds a shape.
	ErrOccupied = errors.New("shapes: slot occupied")

	// ErrIndex is returned for an index outside the collection.
	ErrIndex = errors.New("shapes: index out of range")
)

// Collection is a fixed-length ordered sequence of exclusively owned shapes.
//
// The shapes themselves live in an arena; the collection only holds their
// handles. The collection storage and its elements have separate lifetimes:
// Release drops the storage, and any element not destroyed beforehand stays
// live in the arena, where Arena.Close reports it as leaked. Free destroys
// every element and then releases the storage.
type Collection struct {
	arena    *arena.Arena[Shape]
	handles  []arena.Handle
	states   []State
	released bool
}

// NewCollection creates a collection of n empty slots backed by a.
func NewCollection(a *arena.Arena[Shape], n int) *Collection {
	if n < 0 {
		n = 0
	}
	return &Collection{
		arena:   a,
		handles: make([]arena.Handle, n),
		states:  make([]State, n),
	}
}

// Len returns the number of slots.
func (c *Collection) Len() int {
	return len(c.handles)
}

// Put constructs slot i from s. The collection takes ownership of s.
func (c *Collection) Put(i int, s Shape) error {
	if err := c.check(i); err != nil {
		return err
	}
	if c.states[i] != StateUninitialized {
		return fmt.Errorf("put %d: %w", i, ErrOccupied)
	}
	if s == nil {
		return fmt.Errorf("put %d: nil shape", i)
	}
	h := c.arena.Alloc(s)
	if h.IsZero() {
		return fmt.Errorf("put %d: %w", i, arena.ErrClosed)
	}
	c.handles[i] = h
	c.states[i] = StateConstructed
	Logger().Debug("shapes: constructed", "slot", i, "kind", s.Kind().String())
	return nil
}

// State returns the lifecycle state of slot i.
func (c *Collection) State(i int) State {
	if i < 0 || i >= len(c.states) {
		return StateUninitialized
	}
	return c.states[i]
}

// Shape returns the handle target of slot i.
// The returned value must not outlive the slot.
func (c *Collection) Shape(i int) (Shape, error) {
	if err := c.live(i); err != nil {
		return nil, err
	}
	s, err := c.arena.Get(c.handles[i])
	if err != nil {
		return nil, fmt.Errorf("slot %d: %w", i, err)
	}
	return s, nil
}

// Draw draws slot i on d through its Shape handle. A destroyed slot is never
// drawn; on a strict arena the attempt panics.
func (c *Collection) Draw(i int, d Drawer) error {
	s, err := c.Shape(i)
	if err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	s.Draw(d)
	c.states[i] = StateDrawn
	return nil
}

// DrawAll draws every constructed or drawn slot in index order.
// Empty and destroyed slots are skipped.
func (c *Collection) DrawAll(d Drawer) (int, error) {
	if c.released {
		return 0, ErrReleased
	}
	drawn := 0
	for i, st := range c.states {
		if st != StateConstructed && st != StateDrawn {
			continue
		}
		if err := c.Draw(i, d); err != nil {
			return drawn, err
		}
		drawn++
	}
	return drawn, nil
}

// Destroy releases the shape in slot i. Destroying a slot twice returns
// ErrDestroyed, or panics when the arena is strict.
func (c *Collection) Destroy(i int) error {
	if err := c.live(i); err != nil {
		return fmt.Errorf("destroy: %w", err)
	}
	if err := c.arena.Release(c.handles[i]); err != nil {
		return fmt.Errorf("destroy slot %d: %w", i, err)
	}
	c.handles[i] = arena.Handle{}
	c.states[i] = StateDestroyed
	Logger().Debug("shapes: destroyed", "slot", i)
	return nil
}

// DestroyAll releases every live shape. Empty and already destroyed slots
// are skipped.
func (c *Collection) DestroyAll() error {
	if c.released {
		return ErrReleased
	}
	var errs []error
	for i, st := range c.states {
		if st != StateConstructed && st != StateDrawn {
			continue
		}
		if err := c.Destroy(i); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Release drops the collection storage only. Shapes that were not destroyed
// first are not released; they remain live in the arena and the return
// value is the number of such orphaned shapes.
func (c *Collection) Release() (int, error) {
	if c.released {
		return 0, ErrReleased
	}
	orphaned := 0
	for _, st := range c.states {
		if st == StateConstructed || st == StateDrawn {
			orphaned++
		}
	}
	if orphaned > 0 {
		Logger().Warn("shapes: collection released with live elements", "orphaned", orphaned)
	}
	c.released = true
	c.handles = nil
	c.states = nil
	return orphaned, nil
}

// Free destroys every element and then releases the storage.
func (c *Collection) Free() error {
	if err := c.DestroyAll(); err != nil {
		return err
	}
	_, err := c.Release()
	return err
}

func (c *Collection) check(i int) error {
	if c.released {
		return ErrReleased
	}
	if i < 0 || i >= len(c.handles) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndex, i, len(c.handles))
	}
	return nil
}

func (c *Collection) live(i int) error {
	if err := c.check(i); err != nil {
		return err
	}
	switch c.states[i] {
	case StateUninitialized:
		return fmt.Errorf("slot %d: %w", i, ErrEmptySlot)
	case StateDestroyed:
		Logger().Warn("shapes: destroyed slot accessed", "slot", i)
		err := fmt.Errorf("slot %d: %w", i, ErrDestroyed)
		if c.arena.Strict() {
			panic(err)
		}
		return err
	}
	return nil
}
