package arena

import "fmt"

// Error type used by the package to declare error constants.
type Error string

// Error implements the error interface.
func (e Error) Error() string {
	return string(e)
}

const (
	// ErrInvalidHandle is returned for the zero Handle or an index outside the arena.
	ErrInvalidHandle = Error("arena: invalid handle")

	// ErrForeignHandle is returned when a handle minted by another arena is used.
	ErrForeignHandle = Error("arena: handle isn't part of this arena")

	// ErrUseAfterRelease is returned when a released value is accessed.
	ErrUseAfterRelease = Error("arena: use after release")

	// ErrDoubleRelease is returned when a value is released twice.
	ErrDoubleRelease = Error("arena: double release")

	// ErrClosed is returned by every operation on a closed arena.
	ErrClosed = Error("arena: closed")
)

// LeakError reports values that were still live when the arena was closed.
type LeakError struct {
	Arena string
	Live  int
}

func (e *LeakError) Error() string {
	return fmt.Sprintf("arena %q: %d value(s) leaked", e.Arena, e.Live)
}
