package shapes

import (
	"fmt"
	"io"
)

// Drawer receives the primitives a Shape draws.
// It is passed explicitly into every Draw call; there are no global
// display or font handles.
type Drawer interface {
	// DrawShape draws the generic base shape at center.
	DrawShape(center Point)
	// DrawCircle draws a circle outline.
	DrawCircle(center Point, radius float64)
	// DrawRectangle draws an axis-aligned rectangle outline between two corners.
	DrawRectangle(topLeft, bottomRight Point)
}

// TextDrawer describes every primitive as one line of text.
//
// The first write error is kept and every later primitive is dropped; check
// Err after drawing.
type TextDrawer struct {
	w   io.Writer
	err error
}

// NewTextDrawer returns a Drawer writing to w.
func NewTextDrawer(w io.Writer) *TextDrawer {
	return &TextDrawer{w: w}
}

// DrawShape implements Drawer.
func (t *TextDrawer) DrawShape(center Point) {
	t.printf("Drawing a shape at (%f,%f)\n", center.X, center.Y)
}

// DrawCircle implements Drawer.
func (t *TextDrawer) DrawCircle(center Point, radius float64) {
	t.printf("Drawing a circle at (%f,%f), radius %f\n", center.X, center.Y, radius)
}

// DrawRectangle implements Drawer.
func (t *TextDrawer) DrawRectangle(topLeft, bottomRight Point) {
	t.printf("Drawing a rectangle at (%f, %f, %f, %f)\n", topLeft.X, topLeft.Y, bottomRight.X, bottomRight.Y)
}

// Err returns the first write error, if any.
func (t *TextDrawer) Err() error {
	return t.err
}

func (t *TextDrawer) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	if _, err := fmt.Fprintf(t.w, format, args...); err != nil {
		t.err = fmt.Errorf("shapes: text drawer: %w", err)
	}
}

// MultiDrawer forwards every primitive to each of its drawers in order.
type MultiDrawer []Drawer

// DrawShape implements Drawer.
func (m MultiDrawer) DrawShape(center Point) {
	for _, d := range m {
		d.DrawShape(center)
	}
}

// DrawCircle implements Drawer.
func (m MultiDrawer) DrawCircle(center Point, radius float64) {
	for _, d := range m {
		d.DrawCircle(center, radius)
	}
}

// DrawRectangle implements Drawer.
func (m MultiDrawer) DrawRectangle(topLeft, bottomRight Point) {
	for _, d := range m {
		d.DrawRectangle(topLeft, bottomRight)
	}
}
