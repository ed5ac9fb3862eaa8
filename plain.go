package shapes

// PlainShape is the fixed-layout shape family. Its variants embed
// PlainShape by value and shadow Draw, but a *PlainShape handle is a
// concrete pointer: calling Draw through it is resolved at compile time and
// always runs PlainShape.Draw, whatever variant the handle was taken from.
//
// PlainShape carries no method table reference, so its size is exactly the
// size of its Point.
type PlainShape struct {
	At Point
}

// Draw always produces the base output.
func (s *PlainShape) Draw(d Drawer) { d.DrawShape(s.At) }

// PlainCircle is a circle in the fixed-layout family.
type PlainCircle struct {
	PlainShape
	Radius float64
}

// NewPlainCircle returns a fixed-layout circle centered at (x, y).
func NewPlainCircle(x, y, r float64) *PlainCircle {
	return &PlainCircle{PlainShape: PlainShape{At: Pt(x, y)}, Radius: r}
}

// Draw draws the circle when called on the *PlainCircle itself.
func (c *PlainCircle) Draw(d Drawer) { d.DrawCircle(c.At, c.Radius) }

// Base returns the embedded base handle.
func (c *PlainCircle) Base() *PlainShape { return &c.PlainShape }

// PlainRectangle is a rectangle in the fixed-layout family.
type PlainRectangle struct {
	PlainShape
	Width  float64
	Height float64
}

// NewPlainRectangle returns a fixed-layout rectangle centered at (x, y).
func NewPlainRectangle(x, y, width, height float64) *PlainRectangle {
	return &PlainRectangle{PlainShape: PlainShape{At: Pt(x, y)}, Width: width, Height: height}
}

// Draw draws the rectangle when called on the *PlainRectangle itself.
func (r *PlainRectangle) Draw(d Drawer) {
	half := Pt(r.Width/2, r.Height/2)
	d.DrawRectangle(r.At.Sub(half), r.At.Add(half))
}

// Base returns the embedded base handle.
func (r *PlainRectangle) Base() *PlainShape { return &r.PlainShape }
