package shapes

// Rectangle is an axis-aligned rectangle described by its center and extent.
//
// A default-constructed Rectangle has zero width and height. Any extent is
// accepted, including zero and negative values.
type Rectangle struct {
	At     Point
	Width  float64
	Height float64
}

// NewRectangle returns a zero-sized rectangle at the origin.
func NewRectangle() *Rectangle {
	return &Rectangle{}
}

// NewRectangleAt returns a rectangle centered at (x, y) with the given extent.
func NewRectangleAt(x, y, width, height float64) *Rectangle {
	return &Rectangle{At: Pt(x, y), Width: width, Height: height}
}

// Min returns the top-left corner.
func (r *Rectangle) Min() Point {
	return r.At.Sub(Pt(r.Width/2, r.Height/2))
}

// Max returns the bottom-right corner.
func (r *Rectangle) Max() Point {
	return r.At.Add(Pt(r.Width/2, r.Height/2))
}

// Draw implements Shape.
func (r *Rectangle) Draw(d Drawer) { d.DrawRectangle(r.Min(), r.Max()) }

// Center implements Shape.
func (r *Rectangle) Center() Point { return r.At }

// Kind implements Shape.
func (r *Rectangle) Kind() Kind { return KindRectangle }
