package shapes

// DefaultRadius is the radius of a default-constructed Circle.
const DefaultRadius = 1.0

// Circle is a circle with a center and a radius.
// Any radius is accepted, including zero and negative values.
type Circle struct {
	At     Point
	Radius float64
}

// NewCircle returns a circle at the origin with DefaultRadius.
func NewCircle() *Circle {
	return &Circle{Radius: DefaultRadius}
}

// NewCircleAt returns a circle centered at (x, y) with radius r.
func NewCircleAt(x, y, r float64) *Circle {
	return &Circle{At: Pt(x, y), Radius: r}
}

// Draw implements Shape.
func (c *Circle) Draw(d Drawer) { d.DrawCircle(c.At, c.Radius) }

// Center implements Shape.
func (c *Circle) Center() Point { return c.At }

// Kind implements Shape.
func (c *Circle) Kind() Kind { return KindCircle }
