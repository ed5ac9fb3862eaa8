package shapes

// Kind identifies a shape variant.
type Kind uint8

const (
	// KindShape is the generic base shape.
	KindShape Kind = iota
	// KindCircle is a circle with a center and a radius.
	KindCircle
	// KindRectangle is an axis-aligned rectangle with a center, width and height.
	KindRectangle
)

// String returns the lowercase variant name.
func (k Kind) String() string {
	switch k {
	case KindShape:
		return "shape"
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rectangle"
	default:
		return "unknown"
	}
}

// Shape is a drawable 2D figure with a center point.
//
// A Shape interface value is the dynamic-dispatch handle: it carries a
// reference to the method table of the concrete variant, so Draw always
// reaches the variant's own implementation.
type Shape interface {
	// Draw describes the shape on d using only the shape's own state.
	Draw(d Drawer)
	// Center returns the shape's center point.
	Center() Point
	// Kind returns the variant tag.
	Kind() Kind
}

// Base is the generic shape: a center point and nothing else.
// Drawing it produces the base output.
type Base struct {
	At Point
}

// NewBase returns a base shape centered at (x, y).
func NewBase(x, y float64) *Base {
	return &Base{At: Pt(x, y)}
}

// Draw implements Shape.
func (b *Base) Draw(d Drawer) { d.DrawShape(b.At) }

// Center implements Shape.
func (b *Base) Center() Point { return b.At }

// Kind implements Shape.
func (b *Base) Kind() Kind { return KindShape }

var (
	_ Shape = (*Base)(nil)
	_ Shape = (*Circle)(nil)
	_ Shape = (*Rectangle)(nil)
)
