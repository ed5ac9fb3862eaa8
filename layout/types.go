package layout

// Point2D is a pair of single-precision coordinates.
type Point2D struct {
	X float32
	Y float32
}

// RGB is an opaque color.
type RGB struct {
	R, G, B float32
}

// RGBA is a color with alpha.
type RGBA struct {
	R, G, B, A float32
}

// UV is a texture coordinate.
type UV struct {
	U, V float32
}

// Vertex packs a position, a color and a texture coordinate.
type Vertex struct {
	Position Point2D
	Color    RGB
	TexCoord UV
}

// VisibleVertex puts a bool in front of a Vertex's fields; the compiler pads
// it up to the float32 alignment of Position.
type VisibleVertex struct {
	Visible  bool
	Position Point2D
	Color    RGB
	TexCoord UV
}

// PackedVisibleVertex moves the bool to the end, so the padding becomes
// trailing instead of interior.
type PackedVisibleVertex struct {
	Position Point2D
	Color    RGB
	TexCoord UV
	Visible  bool
}

// Catalog returns the layouts of the demo scalar and struct types.
func Catalog() []TypeLayout {
	return []TypeLayout{
		Of[byte](),
		Of[float32](),
		Of[bool](),
		Of[Point2D](),
		Of[RGB](),
		Of[RGBA](),
		Of[UV](),
		Of[Vertex](),
		Of[VisibleVertex](),
		Of[PackedVisibleVertex](),
	}
}
