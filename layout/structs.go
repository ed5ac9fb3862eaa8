package layout

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/shapes"
)

// Label column of the struct figure.
const (
	structLabelX = 500.0
	structLabelY = 20.0
)

// edgeColors colors the figure edges in drawing order; the last edge closes
// the polygon back to the first point.
var edgeColors = []gg.RGBA{
	gg.White,
	gg.RGB(1, 0, 0),
	gg.RGB(0, 1, 0),
	gg.RGB(1, 0, 1),
	gg.RGB(1, 1, 0),
}

// globalPoint is set by StructPoints.
var globalPoint Point2D

// StructPoint is one labelled vertex of the struct figure.
type StructPoint struct {
	Name string
	At   Point2D
}

// StructPoints returns the five figure vertices for a width x height canvas.
// Each vertex is built with a different struct form: a zero value, a keyed
// literal, an anonymous struct, a positional literal and a package variable.
func StructPoints(width, height float32) []StructPoint {
	var origin Point2D
	corner := Point2D{X: width, Y: height}

	anon := struct{ X, Y float32 }{X: 0.75 * width, Y: 0.5 * height}

	globalPoint.X = 0.5 * width
	globalPoint.Y = 0.25 * height

	return []StructPoint{
		{"Point1", origin},
		{"Point2", corner},
		{"Point3", Point2D(anon)},
		{"Point4", Point2D{0.25 * width, 0.4 * height}},
		{"GlobalPoint", globalPoint},
	}
}

// StructLines formats one "Name (x, y)" line per point.
func StructLines(pts []StructPoint) []string {
	lines := make([]string, 0, len(pts))
	for _, p := range pts {
		lines = append(lines, fmt.Sprintf("%s (%f, %f)", p.Name, p.At.X, p.At.Y))
	}
	return lines
}

// DrawStructs labels every point in a column at the top right and joins the
// points into a closed polygon with one color per edge.
func DrawStructs(c *shapes.Canvas, pts []StructPoint) error {
	y := structLabelY
	for _, line := range StructLines(pts) {
		if err := c.DrawLabel(line, structLabelX, y); err != nil {
			return fmt.Errorf("layout: structs: %w", err)
		}
		y += labelSpacing
	}
	for i, p := range pts {
		next := pts[(i+1)%len(pts)]
		c.DrawLine(
			shapes.Pt(float64(p.At.X), float64(p.At.Y)),
			shapes.Pt(float64(next.At.X), float64(next.At.Y)),
			edgeColors[i%len(edgeColors)],
		)
	}
	return nil
}
