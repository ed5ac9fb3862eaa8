package shapes

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// markerSize is the half-length of the cross drawn for a base shape.
const markerSize = 3.0

// Canvas is a Drawer that renders primitives into an image using gg.
//
// Canvas is the explicit drawing context that replaces global display and
// font handles: everything it needs is owned by the value and released by
// Close.
type Canvas struct {
	dc   *gg.Context
	opts canvasOptions

	font *text.FontSource
	face text.Face
}

// NewCanvas creates a canvas cleared to the background color.
func NewCanvas(opts ...CanvasOption) *Canvas {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dc := gg.NewContext(o.width, o.height)
	dc.ClearWithColor(o.background)
	dc.SetLineWidth(o.lineWidth)
	return &Canvas{dc: dc, opts: o}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.opts.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.opts.height }

// DrawShape implements Drawer. The base shape is marked with a small cross.
func (c *Canvas) DrawShape(center Point) {
	c.pen()
	c.dc.DrawLine(center.X-markerSize, center.Y, center.X+markerSize, center.Y)
	c.dc.DrawLine(center.X, center.Y-markerSize, center.X, center.Y+markerSize)
	c.stroke("shape")
}

// DrawCircle implements Drawer. Circles with a non-positive radius are
// accepted but leave no mark.
func (c *Canvas) DrawCircle(center Point, radius float64) {
	if radius <= 0 {
		Logger().Debug("canvas: degenerate circle skipped", "center", center.String(), "radius", radius)
		return
	}
	c.pen()
	c.dc.DrawCircle(center.X, center.Y, radius)
	c.stroke("circle")
}

// DrawRectangle implements Drawer. Rectangles with a non-positive width or
// height are accepted but leave no mark.
func (c *Canvas) DrawRectangle(topLeft, bottomRight Point) {
	size := bottomRight.Sub(topLeft)
	if size.X <= 0 || size.Y <= 0 {
		Logger().Debug("canvas: degenerate rectangle skipped",
			"min", topLeft.String(), "max", bottomRight.String())
		return
	}
	c.pen()
	c.dc.DrawRectangle(topLeft.X, topLeft.Y, size.X, size.Y)
	c.stroke("rectangle")
}

// DrawLine strokes a line from a to b in col, using the canvas line width.
func (c *Canvas) DrawLine(a, b Point, col gg.RGBA) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	c.stroke("line")
}

// SetPixel sets one pixel to col. Pixels outside the canvas are ignored.
func (c *Canvas) SetPixel(x, y int, col gg.RGBA) {
	c.dc.SetPixel(x, y, col)
}

// DrawLabel draws s with its baseline at (x, y) using the Go Regular face.
// The font is loaded on first use.
func (c *Canvas) DrawLabel(s string, x, y float64) error {
	if c.face == nil {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return fmt.Errorf("shapes: load label font: %w", err)
		}
		c.font = src
		c.face = src.Face(c.opts.fontSize)
		c.dc.SetFont(c.face)
	}
	c.pen()
	c.dc.DrawString(s, x, y)
	return nil
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("shapes: save %s: %w", path, err)
	}
	return nil
}

// Close releases the drawing context and the label font.
func (c *Canvas) Close() error {
	var fontErr error
	if c.font != nil {
		fontErr = c.font.Close()
		c.font, c.face = nil, nil
	}
	if err := c.dc.Close(); err != nil {
		return fmt.Errorf("shapes: close canvas: %w", err)
	}
	return fontErr
}

func (c *Canvas) pen() {
	s := c.opts.stroke
	c.dc.SetRGBA(s.R, s.G, s.B, s.A)
}

func (c *Canvas) stroke(kind string) {
	if err := c.dc.Stroke(); err != nil {
		Logger().Warn("canvas: stroke failed", "kind", kind, "err", err)
	}
}
