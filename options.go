package shapes

import "github.com/gogpu/gg"

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// Default 800x600 canvas, white outlines on black
//	c := shapes.NewCanvas()
//
//	// Larger canvas with thicker red outlines
//	c := shapes.NewCanvas(shapes.WithCanvasSize(1024, 768),
//	    shapes.WithStrokeColor(gg.RGB(1, 0, 0)), shapes.WithLineWidth(2))
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	width      int
	height     int
	stroke     gg.RGBA
	background gg.RGBA
	lineWidth  float64
	fontSize   float64
}

// defaultCanvasOptions mirrors an 800x600 display with 1px white primitives.
func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		width:      800,
		height:     600,
		stroke:     gg.White,
		background: gg.Black,
		lineWidth:  1,
		fontSize:   12,
	}
}

// WithCanvasSize sets the canvas dimensions in pixels.
// Non-positive dimensions are ignored.
func WithCanvasSize(width, height int) CanvasOption {
	return func(o *canvasOptions) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithStrokeColor sets the color used for outlines and labels.
func WithStrokeColor(c gg.RGBA) CanvasOption {
	return func(o *canvasOptions) {
		o.stroke = c
	}
}

// WithBackground sets the color the canvas is cleared to.
func WithBackground(c gg.RGBA) CanvasOption {
	return func(o *canvasOptions) {
		o.background = c
	}
}

// WithLineWidth sets the outline width. Non-positive widths are ignored.
func WithLineWidth(w float64) CanvasOption {
	return func(o *canvasOptions) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}

// WithFontSize sets the label font size in points. Non-positive sizes are ignored.
func WithFontSize(size float64) CanvasOption {
	return func(o *canvasOptions) {
		if size > 0 {
			o.fontSize = size
		}
	}
}
