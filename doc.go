// Package shapes demonstrates polymorphic drawing and explicit ownership of
// 2D shapes.
//
// # Overview
//
// A [Shape] is a drawable figure with a center point. [Circle] and
// [Rectangle] are its variants; [Base] is the generic shape. Holding any of
// them in a Shape interface value gives a dynamic-dispatch handle: Draw
// always reaches the variant's own implementation.
//
// The fixed-layout family ([PlainShape], [PlainCircle], [PlainRectangle])
// shows the contrast. Its variants embed PlainShape by value, and a
// *PlainShape handle taken from any of them always draws the base output.
//
// # Drawing
//
// Shapes draw onto an explicit [Drawer]. [TextDrawer] writes one line per
// primitive, [Canvas] rasterizes outlines with github.com/gogpu/gg:
//
//	c := shapes.NewCanvas()
//	defer c.Close()
//
//	shapes.NewCircleAt(20, 30, 5).Draw(c)
//	_ = c.SavePNG("circle.png")
//
// # Ownership
//
// A [Collection] is a fixed-length sequence of shapes owned through handles
// into an arena (package arena). Each slot follows the lifecycle
// uninitialized, constructed, drawn, destroyed. Destroying a slot twice or
// drawing a destroyed slot is reported as an error, never silently
// tolerated. Releasing the collection storage without destroying its
// elements leaves them live in the arena, and Close on the arena reports
// them as leaked.
//
// [Run] ties it together: allocate, draw once, release.
package shapes
