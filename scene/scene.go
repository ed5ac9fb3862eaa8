// Package scene loads the list of shapes a driver run draws.
//
// A scene is a small YAML document:
//
//	width: 800
//	height: 600
//	shapes:
//	  - {kind: circle, x: 20, y: 30, radius: 5}
//	  - {kind: rectangle, x: 200, y: 300, width: 5, height: 5}
//
// Extents are not validated; zero and negative values are passed through to
// the shapes unchanged.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/shapes"
	"gopkg.in/yaml.v3"
)

// Default canvas dimensions.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// ErrUnknownKind is returned by Build for a shape kind it cannot construct.
var ErrUnknownKind = errors.New("scene: unknown shape kind")

// ShapeSpec describes one shape.
type ShapeSpec struct {
	Kind   string  `yaml:"kind"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// Scene is a canvas size and an ordered shape list.
type Scene struct {
	Width  int         `yaml:"width"`
	Height int         `yaml:"height"`
	Shapes []ShapeSpec `yaml:"shapes"`
}

// Default returns the ten-shape scene: five growing circles followed by
// five growing squares.
func Default() *Scene {
	s := &Scene{Width: DefaultWidth, Height: DefaultHeight}
	radii := []float64{5, 10, 15, 20, 30}
	for i, r := range radii {
		f := float64(i + 1)
		s.Shapes = append(s.Shapes, ShapeSpec{Kind: "circle", X: 20 * f, Y: 30 * f, Radius: r})
	}
	for i := 0; i < 5; i++ {
		f := float64(i)
		side := 5 * (f + 1)
		s.Shapes = append(s.Shapes, ShapeSpec{
			Kind: "rectangle", X: 200 + 20*f, Y: 300 + 30*f, Width: side, Height: side,
		})
	}
	return s
}

// Load reads a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML scene. Missing dimensions take the defaults and
// unknown fields are rejected. An empty document is a scene with no shapes.
func Parse(data []byte) (*Scene, error) {
	s := &Scene{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	if s.Width <= 0 {
		s.Width = DefaultWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultHeight
	}
	return s, nil
}

// Marshal encodes the scene as YAML.
func (s *Scene) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("scene: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("scene: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Build constructs the shapes in order.
func (s *Scene) Build() ([]shapes.Shape, error) {
	out := make([]shapes.Shape, 0, len(s.Shapes))
	for i, spec := range s.Shapes {
		sh, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		out = append(out, sh)
	}
	return out, nil
}

// Build constructs the shape described by spec.
func (spec ShapeSpec) Build() (shapes.Shape, error) {
	switch spec.Kind {
	case shapes.KindCircle.String():
		return shapes.NewCircleAt(spec.X, spec.Y, spec.Radius), nil
	case shapes.KindRectangle.String():
		return shapes.NewRectangleAt(spec.X, spec.Y, spec.Width, spec.Height), nil
	case shapes.KindShape.String():
		return shapes.NewBase(spec.X, spec.Y), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, spec.Kind)
	}
}
