package layout

import (
	"bytes"
	"image"
	"strings"
	"testing"
	"unsafe"

	"github.com/gogpu/shapes"
	"github.com/google/go-cmp/cmp"
)

func TestDescribe_Struct(t *testing.T) {
	got := Describe(VisibleVertex{})
	want := TypeLayout{
		Name:  "layout.VisibleVertex",
		Size:  32,
		Align: 4,
		Fields: []FieldLayout{
			{Name: "Visible", Type: "bool", Offset: 0, Size: 1, Padding: 0},
			{Name: "Position", Type: "layout.Point2D", Offset: 4, Size: 8, Padding: 3},
			{Name: "Color", Type: "layout.RGB", Offset: 12, Size: 12, Padding: 0},
			{Name: "TexCoord", Type: "layout.UV", Offset: 24, Size: 8, Padding: 0},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Describe(VisibleVertex) mismatch (-want +got):\n%s", diff)
	}
	if got.PaddingBytes() != 3 {
		t.Errorf("PaddingBytes() = %d, want 3", got.PaddingBytes())
	}
}

func TestDescribe_TrailingPadding(t *testing.T) {
	got := Of[PackedVisibleVertex]()
	if got.Size != 32 {
		t.Errorf("Size = %d, want 32", got.Size)
	}
	if got.TrailingPadding != 3 {
		t.Errorf("TrailingPadding = %d, want 3", got.TrailingPadding)
	}
	for _, f := range got.Fields {
		if f.Padding != 0 {
			t.Errorf("field %s Padding = %d, want 0", f.Name, f.Padding)
		}
	}
}

func TestDescribe_Scalars(t *testing.T) {
	tests := []struct {
		v    any
		name string
		size uintptr
	}{
		{byte(0), "uint8", 1},
		{float32(0), "float32", 4},
		{true, "bool", 1},
		{Point2D{}, "layout.Point2D", 8},
		{RGB{}, "layout.RGB", 12},
		{RGBA{}, "layout.RGBA", 16},
		{UV{}, "layout.UV", 8},
		{Vertex{}, "layout.Vertex", 28},
	}
	for _, tt := range tests {
		got := Describe(tt.v)
		if got.Name != tt.name || got.Size != tt.size {
			t.Errorf("Describe(%T) = %s/%d, want %s/%d", tt.v, got.Name, got.Size, tt.name, tt.size)
		}
	}
	if got := Describe(nil); got.Name != "nil" || got.Size != 0 {
		t.Errorf("Describe(nil) = %+v", got)
	}
}

func TestCatalog_Order(t *testing.T) {
	c := Catalog()
	if len(c) != 10 {
		t.Fatalf("len(Catalog()) = %d, want 10", len(c))
	}
	if c[0].Name != "uint8" || c[len(c)-1].Name != "layout.PackedVisibleVertex" {
		t.Errorf("Catalog() order = %s..%s", c[0].Name, c[len(c)-1].Name)
	}
}

func TestDispatchSizes(t *testing.T) {
	word := unsafe.Sizeof(uintptr(0))
	d := DispatchSizes()

	if d.PlainBase != unsafe.Sizeof(shapes.Point{}) {
		t.Errorf("PlainBase = %d, want size of Point", d.PlainBase)
	}
	if d.PlainHandle != word {
		t.Errorf("PlainHandle = %d, want %d", d.PlainHandle, word)
	}
	if d.VirtualHandle != 2*word {
		t.Errorf("VirtualHandle = %d, want %d", d.VirtualHandle, 2*word)
	}
	if d.VirtualHandle <= d.PlainHandle {
		t.Error("dynamic-dispatch handle must be larger than a plain handle")
	}
	if d.Rectangle != d.PlainBase+16 {
		t.Errorf("Rectangle = %d, want %d", d.Rectangle, d.PlainBase+16)
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, []TypeLayout{Of[float32](), Of[VisibleVertex]()}); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Size of float32:",
		"Size of layout.VisibleVertex:",
		"32 bytes (3 padding)",
		"Position   layout.Point2D   offset   4 size   8 padding 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestDispatchLines(t *testing.T) {
	lines := DispatchLines(DispatchSizes())
	if len(lines) != 6 {
		t.Fatalf("len = %d, want 6", len(lines))
	}
	if !strings.HasPrefix(lines[3], "Size of Shape handle:") {
		t.Errorf("lines[3] = %q", lines[3])
	}
}

func TestRender(t *testing.T) {
	c := shapes.NewCanvas(shapes.WithCanvasSize(400, 200))
	defer func() { _ = c.Close() }()

	if err := Render(c, Lines(Catalog()[:3])); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	img := c.Image()
	lit := 0
	for y := 5; y < 55; y++ {
		for x := 10; x < 200; x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Errorf("Render left no pixels in %v", image.Rect(10, 5, 200, 55))
	}
}
