package shapes

import (
	"testing"
	"unsafe"
)

func TestPlainShape_BaseHandleIgnoresVariant(t *testing.T) {
	handles := []*PlainShape{
		NewPlainCircle(20, 30, 5).Base(),
		NewPlainRectangle(200, 300, 5, 5).Base(),
		{At: Pt(1, 1)},
	}

	r := &recorder{}
	for _, h := range handles {
		h.Draw(r)
	}
	for i, call := range r.calls {
		if call != "shape" {
			t.Errorf("handle %d drew %q, want base output", i, call)
		}
	}
	if len(r.calls) != len(handles) {
		t.Errorf("got %d draw calls, want %d", len(r.calls), len(handles))
	}
}

func TestPlainShape_VariantDrawsItselfDirectly(t *testing.T) {
	r := &recorder{}
	NewPlainCircle(0, 0, 1).Draw(r)
	NewPlainRectangle(0, 0, 1, 1).Draw(r)
	if len(r.calls) != 2 || r.calls[0] != "circle" || r.calls[1] != "rectangle" {
		t.Errorf("calls = %v, want [circle rectangle]", r.calls)
	}
}

func TestPlainShape_LayoutHasNoDispatchReference(t *testing.T) {
	if got, want := unsafe.Sizeof(PlainShape{}), unsafe.Sizeof(Point{}); got != want {
		t.Errorf("Sizeof(PlainShape) = %d, want %d", got, want)
	}
	if got, want := unsafe.Sizeof(PlainCircle{}), unsafe.Sizeof(Point{})+unsafe.Sizeof(float64(0)); got != want {
		t.Errorf("Sizeof(PlainCircle) = %d, want %d", got, want)
	}
	if got, want := unsafe.Sizeof(NewPlainCircle(0, 0, 1).Base()), unsafe.Sizeof(uintptr(0)); got != want {
		t.Errorf("Sizeof(*PlainShape) = %d, want %d", got, want)
	}
}
