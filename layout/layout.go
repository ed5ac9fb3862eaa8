// Package layout reports the memory layout of Go values: size, alignment,
// field offsets and the padding the compiler inserts between fields.
package layout

import (
	"reflect"
	"unsafe"

	"github.com/gogpu/shapes"
)

// FieldLayout describes one struct field.
type FieldLayout struct {
	Name    string
	Type    string
	Offset  uintptr
	Size    uintptr
	Padding uintptr // bytes inserted before this field
}

// TypeLayout describes the layout of one type.
type TypeLayout struct {
	Name            string
	Size            uintptr
	Align           uintptr
	Fields          []FieldLayout
	TrailingPadding uintptr // bytes after the last field, up to Size
}

// DataBytes returns the bytes used by fields, excluding padding.
func (l TypeLayout) DataBytes() uintptr {
	if len(l.Fields) == 0 {
		return l.Size
	}
	var n uintptr
	for _, f := range l.Fields {
		n += f.Size
	}
	return n
}

// PaddingBytes returns the total padding, between fields and at the end.
func (l TypeLayout) PaddingBytes() uintptr {
	return l.Size - l.DataBytes()
}

// Describe returns the layout of v's dynamic type. Only structs get field
// entries; every other kind is reported by size and alignment alone.
func Describe(v any) TypeLayout {
	t := reflect.TypeOf(v)
	if t == nil {
		return TypeLayout{Name: "nil"}
	}
	return describeType(t)
}

// Of returns the layout of T without needing a value.
func Of[T any]() TypeLayout {
	return describeType(reflect.TypeFor[T]())
}

func describeType(t reflect.Type) TypeLayout {
	l := TypeLayout{
		Name:  t.String(),
		Size:  t.Size(),
		Align: uintptr(t.Align()),
	}
	if t.Kind() != reflect.Struct {
		return l
	}

	var end uintptr
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		l.Fields = append(l.Fields, FieldLayout{
			Name:    f.Name,
			Type:    f.Type.String(),
			Offset:  f.Offset,
			Size:    f.Type.Size(),
			Padding: f.Offset - end,
		})
		end = f.Offset + f.Type.Size()
	}
	l.TrailingPadding = l.Size - end
	return l
}

// Dispatch compares the size of fixed-layout shapes and handles with the
// size of dynamic-dispatch handles.
type Dispatch struct {
	PlainBase     uintptr // shapes.PlainShape: just its Point
	PlainCircle   uintptr // shapes.PlainCircle: base plus radius
	PlainHandle   uintptr // *shapes.PlainShape: one data pointer
	VirtualHandle uintptr // shapes.Shape: method table reference plus data pointer
	Circle        uintptr // shapes.Circle
	Rectangle     uintptr // shapes.Rectangle
}

// DispatchSizes measures the shapes types.
func DispatchSizes() Dispatch {
	var (
		plain  *shapes.PlainShape
		handle shapes.Shape
	)
	return Dispatch{
		PlainBase:     unsafe.Sizeof(shapes.PlainShape{}),
		PlainCircle:   unsafe.Sizeof(shapes.PlainCircle{}),
		PlainHandle:   unsafe.Sizeof(plain),
		VirtualHandle: unsafe.Sizeof(handle),
		Circle:        unsafe.Sizeof(shapes.Circle{}),
		Rectangle:     unsafe.Sizeof(shapes.Rectangle{}),
	}
}
