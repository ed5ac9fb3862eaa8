package main

import (
	"bytes"
	"image"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/shapes"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDraw_DefaultScene(t *testing.T) {
	out, _, err := execute(t, "draw")
	if err != nil {
		t.Fatalf("draw error = %v", err)
	}
	if n := strings.Count(out, "Drawing a circle"); n != 5 {
		t.Errorf("circle lines = %d, want 5", n)
	}
	if n := strings.Count(out, "Drawing a rectangle"); n != 5 {
		t.Errorf("rectangle lines = %d, want 5", n)
	}
	if !strings.Contains(out, "Constructed: 10 Destroyed: 10 Live: 0") {
		t.Errorf("missing balanced stats:\n%s", out)
	}
}

func TestDraw_Leak(t *testing.T) {
	out, errOut, err := execute(t, "draw", "--leak")
	if err == nil {
		t.Fatal("draw --leak error = nil, want leak")
	}
	if !strings.Contains(out, "Destroyed: 0 Live: 10") {
		t.Errorf("missing leaked stats:\n%s", out)
	}
	if !strings.Contains(errOut, "10 shape(s) orphaned") {
		t.Errorf("stderr = %q, want orphan report", errOut)
	}
}

func TestDraw_SceneAndPNG(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.yaml")
	data := "width: 64\nheight: 48\nshapes:\n  - {kind: circle, x: 32, y: 24, radius: 10}\n"
	if err := os.WriteFile(scenePath, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	pngPath := filepath.Join(dir, "out.png")

	out, _, err := execute(t, "draw", "--scene", scenePath, "--png", pngPath)
	if err != nil {
		t.Fatalf("draw error = %v", err)
	}
	if !strings.Contains(out, "saved "+pngPath+" (64x48)") {
		t.Errorf("output = %q", out)
	}
	if _, err := os.Stat(pngPath); err != nil {
		t.Errorf("png not written: %v", err)
	}
}

func TestLayout(t *testing.T) {
	out, _, err := execute(t, "layout")
	if err != nil {
		t.Fatalf("layout error = %v", err)
	}
	for _, want := range []string{"Size of layout.VisibleVertex:", "Size of Shape handle:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestStructs(t *testing.T) {
	pngPath := filepath.Join(t.TempDir(), "structs.png")
	out, _, err := execute(t, "structs", "--png", pngPath)
	if err != nil {
		t.Fatalf("structs error = %v", err)
	}
	for _, want := range []string{
		"Point1 (0.000000, 0.000000)",
		"Point3 (600.000000, 300.000000)",
		"GlobalPoint (400.000000, 150.000000)",
		"saved " + pngPath,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if _, err := os.Stat(pngPath); err != nil {
		t.Errorf("png not written: %v", err)
	}
}

func TestPixels(t *testing.T) {
	pngPath := filepath.Join(t.TempDir(), "pixels.png")
	out, _, err := execute(t, "pixels", "--png", pngPath, "--count", "20", "--frames", "3", "--seed", "7")
	if err != nil {
		t.Fatalf("pixels error = %v", err)
	}
	if !strings.Contains(out, "set 60 pixels over 3 frame(s), seed 7") {
		t.Errorf("output = %q", out)
	}
	if _, err := os.Stat(pngPath); err != nil {
		t.Errorf("png not written: %v", err)
	}

	if _, _, err := execute(t, "pixels", "--png", pngPath, "--frames", "0"); err == nil {
		t.Error("pixels --frames 0 error = nil, want error")
	}
}

// colored counts pixels with any non-zero color channel.
func colored(img image.Image) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if r, g, bl, _ := img.At(x, y).RGBA(); r|g|bl != 0 {
				n++
			}
		}
	}
	return n
}

func TestDrawPixelFrame(t *testing.T) {
	frame := func(seed uint64) image.Image {
		c := shapes.NewCanvas(shapes.WithCanvasSize(64, 48))
		t.Cleanup(func() { _ = c.Close() })
		drawPixelFrame(c, rand.New(rand.NewPCG(seed, seed)), 50)
		return c.Image()
	}

	a, b := frame(3), frame(3)
	if n := colored(a); n == 0 || n > 50 {
		t.Errorf("colored pixels = %d, want 1..50", n)
	}
	bounds := a.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("pixel (%d,%d) differs between runs with the same seed", x, y)
			}
		}
	}
}

func TestPointers(t *testing.T) {
	out, _, err := execute(t, "pointers")
	if err != nil {
		t.Fatalf("pointers error = %v", err)
	}
	for _, want := range []string{
		": 5150",
		"element 0 owns nothing: arena: invalid handle",
		"reading through the stale alias: arena: use after release",
		"releasing the stale alias: arena: double release",
		`arena "scalars": 1 value(s) leaked`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFib(t *testing.T) {
	out, _, err := execute(t, "fib", "-n", "3")
	if err != nil {
		t.Fatalf("fib error = %v", err)
	}
	want := "The Fibonacci series of 0 is 0\nThe Fibonacci series of 1 is 1\nThe Fibonacci series of 2 is 1\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	if _, _, err := execute(t, "fib", "-n", "90"); err == nil {
		t.Error("fib -n 90 error = nil, want bound error")
	}
}

func TestMinMax(t *testing.T) {
	out, _, err := execute(t, "minmax")
	if err != nil {
		t.Fatalf("minmax error = %v", err)
	}
	for _, want := range []string{"Min(8, 10): 8", "Min(8.0, 10.0): 8", "Min('A', 'a'): A", "Max('A', 'a'): a"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
