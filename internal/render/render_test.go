package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-paddle/internal/mesh"
)

// centerSquare builds a mesh with one axis-aligned quad around the origin.
func centerSquare(half float32) *mesh.Builder {
	m := &mesh.Builder{}
	m.Push([]mesh.Vertex{
		{Position: [2]float32{-half, -half}, Color: [3]float32{1, 1, 1}},
		{Position: [2]float32{half, -half}, Color: [3]float32{1, 1, 1}},
		{Position: [2]float32{half, half}, Color: [3]float32{1, 1, 1}},
		{Position: [2]float32{-half, half}, Color: [3]float32{1, 1, 1}},
	}, []uint16{0, 1, 2, 0, 2, 3})
	return m
}

func TestRenderLitCells(t *testing.T) {
	r := New(40, 20)

	frame, err := r.Render(centerSquare(0.5), 0)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if !strings.ContainsRune(frame, '█') {
		t.Error("frame contains no lit cells for a mesh covering the center")
	}
	if got := strings.Count(frame, "\n"); got != 19 {
		t.Errorf("frame has %d newlines, expected 19 for 20 rows", got)
	}
}

func TestRenderEmptyMesh(t *testing.T) {
	r := New(10, 5)

	frame, err := r.Render(&mesh.Builder{}, 0)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if strings.ContainsRune(frame, '█') {
		t.Error("empty mesh produced lit cells")
	}
}

func TestRenderCameraShift(t *testing.T) {
	r := New(40, 20)
	m := centerSquare(0.3)

	// Shifting the camera far right moves the square out of view entirely.
	frame, err := r.Render(m, 100)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if strings.ContainsRune(frame, '█') {
		t.Error("square still visible after the camera moved far away")
	}
}

func TestRenderSurfaceLost(t *testing.T) {
	r := New(0, 0)

	_, err := r.Render(centerSquare(0.5), 0)
	kind, ok := SurfaceKind(err)
	if !ok || kind != SurfaceLost {
		t.Fatalf("expected SurfaceLost, got %v", err)
	}

	// Recovering with a resize makes the surface usable again.
	r.Resize(20, 10)
	if _, err := r.Render(centerSquare(0.5), 0); err != nil {
		t.Errorf("Render() after resize: %v", err)
	}
}

func TestRenderSurfaceOutOfMemory(t *testing.T) {
	r := New(1<<12, 1<<12)

	_, err := r.Render(centerSquare(0.5), 0)
	if kind, ok := SurfaceKind(err); !ok || kind != SurfaceOutOfMemory {
		t.Fatalf("expected SurfaceOutOfMemory, got %v", err)
	}
}

func TestRenderMalformedMesh(t *testing.T) {
	m := &mesh.Builder{}
	m.Push([]mesh.Vertex{{}, {}}, []uint16{0, 1, 2}) // index 2 has no vertex

	r := New(10, 10)
	_, err := r.Render(m, 0)
	if kind, ok := SurfaceKind(err); !ok || kind != SurfaceOther {
		t.Fatalf("expected SurfaceOther for out-of-range index, got %v", err)
	}
}

func TestSurfaceKindNonSurfaceError(t *testing.T) {
	if _, ok := SurfaceKind(nil); ok {
		t.Error("SurfaceKind(nil) reported a surface error")
	}
}
