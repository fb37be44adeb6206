package scene

import (
	"sync"
	"testing"

	"github.com/vovakirdan/tui-paddle/internal/mesh"
)

// buildMesh returns a mesh with n quads, so a complete mesh always has a
// vertex count that is a multiple of 4.
func buildMesh(n int) *mesh.Builder {
	b := &mesh.Builder{}
	for iter := 0; iter < n; iter++ {
		b.Push([]mesh.Vertex{{}, {}, {}, {}}, []uint16{0, 1, 2, 0, 2, 3})
	}
	return b
}

func TestSnapshotNeverTorn(t *testing.T) {
	s := New()
	stop := make(chan struct{})
	var wg sync.WaitGroup

	// Writer replaces the mesh wholesale with alternating sizes.
	wg.Add(1)
	go func() {
		defer wg.Done()
		n := 1
		for {
			select {
			case <-stop:
				return
			default:
			}
			s.SetMesh(buildMesh(n))
			n = n%3 + 1
		}
	}()

	// Reader must only ever observe complete meshes.
	for iter := 0; iter < 1000; iter++ {
		snap := s.SnapshotMesh()
		if len(snap.Vertices())%4 != 0 {
			t.Fatalf("torn mesh observed: %d vertices", len(snap.Vertices()))
		}
		if len(snap.Indices()) != len(snap.Vertices())/4*6 {
			t.Fatalf("mesh inconsistent: %d vertices, %d indices",
				len(snap.Vertices()), len(snap.Indices()))
		}
	}

	close(stop)
	wg.Wait()
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New()
	s.SetMesh(buildMesh(1))

	snap := s.SnapshotMesh()
	s.SetMesh(buildMesh(2))

	if len(snap.Vertices()) != 4 {
		t.Errorf("snapshot changed after SetMesh: %d vertices", len(snap.Vertices()))
	}
}

func TestCameraRoundTrip(t *testing.T) {
	s := New()
	if got := s.Camera(); got != 0 {
		t.Errorf("initial camera = %v, expected 0", got)
	}
	s.SetCamera(-3.25)
	if got := s.Camera(); got != -3.25 {
		t.Errorf("camera = %v, expected -3.25", got)
	}
}

func TestRedrawCoalesces(t *testing.T) {
	s := New()

	// Multiple requests while the renderer is busy collapse into one signal.
	s.RequestRedraw()
	s.RequestRedraw()
	s.RequestRedraw()

	select {
	case <-s.Redraw():
	default:
		t.Fatal("expected a pending redraw signal")
	}

	select {
	case <-s.Redraw():
		t.Fatal("redraw signals did not coalesce")
	default:
	}
}
