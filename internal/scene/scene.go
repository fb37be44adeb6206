// Package scene holds the only state shared between the simulation loop and
// the render side: a renderable mesh and a camera offset, each behind its own
// mutex, plus an edge-triggered redraw signal. The simulation loop is the
// sole writer; readers take lock-scoped copies and never hold a lock across
// rendering.
package scene

import (
	"sync"

	"github.com/vovakirdan/tui-paddle/internal/mesh"
)

// State is the shared scene snapshot.
type State struct {
	meshMu sync.Mutex
	mesh   *mesh.Builder

	cameraMu sync.Mutex
	camera   float32

	redraw chan struct{}
}

// New returns an empty scene.
func New() *State {
	return &State{
		mesh:   &mesh.Builder{},
		redraw: make(chan struct{}, 1),
	}
}

// SetMesh replaces the shared mesh wholesale. Because the mesh is always a
// complete replacement, a reader can never observe geometry from two
// different ticks.
func (s *State) SetMesh(m *mesh.Builder) {
	s.meshMu.Lock()
	s.mesh = m
	s.meshMu.Unlock()
}

// SnapshotMesh returns a copy of the current mesh. The lock is held only for
// the duration of the clone.
func (s *State) SnapshotMesh() *mesh.Builder {
	s.meshMu.Lock()
	defer s.meshMu.Unlock()
	return s.mesh.Clone()
}

// SetCamera stores the camera's horizontal offset.
func (s *State) SetCamera(x float32) {
	s.cameraMu.Lock()
	s.camera = x
	s.cameraMu.Unlock()
}

// Camera returns the camera's horizontal offset.
func (s *State) Camera() float32 {
	s.cameraMu.Lock()
	defer s.cameraMu.Unlock()
	return s.camera
}

// RequestRedraw signals the render side without blocking. Signals coalesce
// when the renderer is behind; it will pick up the latest snapshot on its
// next pass.
func (s *State) RequestRedraw() {
	select {
	case s.redraw <- struct{}{}:
	default:
	}
}

// Redraw exposes the signal channel the render side waits on.
func (s *State) Redraw() <-chan struct{} {
	return s.redraw
}
