// Package game implements the paddle-and-ball simulation: the entities, the
// control event queue, and the fixed-tick loop that owns all of them. The
// only state that leaves this package does so through the scene snapshot and
// the event queue.
package game

import (
	"math"

	"github.com/vovakirdan/tui-paddle/internal/geom"
	"github.com/vovakirdan/tui-paddle/internal/mesh"
)

// Field bounds shared by the paddle track, the ball, and the camera.
const (
	// TrackBound clamps the horizontal position of the paddle and the ball.
	TrackBound = 5.5
	// CameraBound clamps the smoothed camera offset.
	CameraBound = 5.0
)

// BallSpawn is where the ball (re)appears after a reset.
var BallSpawn = geom.V(0, 0.7)

const (
	// BallRadius is the ball's fixed collision and render radius.
	BallRadius = 0.05
	// ballSegments is the tessellation of the ball's triangle fan.
	ballSegments = 20
)

var ballColor = [3]float32{1, 1, 1}

// Ball is the moving puck. It holds kinematic state only; collision is
// paddle-initiated (the paddle tests whether it contains the ball).
type Ball struct {
	Position geom.Vec2
	Velocity geom.Vec2
}

// Push appends the ball's triangle fan to the mesh: a center vertex followed
// by a closed ring of ballSegments+1 rim vertices.
func (b *Ball) Push(m *mesh.Builder) {
	verts := make([]mesh.Vertex, 0, ballSegments+2)
	verts = append(verts, mesh.Vertex{
		Position: [2]float32{b.Position.X, b.Position.Y},
		Color:    ballColor,
	})
	for i := 0; i <= ballSegments; i++ {
		a := float64(i) / ballSegments * 2 * math.Pi
		verts = append(verts, mesh.Vertex{
			Position: [2]float32{
				float32(math.Sin(a))*BallRadius + b.Position.X,
				float32(math.Cos(a))*BallRadius + b.Position.Y,
			},
			Color: ballColor,
		})
	}

	n := uint16(len(verts))
	indices := make([]uint16, 0, ballSegments*3)
	for i := uint16(1); i <= ballSegments; i++ {
		indices = append(indices, 0, (i+1)%n, i)
	}
	m.Push(verts, indices)
}

// Paddle geometry. The steering value tilts the collision quad and, halved,
// steers the bounce normal.
const (
	PaddleWidth  = 0.4
	PaddleHeight = 0.2
	PaddleY      = -0.7

	paddleAngleMultiplier       = math.Pi / 8
	paddleNormalAngleMultiplier = math.Pi / 16
)

var paddleColor = [3]float32{1, 1, 1}

// Paddle is the player-controlled bar. X is its position along the track;
// Velocity is a steering intent in [-1, 1], not a linear speed: it ramps
// under input, saturates, and decays geometrically once input stops.
type Paddle struct {
	X        float32
	Velocity float32
}

// Points returns the paddle's four corners: a fixed-size rectangle rotated
// by Velocity*paddleAngleMultiplier about its own center, then translated to
// (X, PaddleY). Steering therefore tilts both the visual and the collision
// shape.
func (p *Paddle) Points() [4]geom.Vec2 {
	angle := p.Velocity * paddleAngleMultiplier

	corners := [4]geom.Vec2{
		geom.V(-PaddleWidth/2, -PaddleHeight/2),
		geom.V(PaddleWidth/2, -PaddleHeight/2),
		geom.V(PaddleWidth/2, PaddleHeight/2),
		geom.V(-PaddleWidth/2, PaddleHeight/2),
	}
	for i, c := range corners {
		r := geom.Rotate(c, angle)
		corners[i] = geom.V(r.X+p.X, r.Y+PaddleY)
	}
	return corners
}

// Push appends the paddle quad to the mesh.
func (p *Paddle) Push(m *mesh.Builder) {
	pts := p.Points()
	verts := make([]mesh.Vertex, len(pts))
	for i, pt := range pts {
		verts[i] = mesh.Vertex{Position: [2]float32{pt.X, pt.Y}, Color: paddleColor}
	}
	m.Push(verts, []uint16{0, 1, 2, 0, 2, 3})
}

// Contains reports whether the ball's circle overlaps the paddle quad,
// decomposed into the triangles (a,b,c) and (a,c,d). The shared diagonal is
// tested by both halves; redundant but harmless.
func (p *Paddle) Contains(b *Ball) bool {
	pts := p.Points()
	return geom.CircleIntersectsTriangle(b.Position, BallRadius, pts[0], pts[1], pts[2]) ||
		geom.CircleIntersectsTriangle(b.Position, BallRadius, pts[0], pts[2], pts[3])
}

// Normal returns the bounce direction: an equal blend of unit-up rotated by
// the steering value and unit-up rotated by the track position. This is the
// sole source of bounce direction; the ball's incoming velocity plays no
// part.
func (p *Paddle) Normal() geom.Vec2 {
	up := geom.V(0, 1)
	steer := geom.Rotate(up, p.Velocity*paddleNormalAngleMultiplier)
	pos := geom.Rotate(up, p.X*paddleNormalAngleMultiplier)
	return steer.Scale(0.5).Add(pos.Scale(0.5))
}

// loseZoneHeight is the thickness of the failure band at the bottom of the
// field, which spans y in [-1, -1+loseZoneHeight).
const loseZoneHeight = 0.1

var loseZoneColor = [3]float32{1, 0.6, 0}

// LoseZone is the static failure region. Immutable for the process lifetime.
type LoseZone struct{}

// Contains reports whether the point has fallen into the zone.
func (LoseZone) Contains(p geom.Vec2) bool {
	return p.Y < -1+loseZoneHeight
}

// Push appends the zone's band to the mesh. The band is wider than the track
// so it always covers the visible field.
func (LoseZone) Push(m *mesh.Builder) {
	positions := [4][2]float32{
		{-10, -1},
		{10, -1},
		{10, -1 + loseZoneHeight},
		{-10, -1 + loseZoneHeight},
	}
	verts := make([]mesh.Vertex, len(positions))
	for i, pos := range positions {
		verts[i] = mesh.Vertex{Position: pos, Color: loseZoneColor}
	}
	m.Push(verts, []uint16{0, 1, 2, 0, 2, 3})
}
