package game

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/vovakirdan/tui-paddle/internal/geom"
	"github.com/vovakirdan/tui-paddle/internal/mesh"
	"github.com/vovakirdan/tui-paddle/internal/scene"
)

// DefaultTickInterval is the fixed simulation period.
const DefaultTickInterval = 10 * time.Millisecond

// Steering and ball tuning. The tick is fixed, so these are per-tick
// quantities rather than per-second rates.
const (
	steeringStep  = 0.05 // added per tick while a single direction is held
	steeringDecay = 0.95 // applied per tick when neither or both are held
	velocityDecay = 0.95 // ball damping per tick
	maxBallSpeed  = 0.1  // symmetric per-component clamp after damping
	cameraWeight  = 10   // EMA weight of the previous camera position
)

// Options configures a simulation loop.
type Options struct {
	// Interval is the tick period. Zero means DefaultTickInterval.
	Interval time.Duration
	// Seed seeds the collision-jitter RNG. Zero means time-based.
	Seed int64
}

// Loop owns all entity state outright and advances it once per fixed tick,
// publishing a complete scene snapshot at the end of every tick.
// Cross-goroutine visibility goes only through the scene cells and the event
// queue, never through shared entity pointers.
type Loop struct {
	queue    *Queue
	scene    *scene.State
	interval time.Duration
	rng      *rand.Rand

	ball     Ball
	paddle   Paddle
	loseZone LoseZone
	controls Controls
	paused   bool

	tick atomic.Uint64
}

// New creates a loop publishing into sc.
func New(sc *scene.State, opts Options) *Loop {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	l := &Loop{
		queue:    NewQueue(),
		scene:    sc,
		interval: interval,
		rng:      rand.New(rand.NewSource(seed)),
		ball:     Ball{Position: BallSpawn},
	}
	l.publish()
	return l
}

// Events returns the loop's input queue. Any goroutine may push into it.
func (l *Loop) Events() *Queue {
	return l.queue
}

// Tick returns the number of completed ticks. Safe to read from any
// goroutine.
func (l *Loop) Tick() uint64 {
	return l.tick.Load()
}

// Run ticks until stop closes. Ticks are wall-clock-independent: each one
// advances the physics by exactly one step regardless of elapsed time.
func (l *Loop) Run(stop <-chan struct{}) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			l.Step()
		}
	}
}

// Step runs one fixed tick: drain events, steer the paddle, integrate the
// ball, resolve collisions, check the lose zone, and publish a fresh scene
// snapshot.
func (l *Loop) Step() {
	for _, ev := range l.queue.Drain() {
		switch ev.Kind {
		case EventLeft:
			l.controls.Left = ev.State
		case EventRight:
			l.controls.Right = ev.State
		case EventReset:
			l.ball.Position = BallSpawn
		case EventPause:
			l.paused = !l.paused
		}
	}

	if l.paused {
		// Events keep latching while paused; physics stands still.
		l.publish()
		return
	}

	switch {
	case l.controls.Left == Pressed && l.controls.Right == Released:
		l.paddle.Velocity = geom.Clamp(l.paddle.Velocity-steeringStep, -1, 1)
	case l.controls.Right == Pressed && l.controls.Left == Released:
		l.paddle.Velocity = geom.Clamp(l.paddle.Velocity+steeringStep, -1, 1)
	default:
		l.paddle.Velocity *= steeringDecay
	}

	l.paddle.X = geom.Clamp(l.paddle.X+l.paddle.Velocity/20, -TrackBound, TrackBound)

	// Pseudo-gravity: only pulls while v.y already sits in [-0.5, -0.1].
	// Preserved exactly as shipped; see DESIGN.md.
	l.ball.Velocity.Y += geom.Clamp(l.ball.Velocity.Y, -0.5, -0.1) * 0.01

	if l.paddle.Contains(&l.ball) {
		l.ball.Velocity = l.ball.Velocity.Add(l.paddle.Normal())
		l.ball.Velocity.X += (l.rng.Float32()*2 - 0.5) * 0.01
	}

	l.ball.Velocity = l.ball.Velocity.Scale(velocityDecay)
	l.ball.Velocity.X = geom.Clamp(l.ball.Velocity.X, -maxBallSpeed, maxBallSpeed)
	l.ball.Velocity.Y = geom.Clamp(l.ball.Velocity.Y, -maxBallSpeed, maxBallSpeed)

	l.ball.Position = l.ball.Position.Add(l.ball.Velocity)
	l.ball.Position.X = geom.Clamp(l.ball.Position.X, -TrackBound, TrackBound)

	if l.loseZone.Contains(l.ball.Position) {
		// Processed at the start of the next tick, not immediately.
		l.queue.Push(Reset())
	}

	l.tick.Add(1)
	l.publish()
}

// publish rebuilds the renderable mesh from scratch, replaces the shared
// mesh cell wholesale, advances the camera EMA, and signals a redraw.
func (l *Loop) publish() {
	m := &mesh.Builder{}
	l.loseZone.Push(m)
	l.paddle.Push(m)
	l.ball.Push(m)
	l.scene.SetMesh(m)

	camera := (l.scene.Camera()*cameraWeight + l.paddle.X) / (cameraWeight + 1)
	l.scene.SetCamera(geom.Clamp(camera, -CameraBound, CameraBound))

	l.scene.RequestRedraw()
}
