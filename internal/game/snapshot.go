package game

// Snapshot captures the loop's complete entity state in primitive fields.
// It exists for tests and debugging. Because the loop owns its entities
// outright, a Snapshot must be taken from the goroutine driving Step (or
// with the loop stopped).
type Snapshot struct {
	Tick uint64

	BallX, BallY   float32
	BallVX, BallVY float32

	PaddleX        float32
	PaddleVelocity float32

	LeftPressed  bool
	RightPressed bool
	Paused       bool

	Camera float32
}

// Snapshot returns the current entity state.
func (l *Loop) Snapshot() Snapshot {
	return Snapshot{
		Tick:           l.tick.Load(),
		BallX:          l.ball.Position.X,
		BallY:          l.ball.Position.Y,
		BallVX:         l.ball.Velocity.X,
		BallVY:         l.ball.Velocity.Y,
		PaddleX:        l.paddle.X,
		PaddleVelocity: l.paddle.Velocity,
		LeftPressed:    bool(l.controls.Left),
		RightPressed:   bool(l.controls.Right),
		Paused:         l.paused,
		Camera:         l.scene.Camera(),
	}
}
