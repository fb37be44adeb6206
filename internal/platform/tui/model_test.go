package tui

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-paddle/internal/game"
	"github.com/vovakirdan/tui-paddle/internal/scene"
)

func newTestModel() Model {
	sc := scene.New()
	loop := game.New(sc, game.Options{Interval: time.Millisecond, Seed: 1})
	return NewModel(loop, sc, log.New(io.Discard), false)
}

// waitTicking waits until the simulation has advanced at least once.
func waitTicking(t *testing.T, loop *game.Loop) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if loop.Tick() > 0 {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("simulation never ticked")
}

// waitStopped waits until the tick counter stops advancing.
func waitStopped(t *testing.T, loop *game.Loop) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		before := loop.Tick()
		time.Sleep(20 * time.Millisecond)
		if loop.Tick() == before {
			return
		}
	}
	t.Fatal("simulation still ticking after stop")
}

// A disconnecting or idling SSH client ends the session without any quit
// key reaching the model, so cancelling the session context has to stop the
// per-session simulation goroutine.
func TestSessionEndStopsSimulation(t *testing.T) {
	m := newTestModel()
	ctx, cancel := context.WithCancel(context.Background())
	m.stopWhenDone(ctx)

	go m.loop.Run(m.stop)
	waitTicking(t, m.loop)

	cancel()
	waitStopped(t, m.loop)
}

// The quit key and the session context race on teardown; the loser of the
// race must be a no-op, not a double close.
func TestShutdownIsIdempotent(t *testing.T) {
	m := newTestModel()
	go m.loop.Run(m.stop)
	waitTicking(t, m.loop)

	m.shutdown()
	m.shutdown()
	waitStopped(t, m.loop)
}

// A pending redraw wait must not block forever once the simulation stops
// publishing.
func TestWaitRedrawUnblocksOnShutdown(t *testing.T) {
	m := newTestModel()

	// Consume the initial-scene signal so the wait actually blocks.
	select {
	case <-m.scene.Redraw():
	default:
	}

	got := make(chan struct{})
	go func() {
		m.waitRedraw()()
		close(got)
	}()

	m.shutdown()

	select {
	case <-got:
	case <-time.After(2 * time.Second):
		t.Fatal("waitRedraw still blocked after shutdown")
	}
}
