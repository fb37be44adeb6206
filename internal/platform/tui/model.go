// Package tui provides the Bubble Tea integration for the paddle toy: the
// render/event side of the two-goroutine split. It forwards key input into
// the simulation's event queue and redraws whenever the loop signals a fresh
// scene snapshot. The simulation goroutine never blocks on rendering; the
// model clones the scene under lock and rasterizes after releasing it.
package tui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-paddle/internal/config"
	"github.com/vovakirdan/tui-paddle/internal/game"
	"github.com/vovakirdan/tui-paddle/internal/render"
	"github.com/vovakirdan/tui-paddle/internal/scene"
)

// redrawMsg is delivered when the simulation loop publishes a new snapshot.
type redrawMsg struct{}

var debugStyle = lipgloss.NewStyle().Faint(true)

// Model is the Bubble Tea model for a running game session.
type Model struct {
	loop     *game.Loop
	scene    *scene.State
	renderer *render.Renderer
	logger   *log.Logger

	keys      KeyMap
	help      help.Model
	holdLeft  *keyHold
	holdRight *keyHold

	stop     chan struct{}
	stopOnce *sync.Once
	debug    bool
	frame    string
	frames   uint64

	width  int
	height int

	quitting bool
}

// NewModel wires a model to a simulation loop publishing into sc.
func NewModel(loop *game.Loop, sc *scene.State, logger *log.Logger, debug bool) Model {
	queue := loop.Events()
	return Model{
		loop:      loop,
		scene:     sc,
		renderer:  render.New(0, 0),
		logger:    logger,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		holdLeft:  newKeyHold(queue, game.Left),
		holdRight: newKeyHold(queue, game.Right),
		stop:      make(chan struct{}),
		stopOnce:  new(sync.Once),
		debug:     debug,
	}
}

// Init starts the simulation goroutine and begins waiting for snapshots.
func (m Model) Init() tea.Cmd {
	go m.loop.Run(m.stop)
	return m.waitRedraw()
}

// waitRedraw blocks on the scene's redraw signal. It also watches the stop
// channel so the command goroutine does not outlive the session once the
// simulation is shut down.
func (m Model) waitRedraw() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.scene.Redraw():
			return redrawMsg{}
		case <-m.stop:
			return nil
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.renderer.Resize(m.width, m.contentHeight())
		return m, nil

	case redrawMsg:
		fatal := m.redraw()
		if fatal {
			return m.quit()
		}
		return m, m.waitRedraw()
	}

	return m, nil
}

// handleKey forwards input to the simulation queue.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Left):
		m.holdLeft.press()
	case key.Matches(msg, m.keys.Right):
		m.holdRight.press()
	case key.Matches(msg, m.keys.Reset):
		m.loop.Events().Push(game.Reset())
	case key.Matches(msg, m.keys.Pause):
		m.loop.Events().Push(game.Pause())
	}
	return m, nil
}

// quit shuts the simulation down and ends the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.shutdown()
	return m, tea.Quit
}

// shutdown stops the simulation goroutine and the hold timers. A session can
// end through the quit key or through the transport going away, so this is
// safe to call from any goroutine and more than once.
func (m Model) shutdown() {
	m.stopOnce.Do(func() {
		m.holdLeft.stop()
		m.holdRight.stop()
		close(m.stop)
	})
}

// stopWhenDone shuts the simulation down once ctx is cancelled. SSH sessions
// never route a quit message through Update when the client disconnects or
// idles out, so the session context is the only reliable end-of-life signal.
func (m Model) stopWhenDone(ctx context.Context) {
	go func() {
		<-ctx.Done()
		m.shutdown()
	}()
}

// redraw takes a scene snapshot and rasterizes it. The scene locks are held
// only inside SnapshotMesh and Camera, never across rendering, so the
// simulation thread is never stalled by drawing. Returns true when the
// failure is fatal.
func (m *Model) redraw() bool {
	snapshot := m.scene.SnapshotMesh()
	camera := m.scene.Camera()

	frame, err := m.renderer.Render(snapshot, camera)
	if err != nil {
		kind, _ := render.SurfaceKind(err)
		switch kind {
		case render.SurfaceLost:
			// Reconfigure the surface and continue; the next snapshot
			// will draw again.
			m.renderer.Resize(m.width, m.contentHeight())
		case render.SurfaceOutOfMemory:
			m.logger.Error("render surface out of memory", "error", err)
			return true
		default:
			// Drop the frame; the simulation does not depend on render
			// success.
			m.logger.Warn("dropping frame", "error", err)
		}
		return false
	}

	m.frame = frame
	m.frames++
	return false
}

// contentHeight is the surface height left after the footer rows.
func (m Model) contentHeight() int {
	h := m.height - 1
	if m.debug {
		h--
	}
	return h
}

// View renders the last frame plus the footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	view := m.frame
	if m.debug {
		view += "\n" + debugStyle.Render(fmt.Sprintf(
			"tick=%d camera=%+.2f frames=%d", m.loop.Tick(), m.scene.Camera(), m.frames))
	}
	return view + "\n" + m.help.View(m.keys)
}

// Run plays the toy on the local terminal until the user quits.
func Run(cfg config.Config, seed int64, logger *log.Logger) error {
	sc := scene.New()
	loop := game.New(sc, game.Options{
		Interval: time.Duration(cfg.Display.TickMillis) * time.Millisecond,
		Seed:     seed,
	})

	model := NewModel(loop, sc, logger, cfg.Display.Debug)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
