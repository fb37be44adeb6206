package tui

import (
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-paddle/internal/game"
)

// KeyMap declares the game key bindings. It satisfies help.KeyMap so the
// footer can describe itself.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Reset key.Binding
	Pause key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "steer left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "steer right"),
		),
		Reset: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "reset ball"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Reset, k.Pause, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// holdTimeout is how long a direction stays pressed after its last key
// message. It has to bridge the terminal's initial auto-repeat delay, or a
// held key would flicker released between the first press and the first
// repeat.
const holdTimeout = 400 * time.Millisecond

// keyHold synthesizes the press/release pair the simulation's latched
// controls expect from a terminal's press-only key stream: a direction is
// considered held from its first key message until auto-repeat stops
// arriving for holdTimeout.
type keyHold struct {
	mu    sync.Mutex
	queue *game.Queue
	event func(game.KeyState) game.Event
	timer *time.Timer
}

func newKeyHold(queue *game.Queue, event func(game.KeyState) game.Event) *keyHold {
	return &keyHold{queue: queue, event: event}
}

// press records a key message, enqueueing a Pressed event on the first one
// and pushing the synthetic release further out on repeats.
func (h *keyHold) press() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.timer == nil {
		h.queue.Push(h.event(game.Pressed))
		h.timer = time.AfterFunc(holdTimeout, h.expire)
		return
	}
	h.timer.Reset(holdTimeout)
}

// expire fires on the timer goroutine once repeats stop.
func (h *keyHold) expire() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.timer == nil {
		return
	}
	h.timer = nil
	h.queue.Push(h.event(game.Released))
}

// stop cancels any pending synthetic release.
func (h *keyHold) stop() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
}
