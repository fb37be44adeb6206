package game

import "sync"

// KeyState is the latched state of a control key.
type KeyState bool

// Key states.
const (
	Released KeyState = false
	Pressed  KeyState = true
)

// EventKind discriminates control events.
type EventKind int

// Event kinds. Left and Right carry a KeyState; Reset and Pause carry
// nothing.
const (
	EventLeft EventKind = iota
	EventRight
	EventReset
	EventPause
)

// Event is a discrete control message delivered to the simulation loop.
// Events are produced by the platform side and, for Reset, by the loop
// itself when the ball is lost.
type Event struct {
	Kind  EventKind
	State KeyState
}

// Left returns a steering event for the left control.
func Left(s KeyState) Event {
	return Event{Kind: EventLeft, State: s}
}

// Right returns a steering event for the right control.
func Right(s KeyState) Event {
	return Event{Kind: EventRight, State: s}
}

// Reset returns an event that respawns the ball.
func Reset() Event {
	return Event{Kind: EventReset}
}

// Pause returns an event that toggles the simulation's pause state.
func Pause() Event {
	return Event{Kind: EventPause}
}

// Controls is the latched key state the loop steers by. It is mutated only
// by drained events, once per tick.
type Controls struct {
	Left  KeyState
	Right KeyState
}

// Queue is an unbounded FIFO event queue with any number of producers and a
// single consumer. Push never blocks and Drain never waits: the simulation
// loop empties the whole backlog once per tick, so an event's effect is
// visible by the start of the tick after it was enqueued.
type Queue struct {
	mu      sync.Mutex
	pending []Event
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event. Safe for concurrent use.
func (q *Queue) Push(e Event) {
	q.mu.Lock()
	q.pending = append(q.pending, e)
	q.mu.Unlock()
}

// Drain removes and returns all queued events in enqueue order. Returns nil
// when the queue is empty.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}
