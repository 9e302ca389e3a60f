// Package replay turns a finished computation's visit order into a steppable
// timeline: a single cursor that advances on a fixed cadence or on demand.
//
// State machine:
//
//	Idle      nothing bound; no cursor.
//	Ready     bound, not advancing; Bind always lands here with cursor 0.
//	Advancing a tick timer is pending; each tick moves the cursor by one.
//	Finished  cursor on the last index, not advancing.
//
// Transitions:
//
//	Bind            any       → Ready (cursor 0)
//	Play            Ready     → Advancing, or Finished if already on the last index
//	Play            Finished  → rewinds to 0, then as from Ready
//	tick            Advancing → Advancing, or Finished when the last index is reached
//	Step, Seek      any bound → Finished iff cursor is on the last index, else Ready/Advancing
//	Stop            Advancing → Ready (cursor kept)
//	Reset           any       → Idle
//
// Concurrency:
//
// The tick timer fires on its own goroutine; every method takes the
// controller's mutex, so ticks and caller events are serialized. Each
// scheduled tick carries a generation number that Bind, Stop, Reset and the
// Finished transition invalidate, so a timer that was already firing when it
// was cancelled cannot move the cursor afterwards.
package replay

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultInterval is the cadence between ticks.
const DefaultInterval = 500 * time.Millisecond

// Sentinel errors for replay operations.
var (
	// ErrNotBound indicates an operation that needs a bound timeline was called in Idle.
	ErrNotBound = errors.New("replay: no timeline bound")

	// ErrNilTimeline indicates Bind was called with a nil timeline.
	ErrNilTimeline = errors.New("replay: timeline is nil")
)

// State is the replay controller's state.
type State int

const (
	Idle State = iota
	Ready
	Advancing
	Finished
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Ready:
		return "ready"
	case Advancing:
		return "advancing"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Timeline is anything with a number of steps. *dijkstra.Result satisfies it
// through the length of its visit order.
type Timeline interface {
	Len() int
}

// Frame is a consistent view of the controller at one instant.
type Frame struct {
	State  State
	Cursor int // valid unless State == Idle or Len == 0
	Len    int // timeline length; 0 when Idle
}

// Revealed returns how many timeline entries the cursor has revealed:
// cursor+1, capped at Len, and 0 when Idle.
func (f Frame) Revealed() int {
	if f.State == Idle {
		return 0
	}

	return min(f.Cursor+1, f.Len)
}

// Controller drives the replay cursor. The zero value is not usable; call New.
type Controller struct {
	mu       sync.Mutex
	clock    Clock
	interval time.Duration
	log      zerolog.Logger

	state  State
	cursor int
	length int

	timer Timer
	gen   uint64 // bumped to invalidate a scheduled tick

	subs    []subscriber
	nextSub int
}

type subscriber struct {
	id int
	fn func(Frame)
}

// Option configures a Controller.
type Option func(*Controller)

// WithInterval sets the tick cadence. Panics if d <= 0.
func WithInterval(d time.Duration) Option {
	if d <= 0 {
		panic(fmt.Sprintf("replay: interval must be positive, got %s", d))
	}

	return func(c *Controller) { c.interval = d }
}

// WithClock replaces the wall clock, mainly for tests.
func WithClock(clk Clock) Option {
	return func(c *Controller) {
		if clk != nil {
			c.clock = clk
		}
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// New returns an Idle controller.
func New(opts ...Option) *Controller {
	c := &Controller{
		clock:    SystemClock(),
		interval: DefaultInterval,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Interval returns the tick cadence.
func (c *Controller) Interval() time.Duration { return c.interval }

// Bind attaches t and moves to Ready with the cursor at 0, whatever the
// previous state. Any pending tick is cancelled.
//
// An empty timeline is bound like any other, but it has no valid cursor:
// Cursor reports false and Revealed stays 0.
func (c *Controller) Bind(t Timeline) error {
	if t == nil {
		return ErrNilTimeline
	}
	c.mu.Lock()
	c.cancelLocked()
	c.state = Ready
	c.cursor = 0
	c.length = t.Len()
	f := c.frameLocked()
	c.mu.Unlock()

	c.log.Debug().Int("len", f.Len).Msg("replay bound")
	c.notify(f)

	return nil
}

// Play starts advancing. From Finished the cursor rewinds to 0 first.
// If the cursor is already on the last index the controller goes straight
// to Finished without scheduling a tick. Playing while Advancing is a no-op.
//
// Errors:
//   - ErrNotBound in Idle.
func (c *Controller) Play() error {
	c.mu.Lock()
	switch c.state {
	case Idle:
		c.mu.Unlock()
		return ErrNotBound
	case Advancing:
		c.mu.Unlock()
		return nil
	case Finished:
		c.cursor = 0
	}
	if c.atEndLocked() {
		c.state = Finished
	} else {
		c.state = Advancing
		c.scheduleLocked()
	}
	f := c.frameLocked()
	c.mu.Unlock()

	c.log.Debug().Stringer("state", f.State).Int("cursor", f.Cursor).Msg("replay play")
	c.notify(f)

	return nil
}

// Stop halts advancing and keeps the cursor where it is. It is a no-op
// unless the controller is Advancing.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.state != Advancing {
		c.mu.Unlock()
		return
	}
	c.cancelLocked()
	c.state = Ready
	f := c.frameLocked()
	c.mu.Unlock()

	c.log.Debug().Int("cursor", f.Cursor).Msg("replay stopped")
	c.notify(f)
}

// Step moves the cursor forward by one, on demand, without exceeding the
// last index.
//
// Errors:
//   - ErrNotBound in Idle.
func (c *Controller) Step() error {
	c.mu.Lock()
	if c.state == Idle {
		c.mu.Unlock()
		return ErrNotBound
	}

	return c.moveLocked(c.cursor + 1)
}

// Seek sets the cursor, clamped to [0, Len-1].
//
// Errors:
//   - ErrNotBound in Idle.
func (c *Controller) Seek(i int) error {
	c.mu.Lock()
	if c.state == Idle {
		c.mu.Unlock()
		return ErrNotBound
	}

	return c.moveLocked(i)
}

// Reset discards the timeline and the cursor and returns to Idle.
func (c *Controller) Reset() {
	c.mu.Lock()
	if c.state == Idle {
		c.mu.Unlock()
		return
	}
	c.cancelLocked()
	c.state = Idle
	c.cursor = 0
	c.length = 0
	f := c.frameLocked()
	c.mu.Unlock()

	c.log.Debug().Msg("replay reset")
	c.notify(f)
}

// Frame returns the current state, cursor and length.
func (c *Controller) Frame() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.frameLocked()
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Cursor returns the cursor, and false when Idle or bound to an empty
// timeline.
func (c *Controller) Cursor() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cursor, c.state != Idle && c.length > 0
}

// Subscribe registers fn to receive a Frame after every state or cursor
// change, and returns a function that unregisters it. fn is called outside
// the controller's lock and may call back into the controller.
func (c *Controller) Subscribe(fn func(Frame)) (cancel func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs = append(c.subs, subscriber{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// tick is the timer callback for generation gen.
func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.state != Advancing {
		c.mu.Unlock()
		staleTicks.Inc()
		c.log.Debug().Uint64("gen", gen).Msg("replay dropped stale tick")
		return
	}
	c.timer = nil
	c.cursor++
	if c.atEndLocked() {
		c.state = Finished
		c.gen++
	} else {
		c.scheduleLocked()
	}
	f := c.frameLocked()
	c.mu.Unlock()

	appliedTicks.Inc()
	c.log.Debug().Stringer("state", f.State).Int("cursor", f.Cursor).Msg("replay tick")
	c.notify(f)
}

// moveLocked clamps and applies a manual cursor move, then reclassifies.
// It releases c.mu before notifying.
func (c *Controller) moveLocked(i int) error {
	c.cursor = clamp(i, 0, c.length-1)
	switch {
	case c.atEndLocked():
		if c.state == Advancing {
			c.cancelLocked()
		}
		c.state = Finished
	case c.state == Finished:
		c.state = Ready
	}
	f := c.frameLocked()
	c.mu.Unlock()

	c.notify(f)

	return nil
}

// scheduleLocked arms one tick for the current generation.
func (c *Controller) scheduleLocked() {
	gen := c.gen
	c.timer = c.clock.AfterFunc(c.interval, func() { c.tick(gen) })
}

// cancelLocked stops the pending timer and invalidates its generation.
func (c *Controller) cancelLocked() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) atEndLocked() bool { return c.cursor >= c.length-1 }

func (c *Controller) frameLocked() Frame {
	return Frame{State: c.state, Cursor: c.cursor, Len: c.length}
}

func (c *Controller) notify(f Frame) {
	c.mu.Lock()
	subs := c.subs
	c.mu.Unlock()

	for _, s := range subs {
		s.fn(f)
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}

	return max(lo, min(v, hi))
}
