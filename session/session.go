// Package session is the in-process boundary that presentation collaborators
// (canvas, forms, results panel) talk to. A Workspace owns one Graph, the
// current Result and one replay Controller, and exposes the commands and
// queries those collaborators need.
//
// A Result is bound to the graph revision it was computed from. Editing the
// graph afterwards does not touch the Result; Stale reports the mismatch so
// callers can decide whether to rerun.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/pathreplay/config"
	"github.com/katalvlaran/pathreplay/core"
	"github.com/katalvlaran/pathreplay/dijkstra"
	"github.com/katalvlaran/pathreplay/replay"
)

// ErrNoStart is returned by Run when no start node is selected. Nothing is mutated.
var ErrNoStart = errors.New("session: no start node selected")

// Workspace is the stateful facade over Graph, Result and replay Controller.
// It is safe for concurrent use: Run, Reset and ClearAll are serialized, so
// the stored Result is always the one the replay is bound to.
//
// Replay subscribers are notified synchronously from those calls and must
// not call them back on the same goroutine.
type Workspace struct {
	cfg      config.Config
	strategy dijkstra.Strategy
	log      zerolog.Logger

	graph  *core.Graph
	player *replay.Controller

	runMu  sync.Mutex // held across compute, store and bind
	mu     sync.RWMutex
	result *dijkstra.Result
}

// Option configures a Workspace.
type Option func(*wsOptions)

type wsOptions struct {
	log   zerolog.Logger
	clock replay.Clock
}

// WithLogger sets the logger for the workspace and its replay controller.
func WithLogger(l zerolog.Logger) Option {
	return func(o *wsOptions) { o.log = l }
}

// WithClock sets the clock driving replay ticks.
func WithClock(c replay.Clock) Option {
	return func(o *wsOptions) { o.clock = c }
}

// New creates an empty Workspace from cfg.
//
// Errors:
//   - config.ErrInvalid if cfg fails validation.
func New(cfg config.Config, opts ...Option) (*Workspace, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	strategy, err := dijkstra.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	o := wsOptions{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	w := &Workspace{
		cfg:      cfg,
		strategy: strategy,
		log:      o.log.With().Str("component", "session").Logger(),
		graph:    core.NewGraph(core.WithDirected(cfg.Directed)),
	}
	w.player = replay.New(
		replay.WithInterval(cfg.TickInterval),
		replay.WithClock(o.clock),
		replay.WithLogger(o.log.With().Str("component", "replay").Logger()),
	)

	return w, nil
}

// Config returns the settings the workspace was built with.
func (w *Workspace) Config() config.Config { return w.cfg }

// Graph exposes the model for read queries (Nodes, Edges, Start, ...).
// Mutate through the Workspace so that logging and replay stay consistent.
func (w *Workspace) Graph() *core.Graph { return w.graph }

// Player exposes the replay controller, e.g. to Subscribe to frames.
func (w *Workspace) Player() *replay.Controller { return w.player }

// ---------------------------------------------------------------------------
// Graph commands
// ---------------------------------------------------------------------------

// AddNode creates a node at (x, y) and returns its ID.
func (w *Workspace) AddNode(x, y float64) string {
	id := w.graph.AddNode(x, y)
	w.log.Debug().Str("node", id).Float64("x", x).Float64("y", y).Msg("node added")

	return id
}

// RemoveNode deletes a node, its edges and any selection pointing at it.
func (w *Workspace) RemoveNode(id string) bool {
	ok := w.graph.RemoveNode(id)
	if ok {
		w.log.Debug().Str("node", id).Msg("node removed")
	}

	return ok
}

// AddEdge appends an edge without input validation.
func (w *Workspace) AddEdge(from, to string, weight float64) int {
	return w.graph.AddEdge(from, to, weight)
}

// SubmitEdge validates raw form input and, if valid, appends the edge.
//
// Returns:
//   - EdgeInput: the accepted edge; Negative is the advisory flag.
//   - int:       the new edge index.
//   - error:     a core validation sentinel; the graph is not mutated.
func (w *Workspace) SubmitEdge(from, to, weightText string) (core.EdgeInput, int, error) {
	in, err := w.graph.CheckEdgeInput(from, to, weightText)
	if err != nil {
		w.log.Debug().Err(err).Str("from", from).Str("to", to).Msg("edge rejected")
		return core.EdgeInput{}, -1, err
	}
	idx := w.graph.AddEdge(in.From, in.To, in.Weight)
	if in.Negative {
		w.log.Warn().Str("from", in.From).Str("to", in.To).Float64("weight", in.Weight).
			Msg("negative edge weight: shortest paths are best-effort")
	}

	return in, idx, nil
}

// RemoveEdge removes the edge at index.
func (w *Workspace) RemoveEdge(index int) error { return w.graph.RemoveEdge(index) }

// SetDirected switches graph directedness.
func (w *Workspace) SetDirected(directed bool) { w.graph.SetDirected(directed) }

// Directed reports the graph's current directedness.
func (w *Workspace) Directed() bool { return w.graph.Directed() }

// SetStart sets (or with "" clears) the start selection.
func (w *Workspace) SetStart(id string) error { return w.graph.SetStart(id) }

// SetEnd sets (or with "" clears) the end selection.
func (w *Workspace) SetEnd(id string) error { return w.graph.SetEnd(id) }

// Select applies pointer toggling to the selection; see core.Graph.Select.
func (w *Workspace) Select(id string) error { return w.graph.Select(id) }

// Click is a pointer press at (x, y): a node within the configured hit radius
// is selected, otherwise a new node is created there.
//
// Returns the affected node ID and whether it was newly created.
func (w *Workspace) Click(x, y float64) (string, bool, error) {
	if id, ok := w.graph.NodeAt(x, y, w.cfg.HitRadius); ok {
		return id, false, w.graph.Select(id)
	}

	return w.AddNode(x, y), true, nil
}

// ---------------------------------------------------------------------------
// Run / replay commands
// ---------------------------------------------------------------------------

// Run computes shortest paths from the start node (towards the end node, if
// selected) on a snapshot of the current graph, binds the replay to the new
// Result and starts playback.
//
// Errors:
//   - ErrNoStart: no start selection; nothing changes.
//   - dijkstra errors, wrapped; the previous Result stays bound.
func (w *Workspace) Run() (*dijkstra.Result, error) {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	start, ok := w.graph.Start()
	if !ok {
		return nil, ErrNoStart
	}
	end, _ := w.graph.End()
	snap := w.graph.Snapshot()

	res, err := dijkstra.Compute(snap,
		dijkstra.Source(start),
		dijkstra.Target(end),
		dijkstra.WithStrategy(w.strategy),
	)
	if err != nil {
		return nil, fmt.Errorf("session: run: %w", err)
	}

	w.mu.Lock()
	w.result = res
	w.mu.Unlock()

	if err := w.player.Bind(res); err != nil {
		return nil, fmt.Errorf("session: run: %w", err)
	}
	if err := w.player.Play(); err != nil {
		return nil, fmt.Errorf("session: run: %w", err)
	}

	ev := w.log.Info().
		Str("run", res.RunID()).
		Str("source", start).
		Int("visited", res.Len()).
		Bool("directed", res.Directed())
	if end != "" {
		ev = ev.Str("target", end).Bool("found", res.Found())
	}
	if res.HasNegativeWeights() {
		ev = ev.Bool("negative_weights", true)
	}
	ev.Msg("shortest paths computed")

	return res, nil
}

// Play resumes (or restarts from Finished) the replay.
func (w *Workspace) Play() error { return w.player.Play() }

// Stop pauses the replay at the current cursor.
func (w *Workspace) Stop() { w.player.Stop() }

// Step advances the replay cursor by one.
func (w *Workspace) Step() error { return w.player.Step() }

// Seek moves the replay cursor, clamped to the timeline.
func (w *Workspace) Seek(i int) error { return w.player.Seek(i) }

// Reset drops the Result and the replay cursor and clears start/end.
// The graph itself is kept.
func (w *Workspace) Reset() {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	w.player.Reset()
	w.mu.Lock()
	w.result = nil
	w.mu.Unlock()
	w.graph.ClearSelection()
	w.log.Debug().Msg("workspace reset")
}

// ClearAll empties the graph, drops the Result and the cursor, and clears the selection.
func (w *Workspace) ClearAll() {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	w.player.Reset()
	w.mu.Lock()
	w.result = nil
	w.mu.Unlock()
	w.graph.Clear()
	w.log.Debug().Msg("workspace cleared")
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// Result returns the current Result, or nil.
func (w *Workspace) Result() *dijkstra.Result {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.result
}

// Frame returns the replay state and cursor.
func (w *Workspace) Frame() replay.Frame { return w.player.Frame() }

// Stale reports whether a Result is bound and the graph changed since it was computed.
func (w *Workspace) Stale() bool {
	res := w.Result()

	return res != nil && res.Revision() != w.graph.Revision()
}
