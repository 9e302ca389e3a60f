package session

import (
	"math"
	"strconv"

	"github.com/katalvlaran/pathreplay/replay"
)

// Infinity is how an unreachable distance is rendered.
const Infinity = "∞"

// NodeDistance is one row of the per-node distance table.
type NodeDistance struct {
	ID       string
	Distance float64 // dijkstra.Unreachable if no path
	Visited  bool    // finalized within the revealed prefix
	OnPath   bool
}

// Report is the results panel content for the current Result and replay cursor.
type Report struct {
	RunID           string
	Source          string
	Target          string // "" when no end was selected
	PathFound       bool
	Path            []string
	Distance        float64 // path cost, dijkstra.Unreachable without a path
	Visited         []string
	Frame           replay.Frame
	Nodes           []NodeDistance
	NegativeWeights bool
	Stale           bool
}

// Report builds the results view. ok is false when no Result is bound.
//
// Only the visit prefix revealed by the replay cursor is reported as visited;
// distances and the path are always complete.
func (w *Workspace) Report() (Report, bool) {
	res := w.Result()
	if res == nil {
		return Report{}, false
	}
	f := w.Frame()

	rep := Report{
		RunID:           res.RunID(),
		Source:          res.Source(),
		Target:          res.Target(),
		PathFound:       res.Found(),
		Path:            res.Path(),
		Distance:        res.PathCost(),
		Frame:           f,
		NegativeWeights: res.HasNegativeWeights(),
		Stale:           w.Stale(),
	}
	if f.State != replay.Idle {
		rep.Visited = res.VisitedUpTo(f.Cursor)
	}

	seen := make(map[string]struct{}, len(rep.Visited))
	for _, id := range rep.Visited {
		seen[id] = struct{}{}
	}
	for _, id := range res.Nodes() {
		d, _ := res.Distance(id)
		_, visited := seen[id]
		rep.Nodes = append(rep.Nodes, NodeDistance{
			ID:       id,
			Distance: d,
			Visited:  visited,
			OnPath:   res.OnPath(id),
		})
	}

	return rep, true
}

// FormatDistance renders d compactly, using Infinity for unreachable values.
func FormatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return Infinity
	}

	return strconv.FormatFloat(d, 'g', -1, 64)
}
