// File: methods_selection.go
// Role: Weak start/end selection carried alongside the graph.
//
// Invariant:
//   - start and end are either "" or the ID of an existing node.
//     RemoveNode and Clear maintain this.

package core

import "fmt"

// SetStart sets the start selection. An empty id clears it.
//
// Errors:
//   - ErrNodeNotFound: id is non-empty and not in the graph; selection unchanged.
func (g *Graph) SetStart(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkSelectable(id); err != nil {
		return fmt.Errorf("set start: %w", err)
	}
	if g.start != id {
		g.start = id
		g.touch()
	}

	return nil
}

// SetEnd sets the end selection. An empty id clears it.
//
// Errors:
//   - ErrNodeNotFound: id is non-empty and not in the graph; selection unchanged.
func (g *Graph) SetEnd(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkSelectable(id); err != nil {
		return fmt.Errorf("set end: %w", err)
	}
	if g.end != id {
		g.end = id
		g.touch()
	}

	return nil
}

// Start returns the start selection and whether it is set.
func (g *Graph) Start() (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.start, g.start != ""
}

// End returns the end selection and whether it is set.
func (g *Graph) End() (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.end, g.end != ""
}

// ClearSelection clears both start and end.
func (g *Graph) ClearSelection() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.start == "" && g.end == "" {
		return
	}
	g.start, g.end = "", ""
	g.touch()
}

// Select applies pointer-style toggling to the selection:
//
//  1. no start             → start = id
//  2. no end, id != start  → end = id
//  3. id == start          → start cleared
//  4. id == end            → end cleared
//  5. otherwise            → start = id (end is left as-is)
//
// Rule 5 replaces rather than clears; pointer collaborators depend on it.
//
// Errors:
//   - ErrEmptyNodeID, ErrNodeNotFound: selection unchanged.
func (g *Graph) Select(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.index[id]; !ok {
		return fmt.Errorf("select %q: %w", id, ErrNodeNotFound)
	}

	switch {
	case g.start == "":
		g.start = id
	case g.end == "" && id != g.start:
		g.end = id
	case id == g.start:
		g.start = ""
	case id == g.end:
		g.end = ""
	default:
		g.start = id
	}
	g.touch()

	return nil
}

// checkSelectable validates a selection target. Caller must hold mu.
func (g *Graph) checkSelectable(id string) error {
	if id == "" {
		return nil
	}
	if _, ok := g.index[id]; !ok {
		return fmt.Errorf("%q: %w", id, ErrNodeNotFound)
	}

	return nil
}
