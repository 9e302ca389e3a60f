// Package pathreplay is an interactive shortest-path workbench: place nodes,
// connect them with weighted edges, pick a start and an end, and watch
// Dijkstra's algorithm settle the graph one node per tick.
//
// 🚀 What is in the box?
//
//	• Graph model: positioned nodes, weighted edges, directed or undirected,
//	  start/end selection with pointer-style toggling
//	• Shortest paths: Dijkstra with a heap or a linear scan, identical output,
//	  settle order recorded for replay
//	• Replay: a cancellable tick-driven cursor over the settle order with
//	  play, stop, step and seek
//	• Scenes & generators: YAML scenes and seeded path/cycle/star/grid/complete
//	  and random layouts
//
// Under the hood, everything is organized into small subpackages:
//
//	core/     Graph, Node, Edge, Snapshot and edge-input validation
//	dijkstra/ the shortest-path engine and its Result
//	replay/   the replay state machine and its clock
//	session/  the workspace facade used by a canvas or a CLI
//	config/   YAML settings with validation
//	builder/  positioned topology generators
//	scene/    YAML scene files
//	cmd/      the pathreplay command
//
// Quick ASCII example:
//
//	    A──1──B
//	     \    │
//	      5   2
//	       \  │
//	        ──C
//
//	from A the cheapest way to C is A→B→C with cost 3; the replay settles
//	A, then B, then C.
//
//	go install github.com/katalvlaran/pathreplay/cmd/pathreplay@latest
package pathreplay
