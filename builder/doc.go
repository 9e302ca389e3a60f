// Package builder generates positioned fixture graphs: paths, cycles, stars,
// grids, complete graphs and random sparse graphs, laid out on a plane so
// that they can be drawn and hit-tested like hand-placed nodes.
//
// The package offers the following key components:
//
//   - Entry points:
//     – Build:       run constructors against any Target (a core.Graph or a session).
//     – BuildGraph:  create a core.Graph and run constructors against it.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – builderConfig: holds RNG, weight function, origin and spacing.
//   - Edge weights (WeightFn implementations):
//     – Unit:        DefaultEdgeWeight everywhere.
//     – Fixed:       one user-provided value, negatives allowed.
//     – Uniform:     ∼U[lo,hi).
//     – Whole:       whole numbers ∼U{lo..hi}.
//     – Gaussian:    ∼N(mean,sd), rounded and clipped at 0.
//     – Exponential: ∼Exp(rate), rounded.
//     – BySpan:      proportional to the drawn edge length.
//   - Layouts: line (Path), ring (Cycle, Complete, RandomSparse),
//     hub and ring (Star), lattice (Grid).
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical
//     positions, edge order and weights.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; invalid sizes return sentinel errors before
//     any node is added.
//
// Node IDs are issued by the Target; constructors return the IDs they
// created, in creation order.
package builder
