// Package: pathreplay/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Nodes on a ring, node 0 at the top.
//   • Emits edges in stable order i → (i+1)%n for i=0..n-1.
//     On a directed target each is followed by its reverse with the same weight.
//
// Complexity:
//   • Time: O(n) nodes + O(n) edges.
//
// Determinism:
//   • Deterministic edge emission order by increasing i.
//   • Deterministic weights given fixed cfg.rng/weightFn.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-node simple cycle C_n.
func Cycle(n int) Constructor {
	return func(t Target, cfg builderConfig) ([]string, error) {
		if n < minCycleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		ps := cfg.ring(n)
		ids := addNodes(t, ps)

		// For i == n-1 connect back to 0 to close the ring.
		for i := 0; i < n; i++ {
			cfg.linkBoth(t, ids, ps, i, (i+1)%n)
		}

		return ids, nil
	}
}
