// Package: pathreplay/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices): one hub plus n-1 leaves.
//   • The hub is created first, at the centre of the leaves' ring.
//   • Emits spokes hub → leaf in leaf order; on a directed target each spoke
//     is followed by leaf → hub with the same weight.
//
// Complexity:
//   • Time: O(n) nodes + O(n-1) edges.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with a hub and n-1 leaves.
func Star(n int) Constructor {
	return func(t Target, cfg builderConfig) ([]string, error) {
		if n < minStarNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		leaves := n - 1
		r := cfg.ringRadius(leaves)
		ps := make([]point, 0, n)
		ps = append(ps, point{cfg.originX + r, cfg.originY + r})
		for i := 0; i < leaves; i++ {
			ps = append(ps, cfg.ringPos(i, leaves, r))
		}
		ids := addNodes(t, ps)

		for leaf := 1; leaf < n; leaf++ {
			cfg.linkBoth(t, ids, ps, 0, leaf)
		}

		return ids, nil
	}
}
