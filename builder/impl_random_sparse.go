// Package: pathreplay/builder
//
// impl_random_sparse.go: implementation of RandomSparse(n, p) constructor.
//
// Model:
//   • Erdős–Rényi-like G(n, p): every candidate pair is included independently
//     with probability p.
//   • Directed target: ordered pairs (i, j), i ≠ j. Undirected: pairs i < j.
//   • No self-loops.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   • cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1}
//     is deterministic and needs no RNG.
//
// Complexity:
//   • Time: O(n²) Bernoulli trials.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random graph over n
// nodes laid out on a ring, with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(t Target, cfg builderConfig) ([]string, error) {
		if n < minRandomSparseVertices {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return nil, fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ps := cfg.ring(n)
		ids := addNodes(t, ps)

		include := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}

		directed := t.Directed()
		for i := 0; i < n; i++ {
			j := i + 1
			if directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j {
					continue
				}
				if include() {
					cfg.link(t, ids, ps, i, j)
				}
			}
		}

		return ids, nil
	}
}
