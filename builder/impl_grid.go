// Package: pathreplay/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighbourhood (right & bottom neighbours per cell).
//   • Nodes laid out on a lattice in row-major order, spacing apart.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Adds edges to right (r,c+1) and bottom (r+1,c) neighbours where they exist.
//     On a directed target, also emits the reverse arc with the same weight.
//
// Complexity:
//   • Time: O(rows*cols) nodes + O(rows*cols) edges.
//
// Determinism:
//   • Stable node order: row-major (r asc, then c asc).
//   • Stable edge order: for each (r,c) emit Right then Bottom if present.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
// The returned IDs are in row-major order: cell (r, c) is ids[r*cols+c].
func Grid(rows, cols int) Constructor {
	return func(t Target, cfg builderConfig) ([]string, error) {
		if rows < minGridDim || cols < minGridDim {
			return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		ps := make([]point, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				ps = append(ps, cfg.latticePos(r, c))
			}
		}
		ids := addNodes(t, ps)

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					cfg.linkBoth(t, ids, ps, u, u+1)
				}
				if r+1 < rows {
					cfg.linkBoth(t, ids, ps, u, u+cols)
				}
			}
		}

		return ids, nil
	}
}
