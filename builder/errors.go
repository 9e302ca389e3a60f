// Package: pathreplay/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with %w; they never panic at runtime.
//     Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not proceed, e.g. a nil
// constructor or a nil target.
var ErrConstructFailed = errors.New("builder: construction failed")
