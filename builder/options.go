// Package: pathreplay/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders and weights.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeights sets how edge weights are drawn. Panics on nil.
func WithWeights(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeights(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithOrigin sets the top-left corner of the layout.
func WithOrigin(x, y float64) BuilderOption {
	return func(c *builderConfig) { c.originX, c.originY = x, y }
}

// WithSpacing sets the distance between adjacent nodes. Panics if d <= 0.
func WithSpacing(d float64) BuilderOption {
	if d <= 0 {
		panic(fmt.Sprintf("builder: WithSpacing(%g): spacing must be > 0", d))
	}

	return func(c *builderConfig) { c.spacing = d }
}
