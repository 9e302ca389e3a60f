// Package: pathreplay/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng       = nil            (pure/deterministic unless seeded)
//   • weightFn  = Unit
//   • origin    = (DefaultMargin, DefaultMargin)
//   • spacing   = DefaultSpacing

package builder

import "math/rand"

// Layout defaults, in canvas units. DefaultSpacing keeps neighbouring nodes
// well outside each other's default hit radius.
const (
	DefaultSpacing = 100.0
	DefaultMargin  = 50.0
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn

	// Top-left corner of the layout's bounding box.
	originX, originY float64
	// Distance between adjacent nodes along a line, lattice or ring.
	spacing float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: Unit,
		originX:  DefaultMargin,
		originY:  DefaultMargin,
		spacing:  DefaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// link adds the edge ids[i] → ids[j], weighed by the configured WeightFn from
// the drawn distance between ps[i] and ps[j], and returns the weight.
func (c builderConfig) link(t Target, ids []string, ps []point, i, j int) float64 {
	w := c.weightFn(c.rng, ps[i].dist(ps[j])/c.spacing)
	t.AddEdge(ids[i], ids[j], w)

	return w
}

// linkBoth is link plus, on a directed target, the reverse arc with the same
// weight, so shapes that are symmetric when drawn stay traversable both ways.
func (c builderConfig) linkBoth(t Target, ids []string, ps []point, i, j int) {
	w := c.link(t, ids, ps, i, j)
	if t.Directed() {
		t.AddEdge(ids[j], ids[i], w)
	}
}
