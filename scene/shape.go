package scene

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/pathreplay/builder"
)

// Shape kinds.
const (
	KindPath     = "path"
	KindCycle    = "cycle"
	KindStar     = "star"
	KindGrid     = "grid"
	KindComplete = "complete"
	KindRandom   = "random"
)

// DefaultShapePrefix names generated nodes when Shape.Prefix is empty.
const DefaultShapePrefix = "n"

// DefaultShapeSeed seeds random shapes and weights when Shape.Seed is unset.
const DefaultShapeSeed int64 = 1

// Shape describes a generated topology.
//
// Grid uses Rows and Cols; every other kind uses N. Random also uses P.
// Weights draws random whole weights; SpanWeight instead makes each edge
// cost SpanWeight per spacing unit of its drawn length. With neither every
// edge weighs builder.DefaultEdgeWeight.
type Shape struct {
	Kind       string       `yaml:"kind" validate:"required,oneof=path cycle star grid complete random"`
	N          int          `yaml:"n" validate:"gte=0"`
	Rows       int          `yaml:"rows" validate:"gte=0"`
	Cols       int          `yaml:"cols" validate:"gte=0"`
	P          float64      `yaml:"p" validate:"gte=0,lte=1"`
	Seed       *int64       `yaml:"seed,omitempty"`
	Weights    *WeightRange `yaml:"weights,omitempty"`
	SpanWeight float64      `yaml:"span_weight,omitempty" validate:"gte=0,excluded_with=Weights"`
	Prefix     string       `yaml:"prefix,omitempty"`
	Spacing    float64      `yaml:"spacing,omitempty" validate:"gte=0"`
}

// WeightRange draws whole edge weights uniformly from [Min, Max].
type WeightRange struct {
	Min int `yaml:"min" validate:"gte=0"`
	Max int `yaml:"max" validate:"gtefield=Min"`
}

// Count returns how many nodes the shape generates.
func (sh *Shape) Count() int {
	if sh == nil {
		return 0
	}
	if sh.Kind == KindGrid {
		return max(0, sh.Rows) * max(0, sh.Cols)
	}

	return max(0, sh.N)
}

// Constructor maps the shape onto a builder constructor.
func (sh *Shape) Constructor() (builder.Constructor, error) {
	switch sh.Kind {
	case KindPath:
		return builder.Path(sh.N), nil
	case KindCycle:
		return builder.Cycle(sh.N), nil
	case KindStar:
		return builder.Star(sh.N), nil
	case KindGrid:
		return builder.Grid(sh.Rows, sh.Cols), nil
	case KindComplete:
		return builder.Complete(sh.N), nil
	case KindRandom:
		return builder.RandomSparse(sh.N, sh.P), nil
	default:
		return nil, fmt.Errorf("%w: shape kind %q", ErrInvalid, sh.Kind)
	}
}

// Options returns the builder options the shape asks for.
func (sh *Shape) Options() []builder.BuilderOption {
	seed := DefaultShapeSeed
	if sh.Seed != nil {
		seed = *sh.Seed
	}
	opts := []builder.BuilderOption{builder.WithSeed(seed)}
	switch {
	case sh.Weights != nil:
		opts = append(opts, builder.WithWholeWeights(sh.Weights.Min, sh.Weights.Max))
	case sh.SpanWeight > 0:
		opts = append(opts, builder.WithSpanWeights(sh.SpanWeight))
	}
	if sh.Spacing > 0 {
		opts = append(opts, builder.WithSpacing(sh.Spacing))
	}

	return opts
}

// Build generates the shape into t and returns the new node IDs in order.
func (sh *Shape) Build(t builder.Target) ([]string, error) {
	ctor, err := sh.Constructor()
	if err != nil {
		return nil, err
	}
	ids, err := builder.Build(t, sh.Options(), ctor)
	if err != nil {
		return ids, fmt.Errorf("scene: shape %s: %w", sh.Kind, err)
	}

	return ids, nil
}

func (sh *Shape) name(i int) string {
	prefix := sh.Prefix
	if prefix == "" {
		prefix = DefaultShapePrefix
	}

	return prefix + strconv.Itoa(i)
}

func (sh *Shape) names() []string {
	n := sh.Count()
	out := make([]string, n)
	for i := range out {
		out[i] = sh.name(i)
	}

	return out
}
