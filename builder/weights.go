package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every generated edge unless a WeightFn
// says otherwise.
const DefaultEdgeWeight float64 = 1

// WeightFn draws the weight of one generated edge.
//
// span is the drawn length of the edge in spacing units: 1 between line or
// lattice neighbours, a chord fraction on rings. rng is nil when the builder
// was not seeded; distributions then return their central value so that
// unseeded builds stay reproducible.
type WeightFn func(rng *rand.Rand, span float64) float64

// Unit weighs every edge DefaultEdgeWeight.
func Unit(_ *rand.Rand, _ float64) float64 { return DefaultEdgeWeight }

// Fixed weighs every edge w. Negative values are accepted so that fixtures
// can trigger the negative-weight advisory. Panics if w is not finite.
func Fixed(w float64) WeightFn {
	mustFinite("Fixed", w)

	return func(_ *rand.Rand, _ float64) float64 { return w }
}

// Uniform draws from [lo, hi). Panics unless 0 ≤ lo ≤ hi.
func Uniform(lo, hi float64) WeightFn {
	mustFinite("Uniform", lo, hi)
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("builder: Uniform(%g, %g): need 0 ≤ lo ≤ hi", lo, hi))
	}

	return func(rng *rand.Rand, _ float64) float64 {
		if rng == nil {
			return (lo + hi) / 2
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// Whole draws whole numbers from [lo, hi], both ends included.
// Panics unless 0 ≤ lo ≤ hi.
func Whole(lo, hi int) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("builder: Whole(%d, %d): need 0 ≤ lo ≤ hi", lo, hi))
	}

	return func(rng *rand.Rand, _ float64) float64 {
		if rng == nil {
			return math.Round(float64(lo+hi) / 2)
		}

		return float64(lo + rng.Intn(hi-lo+1))
	}
}

// Gaussian draws from N(mean, sd), rounded to a whole number and clipped
// at 0. Panics if sd < 0.
func Gaussian(mean, sd float64) WeightFn {
	mustFinite("Gaussian", mean, sd)
	if sd < 0 {
		panic(fmt.Sprintf("builder: Gaussian(%g, %g): sd must be ≥ 0", mean, sd))
	}

	return func(rng *rand.Rand, _ float64) float64 {
		x := mean
		if rng != nil {
			x += rng.NormFloat64() * sd
		}

		return math.Max(0, math.Round(x))
	}
}

// Exponential draws from Exp(rate) (mean 1/rate), rounded to a whole number.
// Panics if rate ≤ 0.
func Exponential(rate float64) WeightFn {
	mustFinite("Exponential", rate)
	if rate <= 0 {
		panic(fmt.Sprintf("builder: Exponential(%g): rate must be > 0", rate))
	}

	return func(rng *rand.Rand, _ float64) float64 {
		if rng == nil {
			return math.Round(1 / rate)
		}

		return math.Round(rng.ExpFloat64() / rate)
	}
}

// BySpan weighs an edge by its drawn length: perUnit per spacing unit,
// rounded to a whole number and never below 1. The result matches what a
// user sees on the canvas, so long edges cost more. Panics if perUnit ≤ 0.
func BySpan(perUnit float64) WeightFn {
	mustFinite("BySpan", perUnit)
	if perUnit <= 0 {
		panic(fmt.Sprintf("builder: BySpan(%g): perUnit must be > 0", perUnit))
	}

	return func(_ *rand.Rand, span float64) float64 {
		return math.Max(1, math.Round(span*perUnit))
	}
}

func mustFinite(fn string, vs ...float64) {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(fmt.Sprintf("builder: %s: %g is not finite", fn, v))
		}
	}
}

// WithFixedWeight is WithWeights(Fixed(w)).
func WithFixedWeight(w float64) BuilderOption { return WithWeights(Fixed(w)) }

// WithUniformWeights is WithWeights(Uniform(lo, hi)).
func WithUniformWeights(lo, hi float64) BuilderOption { return WithWeights(Uniform(lo, hi)) }

// WithWholeWeights is WithWeights(Whole(lo, hi)).
func WithWholeWeights(lo, hi int) BuilderOption { return WithWeights(Whole(lo, hi)) }

// WithGaussianWeights is WithWeights(Gaussian(mean, sd)).
func WithGaussianWeights(mean, sd float64) BuilderOption { return WithWeights(Gaussian(mean, sd)) }

// WithExponentialWeights is WithWeights(Exponential(rate)).
func WithExponentialWeights(rate float64) BuilderOption { return WithWeights(Exponential(rate)) }

// WithSpanWeights is WithWeights(BySpan(perUnit)).
func WithSpanWeights(perUnit float64) BuilderOption { return WithWeights(BySpan(perUnit)) }
