// Package signal implements the layered stochastic model that turns an
// asset's latent state and context into observed sensor values and pass/fail
// production outcomes. Layers compose in a fixed order: effective noise scale
// first (context multipliers), then one distribution draw, then additive
// degradation and seasonal offsets, then the physical clamp.
package signal

import (
	"math"
	"math/rand"
)

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// LogNormal draws from a log-normal distribution parameterized by the mean
// and standard deviation of the resulting (not the underlying normal)
// quantity, which is how sensor baselines are specified.
func LogNormal(rng *rand.Rand, mean, std float64) float64 {
	sigma2 := math.Log(1 + (std/mean)*(std/mean))
	sigma := math.Sqrt(sigma2)
	mu := math.Log(mean) - 0.5*sigma2
	return math.Exp(mu + sigma*rng.NormFloat64())
}

// poissonNormalCutoff is the rate above which the normal approximation is
// close enough for synthetic data and far cheaper than exact inversion.
const poissonNormalCutoff = 30

// Poisson draws a count with the given rate. Small rates use Knuth's
// multiplication method; large ones a rounded normal approximation.
func Poisson(rng *rand.Rand, lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	if lambda >= poissonNormalCutoff {
		n := math.Round(lambda + math.Sqrt(lambda)*rng.NormFloat64())
		if n < 0 {
			return 0
		}
		return int(n)
	}
	limit := math.Exp(-lambda)
	product := rng.Float64()
	count := 0
	for product > limit {
		count++
		product *= rng.Float64()
	}
	return count
}

// WeightedIndex picks an index with probability proportional to its weight.
// Weights need not sum to one but must be non-negative with a positive total.
func WeightedIndex(rng *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	u := rng.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if u < cum {
			return i
		}
	}
	return len(weights) - 1
}
