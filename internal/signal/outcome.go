package signal

import "math/rand"

// OutcomeModifiers are the multiplicative penalties applied to a base defect
// rate. Each one is independently testable: holding it at the neutral 1.0
// (or zero, which normalizes to 1.0) removes that layer's contribution.
type OutcomeModifiers struct {
	ShiftEfficiency float64 // <1 raises the rate (divides into it)
	RushPenalty     float64 // >1 for rush/critical orders
	EnvPenalty      float64 // >1 under hostile environment (e.g. cleanroom humidity)
	DaysSince       int     // degradation input
	DegradePerDay   float64 // defect-rate growth per maintenance-free day
}

// RushDefectPenalty is the canonical rush-order defect multiplier.
const RushDefectPenalty = 1.8

// DefectProbability composes the layered outcome model:
//
//	base × (1/shift efficiency) × rush × environment × (1 + k·days since maintenance)
//
// The result is explicitly clamped to [0,1] before any uniform comparison;
// derived probabilities are never allowed to silently exceed 1.
func DefectProbability(base float64, m OutcomeModifiers) float64 {
	p := base
	p *= 1 / orNeutral(m.ShiftEfficiency)
	p *= orNeutral(m.RushPenalty)
	p *= orNeutral(m.EnvPenalty)
	p *= 1 + float64(m.DaysSince)*m.DegradePerDay
	return Clamp(p, 0, 1)
}

// Defective draws one unit's outcome against a defect probability.
func Defective(rng *rand.Rand, p float64) bool {
	return rng.Float64() < Clamp(p, 0, 1)
}

// DefectCount draws per-unit outcomes for a quantity and returns how many
// failed. One uniform draw per unit keeps quality events one-per-defective-
// unit downstream.
func DefectCount(rng *rand.Rand, quantity int, p float64) int {
	defects := 0
	for i := 0; i < quantity; i++ {
		if Defective(rng, p) {
			defects++
		}
	}
	return defects
}

// BreakdownKeepProbability is the degradation coupling for unplanned
// downtime: candidate events from the Poisson layer are kept with a
// probability that grows with maintenance-free time, so the Poisson count
// stays an upper bound and the coupling is explicit.
func BreakdownKeepProbability(daysSince int) float64 {
	return Clamp(0.3+0.04*float64(daysSince), 0, 1)
}

// HumidityDefectPenalty maps ambient humidity to the cleanroom defect
// multiplier: mild excursions over 50 %RH hurt, excursions past the alarm
// band hurt badly.
func HumidityDefectPenalty(humidity float64) float64 {
	switch {
	case humidity > 55:
		return 2.5
	case humidity > 50:
		return 1.5
	default:
		return 1.0
	}
}
