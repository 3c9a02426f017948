package signal

import (
	"math"
	"math/rand"
	"time"

	"factory-sim-backend/internal/catalog"
)

// Context carries the per-reading modifiers the layered model composes.
// Multipliers left at zero are treated as the neutral 1.0 so callers only
// set the layers they mean to engage.
type Context struct {
	ShiftNoiseMult float64 // night shifts run noisier
	RushMult       float64 // rush/critical orders widen variance
	BottleneckMult float64 // constrained assets carry extra stress variance
	DaysSince      int     // days since last maintenance (degradation input)
	At             time.Time
}

func orNeutral(m float64) float64 {
	if m == 0 {
		return 1.0
	}
	return m
}

// RushNoiseMult and BottleneckNoiseMult are the canonical widening factors.
const (
	RushNoiseMult       = 1.35
	BottleneckNoiseMult = 1.15
)

// Value generates one observed sensor value. The composition order is fixed:
//
//  1. effective noise scale = sensor noise × shift × rush × bottleneck
//  2. one distribution-appropriate draw at that scale
//  3. degradation drift (location shift, may be negative)
//  4. seasonal/daily offsets per the sensor's season class
//  5. physical clamp on the summed value
func Value(rng *rand.Rand, s catalog.SensorSpec, ctx Context) float64 {
	scaleMult := orNeutral(ctx.ShiftNoiseMult) * orNeutral(ctx.RushMult) * orNeutral(ctx.BottleneckMult)
	effectiveStd := s.NoiseStd * scaleMult

	var noise float64
	switch s.Dist {
	case catalog.DistLogNormal:
		noise = LogNormal(rng, s.Baseline, effectiveStd) - s.Baseline
	case catalog.DistPoisson:
		// Poisson counts have no free scale parameter; widen the deviation
		// from the mean instead so context still broadens the spread.
		noise = (float64(Poisson(rng, s.Baseline)) - s.Baseline) * scaleMult
	default:
		noise = rng.NormFloat64() * effectiveStd
	}

	degradation := s.DegradePerDay * float64(ctx.DaysSince)

	var seasonal, daily float64
	switch s.Season {
	case catalog.SeasonTemperature:
		seasonal = SeasonalTempOffset(ctx.At)
		daily = DailyThermalCycle(ctx.At.Hour())
	case catalog.SeasonHumidity:
		seasonal = SeasonalHumidityOffset(ctx.At)
	case catalog.SeasonParticulate:
		seasonal = SeasonalHumidityOffset(ctx.At) * particulatePerRH
	}

	value := s.Baseline + degradation + seasonal + daily + noise
	return Round(clampPhysical(s.Unit, value), 3)
}

// particulatePerRH scales the humidity sinusoid into a particle count offset.
const particulatePerRH = 50

// SeasonalTempOffset is the annual sinusoid, phase-aligned so the peak lands
// in high summer (~+4 °C in July/August).
func SeasonalTempOffset(t time.Time) float64 {
	return 4.0 * math.Sin(2*math.Pi*float64(t.YearDay()-80)/365)
}

// SeasonalHumidityOffset peaks alongside summer heat (~+10 %RH).
func SeasonalHumidityOffset(t time.Time) float64 {
	return 10.0 * math.Sin(2*math.Pi*float64(t.YearDay()-80)/365)
}

// DailyThermalCycle models equipment warming through the operating day.
func DailyThermalCycle(hour int) float64 {
	return 1.5 * math.Sin(2*math.Pi*float64(hour-6)/24)
}

// clampPhysical bounds a summed value to the physically valid range of its
// unit. Clamping runs last so it never distorts intermediate layer math.
func clampPhysical(unit string, v float64) float64 {
	switch unit {
	case "%":
		return Clamp(v, 0, 100)
	case "%RH":
		return Clamp(v, 15, 85)
	case "mm/s", "mm", "ms", "N", "A", "Nm", "RPM", "p/m³":
		if v < 0 {
			return 0
		}
		return v
	default:
		return v
	}
}

// BreachDirection marks which alarm bound a reading crossed.
type BreachDirection string

// Breach directions.
const (
	BreachLow  BreachDirection = "Low"
	BreachHigh BreachDirection = "High"
)

// Breach checks a reading against its sensor's alarm band. It returns the
// crossed bound and direction; ok is false when the value is in band or the
// sensor has no bound on the offending side.
func Breach(s catalog.SensorSpec, value float64) (dir BreachDirection, threshold float64, ok bool) {
	if s.AlarmLow != nil && value < *s.AlarmLow {
		return BreachLow, *s.AlarmLow, true
	}
	if s.AlarmHigh != nil && value > *s.AlarmHigh {
		return BreachHigh, *s.AlarmHigh, true
	}
	return "", 0, false
}
