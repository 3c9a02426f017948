package signal

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"factory-sim-backend/internal/catalog"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 1))
	assert.Equal(t, 1.0, Clamp(7, 0, 1))
	assert.Equal(t, 0.4, Clamp(0.4, 0, 1))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3.14, Round(3.14159, 2))
	assert.Equal(t, 3.142, Round(3.14159, 3))
	assert.Equal(t, -2.7, Round(-2.71, 1))
}

func TestPoissonZeroRate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, 0, Poisson(rng, 0))
	assert.Equal(t, 0, Poisson(rng, -4))
}

func TestPoissonMean(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const lambda, n = 5.0, 20000
	var sum int
	for i := 0; i < n; i++ {
		sum += Poisson(rng, lambda)
	}
	assert.InDelta(t, lambda, float64(sum)/n, 0.3)
}

func TestPoissonLargeRateNonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		assert.GreaterOrEqual(t, Poisson(rng, 3500), 0)
	}
}

func TestLogNormalMoments(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const mean, std, n = 10.0, 2.0, 20000
	var sum float64
	for i := 0; i < n; i++ {
		v := LogNormal(rng, mean, std)
		require.Greater(t, v, 0.0)
		sum += v
	}
	assert.InDelta(t, mean, sum/n, 0.5)
}

func TestWeightedIndexSkipsZeroWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	weights := []float64{0, 1, 0}
	for i := 0; i < 500; i++ {
		assert.Equal(t, 1, WeightedIndex(rng, weights))
	}
}

func TestDefectProbabilityNeutralIsBase(t *testing.T) {
	p := DefectProbability(0.03, OutcomeModifiers{})
	assert.InDelta(t, 0.03, p, 1e-12)
}

func TestDefectProbabilityLayers(t *testing.T) {
	base := 0.02
	p := DefectProbability(base, OutcomeModifiers{
		ShiftEfficiency: 0.93,
		RushPenalty:     RushDefectPenalty,
		EnvPenalty:      2.5,
		DaysSince:       10,
		DegradePerDay:   0.008,
	})
	want := base * (1 / 0.93) * 1.8 * 2.5 * (1 + 10*0.008)
	assert.InDelta(t, want, p, 1e-12)
}

func TestDefectProbabilityMonotonicInDegradation(t *testing.T) {
	prev := -1.0
	for days := 0; days <= 60; days += 5 {
		p := DefectProbability(0.03, OutcomeModifiers{DaysSince: days, DegradePerDay: 0.008})
		assert.Greater(t, p, prev)
		prev = p
	}
}

func TestDefectProbabilityClampedToOne(t *testing.T) {
	p := DefectProbability(0.9, OutcomeModifiers{
		RushPenalty: 1.8, EnvPenalty: 2.5, DaysSince: 100, DegradePerDay: 0.05,
	})
	assert.Equal(t, 1.0, p)
}

func TestDefectCountBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	assert.Equal(t, 0, DefectCount(rng, 50, 0))
	assert.Equal(t, 50, DefectCount(rng, 50, 1))
	n := DefectCount(rng, 50, 0.5)
	assert.GreaterOrEqual(t, n, 0)
	assert.LessOrEqual(t, n, 50)
}

func TestBreakdownKeepProbability(t *testing.T) {
	assert.InDelta(t, 0.3, BreakdownKeepProbability(0), 1e-12)
	assert.InDelta(t, 0.7, BreakdownKeepProbability(10), 1e-12)
	assert.Equal(t, 1.0, BreakdownKeepProbability(18), "saturates at certainty")
	assert.Equal(t, 1.0, BreakdownKeepProbability(500))
}

func TestHumidityDefectPenalty(t *testing.T) {
	assert.Equal(t, 1.0, HumidityDefectPenalty(42))
	assert.Equal(t, 1.5, HumidityDefectPenalty(52))
	assert.Equal(t, 2.5, HumidityDefectPenalty(60))
}

func humiditySpec() catalog.SensorSpec {
	for _, s := range catalog.Sensors {
		if s.Name == "humidity" {
			return s
		}
	}
	panic("humidity sensor missing from catalog")
}

func TestValuePhysicalClampHumidity(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	spec := humiditySpec()
	at := time.Date(2024, time.July, 15, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 2000; i++ {
		v := Value(rng, spec, Context{At: at, ShiftNoiseMult: 1.18})
		assert.GreaterOrEqual(t, v, 15.0)
		assert.LessOrEqual(t, v, 85.0)
	}
}

func TestValuePercentClampUnderHeavyDegradation(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	spec := catalog.SensorSpec{
		Name: "tool_wear_index", Unit: "%", Baseline: 5, NoiseStd: 0.5,
		Dist: catalog.DistGaussian, DegradePerDay: 2.8,
	}
	v := Value(rng, spec, Context{DaysSince: 1000, At: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)})
	assert.Equal(t, 100.0, v)
}

func TestValueNeutralMultipliersMatchExplicitOnes(t *testing.T) {
	spec := catalog.SensorSpec{
		Name: "board_voltage", Unit: "V", Baseline: 3.3, NoiseStd: 0.02,
		Dist: catalog.DistGaussian,
	}
	at := time.Date(2024, time.May, 6, 12, 0, 0, 0, time.UTC)

	a := Value(rand.New(rand.NewSource(21)), spec, Context{At: at})
	b := Value(rand.New(rand.NewSource(21)), spec, Context{
		At: at, ShiftNoiseMult: 1.0, RushMult: 1.0, BottleneckMult: 1.0,
	})
	assert.Equal(t, a, b, "zero multipliers must behave as the neutral 1.0")
}

func TestValueDeterministicForSeed(t *testing.T) {
	spec := humiditySpec()
	ctx := Context{At: time.Date(2024, time.August, 1, 8, 0, 0, 0, time.UTC), DaysSince: 7}

	a := Value(rand.New(rand.NewSource(42)), spec, ctx)
	b := Value(rand.New(rand.NewSource(42)), spec, ctx)
	assert.Equal(t, a, b)
}

func TestBreachDirections(t *testing.T) {
	spec := humiditySpec() // band [30, 55]

	dir, threshold, ok := Breach(spec, 60)
	require.True(t, ok)
	assert.Equal(t, BreachHigh, dir)
	assert.Equal(t, 55.0, threshold)

	dir, threshold, ok = Breach(spec, 20)
	require.True(t, ok)
	assert.Equal(t, BreachLow, dir)
	assert.Equal(t, 30.0, threshold)

	_, _, ok = Breach(spec, 42)
	assert.False(t, ok)
}

func TestBreachUnboundedSide(t *testing.T) {
	spec := catalog.SensorSpec{Name: "vibration", Unit: "mm/s", Baseline: 1.5}
	_, _, ok := Breach(spec, 1e9)
	assert.False(t, ok, "a sensor without bounds never alarms")
}

func TestSeasonalOffsetsPeakInSummer(t *testing.T) {
	summer := time.Date(2024, time.July, 20, 12, 0, 0, 0, time.UTC)
	winter := time.Date(2024, time.January, 20, 12, 0, 0, 0, time.UTC)

	assert.Greater(t, SeasonalTempOffset(summer), 3.0)
	assert.Less(t, SeasonalTempOffset(winter), 0.0)
	assert.Greater(t, SeasonalHumidityOffset(summer), 8.0)
}

func TestDailyThermalCyclePeaksAtNoon(t *testing.T) {
	assert.InDelta(t, 1.5, DailyThermalCycle(12), 1e-9)
	assert.InDelta(t, 0.0, DailyThermalCycle(6), 1e-9)
}
