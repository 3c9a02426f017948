package latent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"factory-sim-backend/internal/simcal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysSinceFallsBackToEpoch(t *testing.T) {
	epoch := date(2024, time.January, 1)
	tr := NewTracker(epoch, simcal.MaintenancePlan{})

	assert.Equal(t, 0, tr.DaysSince("MCH-001", epoch))
	assert.Equal(t, 10, tr.DaysSince("MCH-001", epoch.AddDate(0, 0, 10)))
}

func TestDaysSinceNeverNegative(t *testing.T) {
	epoch := date(2024, time.January, 15)
	tr := NewTracker(epoch, simcal.MaintenancePlan{})

	assert.Equal(t, 0, tr.DaysSince("MCH-001", date(2024, time.January, 1)))
}

func TestDaysSinceResetsOnMaintenance(t *testing.T) {
	epoch := date(2024, time.January, 1)
	plan := simcal.MaintenancePlan{
		"STN-01": {epoch.AddDate(0, 0, 20), epoch.AddDate(0, 0, 40)},
	}
	tr := NewTracker(epoch, plan)

	assert.Equal(t, 19, tr.DaysSince("STN-01", epoch.AddDate(0, 0, 19)))
	assert.Equal(t, 0, tr.DaysSince("STN-01", epoch.AddDate(0, 0, 20)), "resets to zero on the maintenance date itself")
	assert.Equal(t, 5, tr.DaysSince("STN-01", epoch.AddDate(0, 0, 25)))
	assert.Equal(t, 19, tr.DaysSince("STN-01", epoch.AddDate(0, 0, 39)))
	assert.Equal(t, 0, tr.DaysSince("STN-01", epoch.AddDate(0, 0, 40)))
	assert.Equal(t, 30, tr.DaysSince("STN-01", epoch.AddDate(0, 0, 70)), "keeps growing after the last planned date")
}

func TestDaysSinceSawtoothOverHorizon(t *testing.T) {
	// A fixed 20-day cadence must produce a sawtooth that never reaches 20.
	epoch := date(2024, time.January, 1)
	var dates []time.Time
	for d := 20; d <= 100; d += 20 {
		dates = append(dates, epoch.AddDate(0, 0, d))
	}
	tr := NewTracker(epoch, simcal.MaintenancePlan{"MCH-007": dates})

	for offset := 20; offset <= 100; offset++ {
		got := tr.DaysSince("MCH-007", epoch.AddDate(0, 0, offset))
		assert.Equal(t, offset%20, got, "offset %d", offset)
	}
}

func TestLastMaintenance(t *testing.T) {
	epoch := date(2024, time.January, 1)
	first := epoch.AddDate(0, 0, 20)
	tr := NewTracker(epoch, simcal.MaintenancePlan{"STN-02": {first}})

	_, ok := tr.LastMaintenance("STN-02", epoch.AddDate(0, 0, 19))
	assert.False(t, ok)

	got, ok := tr.LastMaintenance("STN-02", epoch.AddDate(0, 0, 33))
	assert.True(t, ok)
	assert.Equal(t, first, got)
}

func TestConditionScoreClamps(t *testing.T) {
	assert.Equal(t, 1.0, ConditionScore(0, 0))
	assert.Equal(t, 0.5, ConditionScore(40, 500), "heavy wear clamps at the floor")
	assert.Equal(t, 1.0, ConditionScore(-2, 0), "never exceeds 1.0")
}

func TestConditionScoreWearRates(t *testing.T) {
	assert.InDelta(t, 1.0-0.03*5, ConditionScore(5, 0), 1e-9)
	assert.InDelta(t, 1.0-0.004*10, ConditionScore(0, 10), 1e-9)
	assert.InDelta(t, 1.0-0.03*5-0.004*10, ConditionScore(5, 10), 1e-9)
}
