package simcal

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayOfTruncates(t *testing.T) {
	at := time.Date(2024, time.March, 5, 17, 42, 9, 0, time.UTC)
	assert.Equal(t, date(2024, time.March, 5), DayOf(at))
}

func TestIsWorkingDay(t *testing.T) {
	assert.True(t, IsWorkingDay(date(2024, time.January, 8)))   // Monday
	assert.True(t, IsWorkingDay(date(2024, time.January, 12)))  // Friday
	assert.False(t, IsWorkingDay(date(2024, time.January, 6)))  // Saturday
	assert.False(t, IsWorkingDay(date(2024, time.January, 7)))  // Sunday
}

func TestNextWorkingDayRollsForward(t *testing.T) {
	assert.Equal(t, date(2024, time.January, 8), NextWorkingDay(date(2024, time.January, 6)))
	assert.Equal(t, date(2024, time.January, 8), NextWorkingDay(date(2024, time.January, 8)))
}

func TestWorkingDays(t *testing.T) {
	// Mon Jan 8 through Sun Jan 14: five working days.
	days := WorkingDays(date(2024, time.January, 8), date(2024, time.January, 14))
	require.Len(t, days, 5)
	assert.Equal(t, date(2024, time.January, 8), days[0])
	assert.Equal(t, date(2024, time.January, 12), days[4])
}

func TestMonthSpanInclusive(t *testing.T) {
	assert.Equal(t, 12, MonthSpan(date(2024, time.January, 1), date(2024, time.December, 31)))
	assert.Equal(t, 2, MonthSpan(date(2024, time.January, 15), date(2024, time.February, 10)))
	assert.Equal(t, 1, MonthSpan(date(2024, time.June, 1), date(2024, time.June, 30)))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 9, DaysBetween(date(2024, time.March, 1), date(2024, time.March, 10)))
	assert.Equal(t, -9, DaysBetween(date(2024, time.March, 10), date(2024, time.March, 1)))
	assert.Equal(t, 0, DaysBetween(date(2024, time.March, 10), date(2024, time.March, 10)))
}

func TestBuildMaintenancePlan(t *testing.T) {
	start, end := date(2024, time.January, 1), date(2024, time.June, 30)
	assets := []string{"MCH-001", "MCH-002"}

	plan := BuildMaintenancePlan(rand.New(rand.NewSource(1)), assets, start, end, DefaultMaintenanceWindow)
	require.Len(t, plan, 2)

	for _, id := range assets {
		dates := plan[id]
		require.NotEmpty(t, dates, "asset %s has no maintenance in a six-month horizon", id)
		for i, d := range dates {
			assert.True(t, IsWorkingDay(d), "maintenance on %s falls on a weekend", d)
			assert.False(t, d.Before(start) || d.After(end), "maintenance on %s outside horizon", d)
			if i > 0 {
				assert.True(t, d.After(dates[i-1]), "maintenance dates must be strictly increasing")
			}
		}
	}
}

func TestBuildMaintenancePlanDeterministic(t *testing.T) {
	start, end := date(2024, time.January, 1), date(2024, time.December, 31)
	assets := []string{"STN-01", "STN-02", "STN-03"}

	a := BuildMaintenancePlan(rand.New(rand.NewSource(42)), assets, start, end, DefaultMaintenanceWindow)
	b := BuildMaintenancePlan(rand.New(rand.NewSource(42)), assets, start, end, DefaultMaintenanceWindow)
	assert.Equal(t, a, b)
}

func TestDemandMultiplier(t *testing.T) {
	assert.Equal(t, 1.30, DemandMultiplier(date(2024, time.September, 2)))
	assert.Equal(t, 1.30, DemandMultiplier(date(2024, time.October, 15)))
	assert.Equal(t, 1.0, DemandMultiplier(date(2024, time.April, 1)))
}

func TestDailyOrderCountFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		n := DailyOrderCount(rng, date(2024, time.April, 1), 4, 4)
		assert.GreaterOrEqual(t, n, 4)
	}
}

func TestDailyOrderCountSeasonalUplift(t *testing.T) {
	// With jitter in [-1, 3), September's floor is 8*1.3-1 = 9 orders.
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		n := DailyOrderCount(rng, date(2024, time.September, 2), 8, 4)
		assert.GreaterOrEqual(t, n, 9)
	}
}
