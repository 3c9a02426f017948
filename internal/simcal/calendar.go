// Package simcal builds the simulated time axis: the working-day calendar,
// per-asset maintenance plans and the daily order schedule. Everything later
// in the pipeline reads these schedules; nothing regenerates them.
package simcal

import (
	"math/rand"
	"time"
)

// DayLayout is the date format used across all generated tables.
const DayLayout = "2006-01-02"

// MinuteLayout is the timestamp format used by sensor readings.
const MinuteLayout = "2006-01-02 15:04"

// DayOf truncates a time to midnight UTC.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsWorkingDay reports whether t falls Monday through Friday.
func IsWorkingDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// NextWorkingDay returns t itself when it is a working day, otherwise the
// following Monday.
func NextWorkingDay(t time.Time) time.Time {
	for !IsWorkingDay(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// WorkingDays lists every working day in [start, end], inclusive.
func WorkingDays(start, end time.Time) []time.Time {
	var days []time.Time
	for d := DayOf(start); !d.After(DayOf(end)); d = d.AddDate(0, 0, 1) {
		if IsWorkingDay(d) {
			days = append(days, d)
		}
	}
	return days
}

// MonthSpan counts the calendar months touched by [start, end], inclusive.
func MonthSpan(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
}

// DaysBetween returns the whole-day gap from a to b (dates only, sign kept).
func DaysBetween(a, b time.Time) int {
	return int(DayOf(b).Sub(DayOf(a)).Hours() / 24)
}

// MaintenancePlan maps an asset ID to its ordered maintenance dates.
// Invariant: each slice is strictly increasing and every date is a working
// day. The plan is generated once, before any signal or outcome generation.
type MaintenancePlan map[string][]time.Time

// MaintenanceWindow bounds the randomized spacing of maintenance events.
type MaintenanceWindow struct {
	LeadMinDays int // first event: start + U[LeadMin, LeadMax) days
	LeadMaxDays int
	GapMinDays  int // subsequent events: previous + U[GapMin, GapMax) days
	GapMaxDays  int
}

// DefaultMaintenanceWindow is the plant-wide service cadence.
var DefaultMaintenanceWindow = MaintenanceWindow{
	LeadMinDays: 14, LeadMaxDays: 22,
	GapMinDays: 18, GapMaxDays: 25,
}

// BuildMaintenancePlan draws each asset's maintenance dates. A date landing
// on a weekend rolls forward to the next working day rather than being
// skipped, so the configured cadence is always honored.
func BuildMaintenancePlan(rng *rand.Rand, assetIDs []string, start, end time.Time, w MaintenanceWindow) MaintenancePlan {
	plan := make(MaintenancePlan, len(assetIDs))
	for _, id := range assetIDs {
		var dates []time.Time
		cursor := DayOf(start).AddDate(0, 0, intBetween(rng, w.LeadMinDays, w.LeadMaxDays))
		for !cursor.After(DayOf(end)) {
			d := NextWorkingDay(cursor)
			if d.After(DayOf(end)) {
				break
			}
			if n := len(dates); n == 0 || d.After(dates[n-1]) {
				dates = append(dates, d)
			}
			cursor = cursor.AddDate(0, 0, intBetween(rng, w.GapMinDays, w.GapMaxDays))
		}
		plan[id] = dates
	}
	return plan
}

// intBetween draws from [lo, hi); degenerate windows collapse to lo.
func intBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo)
}

// DemandMultiplier is the deterministic seasonal uplift: a Q4 ramp raises
// daily order volume by 30% in September and October.
func DemandMultiplier(day time.Time) float64 {
	if m := day.Month(); m == time.September || m == time.October {
		return 1.30
	}
	return 1.0
}

// DailyOrderCount draws the number of new orders entering on one working day:
// a seasonal-scaled baseline plus small jitter, floored so the line never
// sits fully idle.
func DailyOrderCount(rng *rand.Rand, day time.Time, baselinePerDay, minimumPerDay int) int {
	count := int(float64(baselinePerDay)*DemandMultiplier(day)) + intBetween(rng, -1, 3)
	if count < minimumPerDay {
		count = minimumPerDay
	}
	return count
}
