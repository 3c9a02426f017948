// Package latent derives each asset's hidden state — time since last
// maintenance and condition score — as a pure function of the maintenance
// plan and the queried instant. There is no mutable simulation loop; the
// tracker is read per reading, so lookups binary-search the sorted plan.
package latent

import (
	"sort"
	"time"

	"factory-sim-backend/internal/simcal"
)

// Tracker answers latent-state queries for every asset in a plan.
type Tracker struct {
	epoch time.Time
	plan  simcal.MaintenancePlan
}

// NewTracker builds a tracker over a finished maintenance plan. epoch is the
// simulation start; assets with no maintenance yet degrade from there.
func NewTracker(epoch time.Time, plan simcal.MaintenancePlan) *Tracker {
	return &Tracker{epoch: simcal.DayOf(epoch), plan: plan}
}

// DaysSince returns the whole days elapsed at `at` since the most recent
// maintenance date at or before it. On a maintenance date it is exactly 0;
// between two consecutive dates it increases by one per day. Before any
// maintenance has happened it falls back to the elapsed-since-epoch span,
// and instants before the epoch report 0 rather than a negative duration.
func (t *Tracker) DaysSince(assetID string, at time.Time) int {
	day := simcal.DayOf(at)
	dates := t.plan[assetID]
	// index of first date strictly after `day`
	i := sort.Search(len(dates), func(i int) bool { return dates[i].After(day) })
	anchor := t.epoch
	if i > 0 {
		anchor = dates[i-1]
	}
	days := simcal.DaysBetween(anchor, day)
	if days < 0 {
		return 0
	}
	return days
}

// LastMaintenance returns the most recent maintenance date at or before
// `at`, or false when none has happened yet.
func (t *Tracker) LastMaintenance(assetID string, at time.Time) (time.Time, bool) {
	day := simcal.DayOf(at)
	dates := t.plan[assetID]
	i := sort.Search(len(dates), func(i int) bool { return dates[i].After(day) })
	if i == 0 {
		return time.Time{}, false
	}
	return dates[i-1], true
}

// Condition bounds for ConditionScore. A score never leaves [MinCondition, 1]
// regardless of age or elapsed maintenance-free time.
const (
	MinCondition = 0.5
	ageWearRate  = 0.03  // condition lost per year of asset age
	dayWearRate  = 0.004 // condition lost per maintenance-free day
)

// ConditionScore is the deterministic health of an asset: installed-age wear
// plus accumulated degradation since the last service, clamped on both ends.
func ConditionScore(ageYears float64, daysSinceMaintenance int) float64 {
	score := 1.0 - ageYears*ageWearRate - float64(daysSinceMaintenance)*dayWearRate
	if score < MinCondition {
		return MinCondition
	}
	if score > 1.0 {
		return 1.0
	}
	return score
}
