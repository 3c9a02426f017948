// Package scenario applies what-if transforms on top of a finished dataset.
// A scenario is a stateless arithmetic rewrite of the generated tables, not a
// re-simulation: the same base run can be exported under several scenarios
// and the numbers stay comparable across them.
package scenario

import (
	"fmt"
	"math/rand"

	"factory-sim-backend/internal/dataset"
	"factory-sim-backend/internal/model"
	"factory-sim-backend/internal/signal"
)

// Scenario names.
const (
	Baseline       = "baseline"
	Lean           = "lean"
	HighDemand     = "high_demand"
	AgingEquipment = "aging_equipment"
)

// Apply returns a new dataset with the named scenario's rewrites applied.
// The input dataset is never mutated. Tables a scenario has no rewrite for
// are carried through unchanged.
func Apply(ds *dataset.Dataset, name string, rng *rand.Rand) (*dataset.Dataset, error) {
	if name == Baseline {
		return ds, nil
	}

	out := dataset.New(ds.Line)
	for _, t := range ds.Tables {
		records := t.Records
		switch name {
		case Lean:
			records = applyLean(records)
		case HighDemand:
			records = applyHighDemand(records, rng)
		case AgingEquipment:
			records = applyAgingEquipment(records)
		default:
			return nil, fmt.Errorf("scenario: unknown scenario %q", name)
		}
		if err := out.Add(t.Name, records); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// applyLean models a lean-manufacturing push: queue times drop 40%, first
// pass yield improves 3% (capped), downtime shrinks 30%.
func applyLean(records any) any {
	switch in := records.(type) {
	case []model.ProductionRun:
		out := cloned(in)
		for i := range out {
			r := &out[i]
			r.QueueTimeMin = signal.Round(r.QueueTimeMin*0.6, 1)
			r.TotalTimeMin = signal.Round(r.SetupTimeMin+r.CycleTimeMin*float64(r.QuantityIn)+r.QueueTimeMin, 1)
			r.FirstPassYield = signal.Round(signal.Clamp(r.FirstPassYield*1.03, 0, 1), 3)
		}
		return out
	case []model.AssemblyRun:
		out := cloned(in)
		for i := range out {
			r := &out[i]
			r.QueueTimeMin = signal.Round(r.QueueTimeMin*0.6, 1)
			r.TotalTimeMin = signal.Round(r.CycleTimeMin+r.QueueTimeMin+r.SetupTimeMin, 1)
		}
		return out
	case []model.DowntimeEvent:
		out := cloned(in)
		for i := range out {
			out[i].DurationHours = signal.Round(out[i].DurationHours*0.7, 2)
			out[i].DowntimeCost = signal.Round(out[i].DowntimeCost*0.7, 2)
		}
		return out
	case []model.StationDowntime:
		out := cloned(in)
		for i := range out {
			r := &out[i]
			r.DurationHours = signal.Round(r.DurationHours*0.7, 2)
			r.LostProductionCost = signal.Round(r.LostProductionCost*0.7, 2)
			r.TotalDowntimeCost = signal.Round(r.LostProductionCost+r.RepairCost, 2)
		}
		return out
	}
	return records
}

// applyHighDemand models a demand spike: a share of standard orders becomes
// rush and quantities grow 40%.
func applyHighDemand(records any, rng *rand.Rand) any {
	in, ok := records.([]model.JobOrder)
	if !ok {
		return records
	}
	out := cloned(in)
	for i := range out {
		if out[i].Priority == "Standard" && rng.Float64() < 0.3 {
			out[i].Priority = "Rush"
		}
		if q := int(float64(out[i].Quantity) * 1.4); q >= 1 {
			out[i].Quantity = q
		} else {
			out[i].Quantity = 1
		}
	}
	return out
}

// applyAgingEquipment models a deferred-capex fleet: condition drops, cycles
// stretch 12% and downtime grows 35%.
func applyAgingEquipment(records any) any {
	switch in := records.(type) {
	case []model.Machine:
		out := cloned(in)
		for i := range out {
			out[i].ConditionScore = signal.Round(out[i].ConditionScore*0.85, 2)
			out[i].AgeYears = signal.Round(out[i].AgeYears+3, 1)
		}
		return out
	case []model.ProductionRun:
		out := cloned(in)
		for i := range out {
			r := &out[i]
			r.CycleTimeMin = signal.Round(r.CycleTimeMin*1.12, 1)
			r.TotalTimeMin = signal.Round(r.SetupTimeMin+r.CycleTimeMin*float64(r.QuantityIn)+r.QueueTimeMin, 1)
			r.MachineCost = signal.Round(r.MachineCost*1.12, 2)
		}
		return out
	case []model.AssemblyRun:
		out := cloned(in)
		for i := range out {
			r := &out[i]
			r.CycleTimeMin = signal.Round(r.CycleTimeMin*1.12, 1)
			r.TotalTimeMin = signal.Round(r.CycleTimeMin+r.QueueTimeMin+r.SetupTimeMin, 1)
			r.MachineCost = signal.Round(r.MachineCost*1.12, 2)
		}
		return out
	case []model.DowntimeEvent:
		out := cloned(in)
		for i := range out {
			out[i].DurationHours = signal.Round(out[i].DurationHours*1.35, 2)
			out[i].DowntimeCost = signal.Round(out[i].DowntimeCost*1.35, 2)
		}
		return out
	case []model.StationDowntime:
		out := cloned(in)
		for i := range out {
			r := &out[i]
			r.DurationHours = signal.Round(r.DurationHours*1.35, 2)
			r.LostProductionCost = signal.Round(r.LostProductionCost*1.35, 2)
			r.TotalDowntimeCost = signal.Round(r.LostProductionCost+r.RepairCost, 2)
		}
		return out
	}
	return records
}

func cloned[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
