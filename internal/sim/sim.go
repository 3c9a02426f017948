// Package sim drives the generation engines across the full cross-product of
// assets, time and jobs, and assembles the star-schema tables. All rows are
// created once, in dependency order, from a single seeded RNG; derived tables
// are built strictly from their parent table's in-memory rows.
package sim

import (
	"fmt"
	"math/rand"
	"time"

	"factory-sim-backend/config"
	"factory-sim-backend/internal/catalog"
	"factory-sim-backend/internal/dataset"
	"factory-sim-backend/internal/model"
	"factory-sim-backend/internal/simcal"
)

// Run validates the catalog and executes the configured line's engine.
func Run(cfg *config.Config) (*dataset.Dataset, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if cfg.Simulation.Start.IsZero() || cfg.Simulation.End.IsZero() {
		return nil, fmt.Errorf("sim: configuration not validated (missing parsed horizon)")
	}
	switch cfg.Simulation.Line {
	case config.LineJobShop:
		return NewJobShop(&cfg.Simulation).Run()
	case config.LineScada:
		return NewScada(&cfg.Simulation).Run()
	default:
		return nil, fmt.Errorf("sim: unknown line %q", cfg.Simulation.Line)
	}
}

// id renders a dense zero-padded identifier, e.g. id("MCH", 3, 7) = "MCH-007".
func id(prefix string, width, n int) string {
	return fmt.Sprintf("%s-%0*d", prefix, width, n)
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// maintenanceWindow translates the config cadence into the calendar's form.
func maintenanceWindow(m config.MaintenanceConfig) simcal.MaintenanceWindow {
	return simcal.MaintenanceWindow{
		LeadMinDays: m.LeadMinDays, LeadMaxDays: m.LeadMaxDays,
		GapMinDays: m.GapMinDays, GapMaxDays: m.GapMaxDays,
	}
}

// buildDateDim emits one dim_date row per calendar day of the horizon.
func buildDateDim(start, end time.Time) []model.DateDay {
	var rows []model.DateDay
	for d := simcal.DayOf(start); !d.After(simcal.DayOf(end)); d = d.AddDate(0, 0, 1) {
		_, week := d.ISOWeek()
		fiscalYear := d.Year()
		if d.Month() < time.July {
			fiscalYear--
		}
		rows = append(rows, model.DateDay{
			Date:          d.Format(simcal.DayLayout),
			Year:          d.Year(),
			Quarter:       fmt.Sprintf("Q%d", (int(d.Month())-1)/3+1),
			MonthNum:      int(d.Month()),
			MonthName:     d.Month().String(),
			WeekNum:       week,
			DayOfWeek:     d.Weekday().String(),
			IsWeekend:     !simcal.IsWorkingDay(d),
			IsWorkingDay:  simcal.IsWorkingDay(d),
			FiscalYear:    fiscalYear,
			FiscalQuarter: fmt.Sprintf("FQ%d", ((int(d.Month())-7+12)%12)/3+1),
		})
	}
	return rows
}
