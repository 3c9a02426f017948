package sim

import (
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"factory-sim-backend/config"
	"factory-sim-backend/internal/catalog"
	"factory-sim-backend/internal/dataset"
	"factory-sim-backend/internal/latent"
	"factory-sim-backend/internal/model"
	"factory-sim-backend/internal/signal"
	"factory-sim-backend/internal/simcal"
)

// JobShop generates the job-shop line: machines, products, job orders routed
// across machines, and the quality/downtime tables derived from them.
type JobShop struct {
	cfg      *config.SimulationConfig
	rng      *rand.Rand
	workdays []time.Time
	tracker  *latent.Tracker

	machines  []model.Machine
	products  []model.Product
	operators []model.Operator
	customers []model.Customer
	orders    []model.JobOrder
	runs      []model.ProductionRun
}

// Per-step outcome parameters for the job shop. The base rate is modified by
// shift and operator efficiency, rush priority, routing depth and
// degradation, then clamped before the per-unit draws.
const (
	jobShopBaseDefectRate     = 0.03
	jobShopDegradePerDay      = 0.008
	lateStepDefectPenalty     = 1.2 // steps deeper in the routing fail more
	bottleneckQueueMultiplier = 2.5
	laborRatePerHour          = 35.0
)

// NewJobShop prepares a job-shop engine over a validated configuration.
func NewJobShop(cfg *config.SimulationConfig) *JobShop {
	return &JobShop{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		workdays: simcal.WorkingDays(cfg.Start, cfg.End),
	}
}

// Run executes the full generation pass and returns the assembled tables.
func (j *JobShop) Run() (*dataset.Dataset, error) {
	log.Printf("jobshop: simulating %s to %s (%d working days, %d orders)",
		j.cfg.StartDate, j.cfg.EndDate, len(j.workdays), j.cfg.OrderCount)

	j.buildMachines()
	plan := simcal.BuildMaintenancePlan(j.rng, machineIDs(j.machines), j.cfg.Start, j.cfg.End,
		maintenanceWindow(j.cfg.Maintenance))
	j.tracker = latent.NewTracker(j.cfg.Start, plan)

	j.buildProducts()
	j.buildOperators()
	j.buildCustomers()
	j.buildOrders()
	j.buildProduction()
	quality := j.buildQuality()
	downtime := j.buildDowntime()

	ds := dataset.New(config.LineJobShop)
	for _, t := range []struct {
		name    string
		records any
	}{
		{"dim_machines", j.machines},
		{"dim_products", j.products},
		{"dim_operators", j.operators},
		{"dim_customers", j.customers},
		{"dim_date", buildDateDim(j.cfg.Start, j.cfg.End)},
		{"fact_job_orders", j.orders},
		{"fact_production", j.runs},
		{"fact_quality", quality},
		{"fact_downtime", downtime},
	} {
		if err := ds.Add(t.name, t.records); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

func machineIDs(machines []model.Machine) []string {
	ids := make([]string, len(machines))
	for i, m := range machines {
		ids[i] = m.MachineID
	}
	return ids
}

func (j *JobShop) buildMachines() {
	n := 1
	for _, spec := range catalog.MachineSpecs {
		for i := 1; i <= spec.Count; i++ {
			age := signal.Round(uniform(j.rng, 1, 15), 1)
			condition := signal.Clamp(
				latent.ConditionScore(age, 0)+j.rng.NormFloat64()*0.05,
				latent.MinCondition, 1.0)
			j.machines = append(j.machines, model.Machine{
				MachineID:           id("MCH", 3, n),
				MachineName:         spec.Type + " #" + strconv.Itoa(i),
				MachineType:         spec.Type,
				MachineDepartment:   spec.Department,
				AvgCycleTimeMin:     spec.AvgCycleMin,
				CycleVariabilityPct: signal.Round(spec.Variability*100, 1),
				HourlyOperatingCost: spec.HourlyCost,
				AgeYears:            age,
				ConditionScore:      signal.Round(condition, 2),
				InstallDate:         j.cfg.Start.AddDate(0, 0, -int(age*365)).Format(simcal.DayLayout),
			})
			n++
		}
	}
}

func (j *JobShop) buildProducts() {
	for i, p := range catalog.Products {
		var target float64
		for _, step := range p.Routing {
			target += catalog.MachineSpecByType(step).AvgCycleMin
		}
		j.products = append(j.products, model.Product{
			ProductID:          id("PRD", 3, i+1),
			ProductName:        p.Name,
			ProductFamily:      p.Family,
			RoutingSteps:       len(p.Routing),
			RoutingSequence:    strings.Join(p.Routing, " → "),
			BaseMaterialCost:   p.MaterialCost,
			TargetCycleTimeMin: target,
		})
	}
}

func (j *JobShop) buildOperators() {
	for i, name := range catalog.OperatorNames {
		shift := catalog.JobShopShifts[j.rng.Intn(len(catalog.JobShopShifts))]
		hireDaysAgo := 180 + j.rng.Intn(3470)
		hireDate := j.cfg.Start.AddDate(0, 0, -hireDaysAgo)
		experience := signal.Round(float64(hireDaysAgo)/365, 1)
		efficiency := signal.Clamp(0.7+experience*0.03+j.rng.NormFloat64()*0.04, 0.5, 1.0)
		j.operators = append(j.operators, model.Operator{
			OperatorID:          id("OPR", 3, i+1),
			OperatorName:        name,
			PrimaryShift:        shift,
			HireDate:            hireDate.Format(simcal.DayLayout),
			ExperienceYears:     experience,
			SkillLevel:          skillFor(experience),
			CertificationsCount: 1 + j.rng.Intn(5),
			EfficiencyRating:    signal.Round(efficiency, 2),
		})
	}
}

func skillFor(experienceYears float64) string {
	switch {
	case experienceYears > 7:
		return "Expert"
	case experienceYears > 3:
		return "Advanced"
	case experienceYears > 1:
		return "Intermediate"
	default:
		return "Junior"
	}
}

func (j *JobShop) buildCustomers() {
	tierWeights := make([]float64, len(catalog.CustomerTiers))
	for i, t := range catalog.CustomerTiers {
		tierWeights[i] = t.Weight
	}
	for i, name := range catalog.Customers {
		j.customers = append(j.customers, model.Customer{
			CustomerID:              id("CUS", 3, i+1),
			CustomerName:            name,
			CustomerTier:            catalog.CustomerTiers[signal.WeightedIndex(j.rng, tierWeights)].Priority,
			Region:                  catalog.Regions[j.rng.Intn(len(catalog.Regions))],
			OnTimeDeliveryTargetPct: catalog.OnTimeTargets[j.rng.Intn(len(catalog.OnTimeTargets))],
		})
	}
}

var orderQuantities = []int{1, 2, 5, 10, 20, 50}
var orderQuantityWeights = []float64{0.1, 0.15, 0.25, 0.25, 0.15, 0.1}

func (j *JobShop) buildOrders() {
	for n := 1; n <= j.cfg.OrderCount; n++ {
		pi := j.rng.Intn(len(catalog.Products))
		spec := catalog.Products[pi]

		weights := make([]float64, len(spec.PriorityWeights))
		for i, w := range spec.PriorityWeights {
			weights[i] = w.Weight
		}
		priority := spec.PriorityWeights[signal.WeightedIndex(j.rng, weights)].Priority

		orderDate := j.workdays[j.rng.Intn(len(j.workdays))]
		dueDate := orderDate.AddDate(0, 0, catalog.LeadDays(priority))
		quantity := orderQuantities[signal.WeightedIndex(j.rng, orderQuantityWeights)]

		j.orders = append(j.orders, model.JobOrder{
			JobOrderID:  id("JOB", 5, n),
			ProductID:   id("PRD", 3, pi+1),
			ProductName: spec.Name,
			CustomerID:  id("CUS", 3, 1+j.rng.Intn(len(catalog.Customers))),
			OrderDate:   orderDate.Format(simcal.DayLayout),
			DueDate:     dueDate.Format(simcal.DayLayout),
			Priority:    priority,
			Quantity:    quantity,
			Status:      "Completed", // the horizon is historical
		})
	}
}

// shiftEfficiencyForHour mirrors the assembly line's shift efficiencies onto
// the job shop's labeled shifts.
func shiftEfficiencyForHour(hour int) (label string, efficiency float64) {
	spec := catalog.ShiftForHour(hour)
	switch spec.Name {
	case "Day":
		return catalog.JobShopShifts[0], spec.Efficiency
	case "Swing":
		return catalog.JobShopShifts[1], spec.Efficiency
	default:
		return catalog.JobShopShifts[2], spec.Efficiency
	}
}

func (j *JobShop) buildProduction() {
	machinesByType := make(map[string][]string)
	for _, m := range j.machines {
		machinesByType[m.MachineType] = append(machinesByType[m.MachineType], m.MachineID)
	}

	runID := 1
	for _, order := range j.orders {
		spec := productSpecByName(order.ProductName)
		orderDate, _ := time.ParseInLocation(simcal.DayLayout, order.OrderDate, time.UTC)

		// Explicit per-job clock: each routing step advances this cursor.
		cursor := orderDate.Add(time.Duration(uniform(j.rng, 1, 8) * float64(time.Hour)))

		for stepNum, machineType := range spec.Routing {
			mSpec := catalog.MachineSpecByType(machineType)
			instances := machinesByType[machineType]
			machineID := instances[j.rng.Intn(len(instances))]
			op := j.operators[j.rng.Intn(len(j.operators))]

			cycle := math.Max(
				mSpec.AvgCycleMin*0.5,
				mSpec.AvgCycleMin*(1/op.EfficiencyRating)+j.rng.NormFloat64()*mSpec.AvgCycleMin*mSpec.Variability)
			cycle = signal.Round(cycle, 1)

			queueMult := 1.0
			if machineType == catalog.BottleneckMachineType {
				queueMult = bottleneckQueueMultiplier
			}
			queue := signal.Round(j.rng.ExpFloat64()*30*queueMult, 1)
			setup := signal.Round(math.Max(3, 10+j.rng.NormFloat64()*3), 1)

			start := cursor.Add(time.Duration(queue * float64(time.Minute)))
			busyMin := setup + cycle*float64(order.Quantity)
			end := start.Add(time.Duration(busyMin * float64(time.Minute)))

			shiftLabel, shiftEff := shiftEfficiencyForHour(start.Hour())

			daysSince := j.tracker.DaysSince(machineID, start)
			p := signal.DefectProbability(jobShopBaseDefectRate, signal.OutcomeModifiers{
				ShiftEfficiency: shiftEff * op.EfficiencyRating,
				RushPenalty:     rushPenalty(order.Priority),
				EnvPenalty:      stepDepthPenalty(stepNum + 1),
				DaysSince:       daysSince,
				DegradePerDay:   jobShopDegradePerDay,
			})
			defects := signal.DefectCount(j.rng, order.Quantity, p)
			good := order.Quantity - defects
			fpy := signal.Round(float64(good)/float64(order.Quantity), 3)

			j.runs = append(j.runs, model.ProductionRun{
				ProductionID:    id("PRD-RUN", 6, runID),
				JobOrderID:      order.JobOrderID,
				ProductID:       order.ProductID,
				MachineID:       machineID,
				OperatorID:      op.OperatorID,
				StepNumber:      stepNum + 1,
				StepMachineType: machineType,
				Date:            start.Format(simcal.DayLayout),
				Shift:           shiftLabel,
				StartTime:       start.Format(simcal.MinuteLayout),
				EndTime:         end.Format(simcal.MinuteLayout),
				SetupTimeMin:    setup,
				CycleTimeMin:    cycle,
				QueueTimeMin:    queue,
				TotalTimeMin:    signal.Round(busyMin+queue, 1),
				QuantityIn:      order.Quantity,
				QuantityGood:    good,
				FirstPassYield:  fpy,
				MachineCost:     signal.Round(busyMin/60*mSpec.HourlyCost, 2),
				LaborCost:       signal.Round(busyMin/60*laborRatePerHour, 2),
			})

			cursor = end.Add(time.Duration(uniform(j.rng, 5, 30) * float64(time.Minute)))
			runID++
		}
	}
}

func productSpecByName(name string) *catalog.ProductSpec {
	for i := range catalog.Products {
		if catalog.Products[i].Name == name {
			return &catalog.Products[i]
		}
	}
	return nil
}

func rushPenalty(priority string) float64 {
	if priority == "Rush" || priority == "Critical" {
		return signal.RushDefectPenalty
	}
	return 1.0
}

func stepDepthPenalty(stepNumber int) float64 {
	if stepNumber > 2 {
		return lateStepDefectPenalty
	}
	return 1.0
}

// buildQuality derives fact_quality from fact_production: exactly one event
// per defective unit, never drawn independently of its parent run.
func (j *JobShop) buildQuality() []model.QualityEvent {
	severityWeights := make([]float64, len(catalog.DefectSeverities))
	for i, s := range catalog.DefectSeverities {
		severityWeights[i] = s.Weight
	}

	var events []model.QualityEvent
	eventID := 1
	for _, run := range j.runs {
		defects := run.QuantityIn - run.QuantityGood
		for d := 0; d < defects; d++ {
			severity := catalog.DefectSeverities[signal.WeightedIndex(j.rng, severityWeights)].Severity
			options := catalog.DispositionsFor(severity)
			dispWeights := make([]float64, len(options))
			for i, o := range options {
				dispWeights[i] = o.Weight
			}
			disposition := options[signal.WeightedIndex(j.rng, dispWeights)].Disposition

			var reworkCost float64
			switch disposition {
			case "Rework":
				reworkCost = signal.Round(uniform(j.rng, 15, 120), 2)
			case "Scrap":
				reworkCost = signal.Round(materialCostFor(run.ProductID)*uniform(j.rng, 0.5, 1.0), 2)
			}

			events = append(events, model.QualityEvent{
				QualityEventID:        id("QE", 6, eventID),
				ProductionID:          run.ProductionID,
				JobOrderID:            run.JobOrderID,
				ProductID:             run.ProductID,
				MachineID:             run.MachineID,
				OperatorID:            run.OperatorID,
				Date:                  run.Date,
				DefectType:            catalog.JobShopDefectTypes[j.rng.Intn(len(catalog.JobShopDefectTypes))],
				Severity:              severity,
				Disposition:           disposition,
				ReworkCost:            reworkCost,
				RootCause:             catalog.JobShopRootCauses[j.rng.Intn(len(catalog.JobShopRootCauses))],
				CorrectiveActionTaken: j.rng.Intn(2) == 1,
			})
			eventID++
		}
	}
	return events
}

func materialCostFor(productID string) float64 {
	for i, p := range catalog.Products {
		if id("PRD", 3, i+1) == productID {
			return p.MaterialCost
		}
	}
	return 30 // unknown product: nominal material cost
}

// buildDowntime draws per-(machine, category) Poisson event counts, then
// filters unplanned breakdowns through the degradation keep-probability so
// overdue machines break down more.
func (j *JobShop) buildDowntime() []model.DowntimeEvent {
	months := simcal.MonthSpan(j.cfg.Start, j.cfg.End)

	var events []model.DowntimeEvent
	eventID := 1
	for _, machine := range j.machines {
		for _, cat := range catalog.DowntimeCategories {
			freq := cat.MonthlyFreq
			if cat.Name == catalog.UnplannedBreakdown {
				// Worn machines carry a structurally higher breakdown rate.
				freq *= math.Max(0.5, 2.0-machine.ConditionScore)
			}
			n := signal.Poisson(j.rng, freq*float64(months))

			for e := 0; e < n; e++ {
				day := j.workdays[j.rng.Intn(len(j.workdays))]
				if cat.Name == catalog.UnplannedBreakdown {
					keep := signal.BreakdownKeepProbability(j.tracker.DaysSince(machine.MachineID, day))
					if j.rng.Float64() > keep {
						continue
					}
				}

				duration := signal.Round(math.Max(0.25, cat.AvgHours+j.rng.NormFloat64()*cat.AvgHours*0.3), 2)
				cost := duration * machine.HourlyOperatingCost * 0.3
				if cat.Name == catalog.UnplannedBreakdown {
					cost += uniform(j.rng, 100, 500)
				}

				events = append(events, model.DowntimeEvent{
					DowntimeID:        id("DT", 6, eventID),
					MachineID:         machine.MachineID,
					Date:              day.Format(simcal.DayLayout),
					DowntimeCategory:  cat.Name,
					DurationHours:     duration,
					DowntimeCost:      signal.Round(cost, 2),
					ShiftAffected:     catalog.JobShopShifts[j.rng.Intn(len(catalog.JobShopShifts))],
					WasScheduled:      cat.Scheduled,
					ImpactDescription: cat.Impact,
				})
				eventID++
			}
		}
	}
	return events
}
