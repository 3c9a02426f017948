package sim

import (
	"log"
	"math"
	"math/rand"
	"time"

	"factory-sim-backend/config"
	"factory-sim-backend/internal/catalog"
	"factory-sim-backend/internal/dataset"
	"factory-sim-backend/internal/latent"
	"factory-sim-backend/internal/model"
	"factory-sim-backend/internal/signal"
	"factory-sim-backend/internal/simcal"
)

// Scada generates the instrumented assembly line: the sensor telemetry
// stream, the unit-level production flow through the six stations, and the
// quality, downtime and alarm tables derived from them.
type Scada struct {
	cfg      *config.SimulationConfig
	rng      *rand.Rand
	workdays []time.Time
	tracker  *latent.Tracker

	orders   []lineOrder
	rushDays map[string]bool // date → a rush/critical order entered that day

	readings []model.SensorReading
	runs     []model.AssemblyRun
}

// lineOrder is the internal order schedule; it drives fact_production and
// marks rush days for the telemetry stream but is not itself exported.
type lineOrder struct {
	ID       string
	Date     time.Time
	Product  catalog.ArmProduct
	Priority string
}

// Assembly-line generation constants.
const (
	minDailyOrders = 4

	daySampleMinutes   = 5  // 06:00-24:00 cadence
	nightSampleMinutes = 10 // 22:00-02:00 reduced cadence

	scadaDegradePerDay       = 0.008
	bottleneckBreakdownMult  = 1.6
	stationBaseHourlyCost    = 50.0
	stationPositionCostStep  = 10.0
	assemblyLaborRatePerHour = 38.0
)

// NewScada prepares an assembly-line engine over a validated configuration.
func NewScada(cfg *config.SimulationConfig) *Scada {
	return &Scada{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		workdays: simcal.WorkingDays(cfg.Start, cfg.End),
		rushDays: make(map[string]bool),
	}
}

// Run executes the full generation pass and returns the assembled tables.
func (s *Scada) Run() (*dataset.Dataset, error) {
	log.Printf("scada: simulating %s to %s (%d working days)",
		s.cfg.StartDate, s.cfg.EndDate, len(s.workdays))

	plan := simcal.BuildMaintenancePlan(s.rng, stationIDs(), s.cfg.Start, s.cfg.End,
		maintenanceWindow(s.cfg.Maintenance))
	s.tracker = latent.NewTracker(s.cfg.Start, plan)

	s.buildOrders()
	s.buildReadings()
	s.buildProduction()
	quality := s.buildQuality()
	downtime := s.buildDowntime()
	alarms := s.buildAlarms()

	ds := dataset.New(config.LineScada)
	for _, t := range []struct {
		name    string
		records any
	}{
		{"dim_stations", buildStationDim()},
		{"dim_sensors", buildSensorDim()},
		{"dim_operators", s.buildOperatorDim()},
		{"dim_shifts", buildShiftDim()},
		{"dim_products", buildArmProductDim()},
		{"dim_date", buildDateDim(s.cfg.Start, s.cfg.End)},
		{"fact_sensor_readings", s.readings},
		{"fact_production", s.runs},
		{"fact_quality_events", quality},
		{"fact_downtime", downtime},
		{"fact_alarms", alarms},
	} {
		if err := ds.Add(t.name, t.records); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

func stationIDs() []string {
	ids := make([]string, len(catalog.Stations))
	for i, st := range catalog.Stations {
		ids[i] = st.ID
	}
	return ids
}

func buildStationDim() []model.Station {
	rows := make([]model.Station, len(catalog.Stations))
	for i, st := range catalog.Stations {
		rows[i] = model.Station{
			StationID:          st.ID,
			StationName:        st.Name,
			Description:        st.Description,
			LinePosition:       st.Position,
			NumMachines:        st.NumMachines,
			TargetCycleTimeMin: st.CycleMeanMin,
			IsBottleneck:       st.ID == catalog.BottleneckStationID,
		}
	}
	return rows
}

// sensorID returns the dense ID of the i-th sensor in catalog order.
func sensorID(i int) string {
	return id("SNS", 3, i+1)
}

func buildSensorDim() []model.Sensor {
	rows := make([]model.Sensor, len(catalog.Sensors))
	for i, sp := range catalog.Sensors {
		rows[i] = model.Sensor{
			SensorID:      sensorID(i),
			StationID:     sp.StationID,
			SensorName:    sp.Name,
			Unit:          sp.Unit,
			BaselineValue: sp.Baseline,
			AlarmLow:      sp.AlarmLow,
			AlarmHigh:     sp.AlarmHigh,
		}
	}
	return rows
}

func (s *Scada) buildOperatorDim() []model.LineOperator {
	rows := make([]model.LineOperator, len(catalog.ScadaOperators))
	for i, op := range catalog.ScadaOperators {
		eff := math.Min(1.0, 0.75+op.Experience*0.025+s.rng.NormFloat64()*0.02)
		rows[i] = model.LineOperator{
			OperatorID:       op.ID,
			OperatorName:     op.Name,
			PrimaryShift:     op.Shift,
			ExperienceYears:  op.Experience,
			SkillLevel:       op.Skill,
			EfficiencyRating: signal.Round(eff, 3),
		}
	}
	return rows
}

func buildShiftDim() []model.ShiftDim {
	rows := make([]model.ShiftDim, len(catalog.Shifts))
	for i, sh := range catalog.Shifts {
		rows[i] = model.ShiftDim{
			ShiftName:        sh.Name,
			StartHour:        sh.StartHour,
			EndHour:          sh.EndHour,
			NoiseMultiplier:  sh.NoiseMult,
			EfficiencyFactor: sh.Efficiency,
		}
	}
	return rows
}

func buildArmProductDim() []model.ArmProductDim {
	rows := make([]model.ArmProductDim, len(catalog.ArmProducts))
	for i, p := range catalog.ArmProducts {
		rows[i] = model.ArmProductDim{
			ProductID:        p.ID,
			ProductName:      p.Name,
			Complexity:       p.Complexity,
			UnitMaterialCost: p.MaterialCost,
		}
	}
	return rows
}

// buildOrders draws the daily order intake. Rush and critical orders mark
// their day so the telemetry layer widens variance line-wide.
func (s *Scada) buildOrders() {
	productWeights := make([]float64, len(catalog.ArmProducts))
	for i, p := range catalog.ArmProducts {
		productWeights[i] = p.Weight
	}
	priorityWeights := make([]float64, len(catalog.OrderPriorities))
	for i, p := range catalog.OrderPriorities {
		priorityWeights[i] = p.Weight
	}

	n := 1
	for _, day := range s.workdays {
		count := simcal.DailyOrderCount(s.rng, day, s.cfg.DailyOrderBaseline, minDailyOrders)
		for i := 0; i < count; i++ {
			priority := catalog.OrderPriorities[signal.WeightedIndex(s.rng, priorityWeights)].Priority
			if priority != "Standard" {
				s.rushDays[day.Format(simcal.DayLayout)] = true
			}
			s.orders = append(s.orders, lineOrder{
				ID:       id("ORD", 5, n),
				Date:     day,
				Product:  catalog.ArmProducts[signal.WeightedIndex(s.rng, productWeights)],
				Priority: priority,
			})
			n++
		}
	}
}

// buildReadings emits the telemetry stream: every sensor of every station is
// sampled through the operating day (06:00 up to midnight) plus a reduced
// overnight block from 22:00 to 02:00 of the next calendar day.
func (s *Scada) buildReadings() {
	readingID := 1
	emit := func(sp catalog.SensorSpec, sensorIdx int, at time.Time, day string, shift catalog.ShiftSpec, rush bool) {
		ctx := signal.Context{
			ShiftNoiseMult: shift.NoiseMult,
			DaysSince:      s.tracker.DaysSince(sp.StationID, at),
			At:             at,
		}
		if rush {
			ctx.RushMult = signal.RushNoiseMult
		}
		if sp.StationID == catalog.BottleneckStationID {
			ctx.BottleneckMult = signal.BottleneckNoiseMult
		}
		s.readings = append(s.readings, model.SensorReading{
			ReadingID:  id("RDG", 8, readingID),
			Timestamp:  at.Format(simcal.MinuteLayout),
			Date:       day,
			StationID:  sp.StationID,
			SensorID:   sensorID(sensorIdx),
			SensorName: sp.Name,
			Value:      signal.Value(s.rng, sp, ctx),
			Unit:       sp.Unit,
			Shift:      shift.Name,
		})
		readingID++
	}

	for _, day := range s.workdays {
		dayStr := day.Format(simcal.DayLayout)
		rush := s.rushDays[dayStr]

		for _, station := range catalog.Stations {
			for hour := 6; hour < 24; hour++ {
				shift := catalog.ShiftForHour(hour)
				for minute := 0; minute < 60; minute += daySampleMinutes {
					at := day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
					for i, sp := range catalog.Sensors {
						if sp.StationID != station.ID {
							continue
						}
						emit(sp, i, at, dayStr, shift, rush)
					}
				}
			}

			// Overnight block: hours 22:00-02:00, rolling past midnight.
			for hourOffset := 0; hourOffset < 4; hourOffset++ {
				hour := (22 + hourOffset) % 24
				sampleDay := day
				if hour < 22 {
					sampleDay = day.AddDate(0, 0, 1)
				}
				for minute := 0; minute < 60; minute += nightSampleMinutes {
					at := sampleDay.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
					for i, sp := range catalog.Sensors {
						if sp.StationID != station.ID {
							continue
						}
						emit(sp, i, at, dayStr, catalog.Shifts[2], rush)
					}
				}
			}
		}
	}
}

// buildProduction runs every order through the six stations in line order.
// Each unit's pass/fail outcome is drawn from the layered defect model.
func (s *Scada) buildProduction() {
	operatorsByShift := make(map[string][]string)
	for _, op := range catalog.ScadaOperators {
		operatorsByShift[op.Shift] = append(operatorsByShift[op.Shift], op.ID)
	}

	shiftWeights := make([]float64, len(catalog.Shifts))
	for i, sh := range catalog.Shifts {
		shiftWeights[i] = sh.VolumeWeight
	}

	prodID := 1
	for _, order := range s.orders {
		shift := catalog.Shifts[signal.WeightedIndex(s.rng, shiftWeights)]
		rush := order.Priority != "Standard"

		for _, station := range catalog.Stations {
			cycleMean := station.CycleMeanMin * order.Product.Complexity
			cycleStd := station.CycleStdMin
			if rush {
				// Rush orders are pushed through faster but less consistently.
				cycleMean *= 0.82
				cycleStd *= 1.40
			}

			queueMean := 5.0
			switch {
			case station.ID == catalog.BottleneckStationID:
				queueMean = 25.0 // work backs up in front of the single machine
			case station.Position == 5:
				queueMean = 3.0 // starved directly after the bottleneck
			}

			cycle := signal.Round(math.Max(cycleMean*0.5, cycleMean+s.rng.NormFloat64()*cycleStd), 1)
			queue := signal.Round(s.rng.ExpFloat64()*queueMean, 1)
			setup := signal.Round(math.Max(2, 8+s.rng.NormFloat64()*2), 1)

			crew := operatorsByShift[shift.Name]
			operatorID := crew[s.rng.Intn(len(crew))]

			daysSince := s.tracker.DaysSince(station.ID, order.Date)
			p := signal.DefectProbability(station.BaseDefectRate, signal.OutcomeModifiers{
				ShiftEfficiency: shift.Efficiency,
				RushPenalty:     rushPenalty(order.Priority),
				EnvPenalty:      s.cleanroomPenalty(station.ID, order.Date),
				DaysSince:       daysSince,
				DegradePerDay:   scadaDegradePerDay,
			})
			result := "Pass"
			if signal.Defective(s.rng, p) {
				result = "Fail"
			}

			hourlyCost := stationBaseHourlyCost + float64(station.Position)*stationPositionCostStep
			s.runs = append(s.runs, model.AssemblyRun{
				ProductionID:  id("PRD", 6, prodID),
				OrderID:       order.ID,
				ProductID:     order.Product.ID,
				StationID:     station.ID,
				OperatorID:    operatorID,
				Date:          order.Date.Format(simcal.DayLayout),
				Shift:         shift.Name,
				Priority:      order.Priority,
				CycleTimeMin:  cycle,
				QueueTimeMin:  queue,
				SetupTimeMin:  setup,
				TotalTimeMin:  signal.Round(cycle+queue+setup, 1),
				MachineCost:   signal.Round(cycle/60*hourlyCost, 2),
				LaborCost:     signal.Round(cycle/60*assemblyLaborRatePerHour, 2),
				MaterialCost:  signal.Round(order.Product.MaterialCost/float64(len(catalog.Stations)), 2),
				QualityResult: result,
			})
			prodID++
		}
	}
}

// cleanroomPenalty couples the cleanroom station's defect rate to the
// season's expected humidity.
func (s *Scada) cleanroomPenalty(stationID string, day time.Time) float64 {
	if stationID != catalog.CleanroomStationID {
		return 1.0
	}
	humidity := 42 + signal.SeasonalHumidityOffset(day)
	return signal.HumidityDefectPenalty(humidity)
}

// buildQuality derives fact_quality_events from the failed production rows,
// wording each event with its station's defect and root-cause vocabulary.
func (s *Scada) buildQuality() []model.LineQualityEvent {
	severityWeights := make([]float64, len(catalog.DefectSeverities))
	for i, sev := range catalog.DefectSeverities {
		severityWeights[i] = sev.Weight
	}

	var events []model.LineQualityEvent
	eventID := 1
	for _, run := range s.runs {
		if run.QualityResult != "Fail" {
			continue
		}
		severity := catalog.DefectSeverities[signal.WeightedIndex(s.rng, severityWeights)].Severity
		options := catalog.DispositionsFor(severity)
		dispWeights := make([]float64, len(options))
		for i, o := range options {
			dispWeights[i] = o.Weight
		}
		disposition := options[signal.WeightedIndex(s.rng, dispWeights)].Disposition

		var rework, scrap float64
		switch disposition {
		case "Rework":
			rework = signal.Round(uniform(s.rng, 50, 300), 2)
		case "Scrap":
			scrap = signal.Round(run.MaterialCost*uniform(s.rng, 2, 6), 2)
		}

		vocab := catalog.VocabularyFor(run.StationID)
		events = append(events, model.LineQualityEvent{
			QualityEventID:   id("QE", 6, eventID),
			ProductionID:     run.ProductionID,
			OrderID:          run.OrderID,
			ProductID:        run.ProductID,
			StationID:        run.StationID,
			OperatorID:       run.OperatorID,
			Date:             run.Date,
			Shift:            run.Shift,
			DefectType:       vocab.DefectTypes[s.rng.Intn(len(vocab.DefectTypes))],
			Severity:         severity,
			Disposition:      disposition,
			RootCause:        vocab.RootCauses[s.rng.Intn(len(vocab.RootCauses))],
			ReworkCost:       rework,
			ScrapCost:        scrap,
			TotalQualityCost: signal.Round(rework+scrap, 2),
			CorrectiveAction: s.rng.Intn(2) == 1,
		})
		eventID++
	}
	return events
}

// buildDowntime draws per-(station, category) Poisson event counts; unplanned
// breakdowns are filtered through the degradation keep-probability and the
// bottleneck station breaks down structurally more often.
func (s *Scada) buildDowntime() []model.StationDowntime {
	months := simcal.MonthSpan(s.cfg.Start, s.cfg.End)
	horizonDays := simcal.DaysBetween(s.cfg.Start, s.cfg.End)

	var events []model.StationDowntime
	eventID := 1
	for _, station := range catalog.Stations {
		for _, cat := range catalog.DowntimeCategories {
			freq := cat.MonthlyFreq
			if station.ID == catalog.BottleneckStationID && cat.Name == catalog.UnplannedBreakdown {
				freq *= bottleneckBreakdownMult
			}
			n := signal.Poisson(s.rng, freq*float64(months))

			for e := 0; e < n; e++ {
				day := s.cfg.Start.AddDate(0, 0, int(uniform(s.rng, 0, float64(horizonDays))))
				if !simcal.IsWorkingDay(day) {
					continue
				}
				if cat.Name == catalog.UnplannedBreakdown {
					keep := signal.BreakdownKeepProbability(s.tracker.DaysSince(station.ID, day))
					if s.rng.Float64() > keep {
						continue
					}
				}

				duration := signal.Round(math.Max(0.25, cat.AvgHours+s.rng.NormFloat64()*cat.AvgHours*0.3), 2)
				hour := 6 + s.rng.Intn(16)
				hourlyCost := stationBaseHourlyCost + float64(station.Position)*stationPositionCostStep
				lost := signal.Round(duration*hourlyCost, 2)
				var repair float64
				if !cat.Scheduled {
					repair = signal.Round(uniform(s.rng, 100, 800), 2)
				}

				events = append(events, model.StationDowntime{
					DowntimeID:         id("DT", 6, eventID),
					StationID:          station.ID,
					Date:               day.Format(simcal.DayLayout),
					StartHour:          hour,
					Shift:              catalog.ShiftForHour(hour).Name,
					DowntimeCategory:   cat.Name,
					IsScheduled:        cat.Scheduled,
					DurationHours:      duration,
					LostProductionCost: lost,
					RepairCost:         repair,
					TotalDowntimeCost:  signal.Round(lost+repair, 2),
				})
				eventID++
			}
		}
	}
	return events
}

// buildAlarms scans the finished telemetry stream and raises one alarm per
// reading that crossed its sensor's alarm band, pinned to the reading's ID.
func (s *Scada) buildAlarms() []model.Alarm {
	specByName := make(map[string]catalog.SensorSpec, len(catalog.Sensors))
	for _, sp := range catalog.Sensors {
		specByName[sp.StationID+"/"+sp.Name] = sp
	}

	var alarms []model.Alarm
	alarmID := 1
	for _, r := range s.readings {
		sp := specByName[r.StationID+"/"+r.SensorName]
		dir, threshold, ok := signal.Breach(sp, r.Value)
		if !ok {
			continue
		}
		alarms = append(alarms, model.Alarm{
			AlarmID:    id("ALM", 6, alarmID),
			ReadingID:  r.ReadingID,
			Timestamp:  r.Timestamp,
			Date:       r.Date,
			StationID:  r.StationID,
			SensorID:   r.SensorID,
			SensorName: r.SensorName,
			AlarmType:  string(dir),
			Value:      r.Value,
			Threshold:  threshold,
			Shift:      r.Shift,
		})
		alarmID++
	}
	return alarms
}
