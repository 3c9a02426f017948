package catalog

import "fmt"

// Validate checks the catalog's internal cross-references. It runs once at
// startup so a broken catalog aborts before any generation work begins.
func Validate() error {
	for _, p := range Products {
		if len(p.Routing) == 0 {
			return fmt.Errorf("catalog: product %q has an empty routing", p.Name)
		}
		for _, step := range p.Routing {
			if MachineSpecByType(step) == nil {
				return fmt.Errorf("catalog: product %q routes through unknown machine type %q", p.Name, step)
			}
		}
		if err := checkWeights(p.Name, weightsOf(p.PriorityWeights)); err != nil {
			return err
		}
	}

	if MachineSpecByType(BottleneckMachineType) == nil {
		return fmt.Errorf("catalog: bottleneck machine type %q not in machine specs", BottleneckMachineType)
	}

	for _, sw := range DefectSeverities {
		if len(DispositionsFor(sw.Severity)) == 0 {
			return fmt.Errorf("catalog: severity %q has no disposition table", sw.Severity)
		}
	}

	stationIDs := make(map[string]bool, len(Stations))
	for _, s := range Stations {
		stationIDs[s.ID] = true
	}
	if !stationIDs[BottleneckStationID] {
		return fmt.Errorf("catalog: bottleneck station %q not in station specs", BottleneckStationID)
	}
	if !stationIDs[CleanroomStationID] {
		return fmt.Errorf("catalog: cleanroom station %q not in station specs", CleanroomStationID)
	}
	for _, s := range Sensors {
		if !stationIDs[s.StationID] {
			return fmt.Errorf("catalog: sensor %q references unknown station %q", s.Name, s.StationID)
		}
		if s.NoiseStd <= 0 {
			return fmt.Errorf("catalog: sensor %q has non-positive noise std", s.Name)
		}
	}
	for _, s := range Stations {
		if len(SensorsFor(s.ID)) == 0 {
			return fmt.Errorf("catalog: station %q has no sensors", s.ID)
		}
		if VocabularyFor(s.ID) == nil {
			return fmt.Errorf("catalog: station %q has no defect vocabulary", s.ID)
		}
	}

	if err := checkWeights("order priorities", weightsOf(OrderPriorities)); err != nil {
		return err
	}
	shiftWeights := make([]float64, len(Shifts))
	for i, sh := range Shifts {
		shiftWeights[i] = sh.VolumeWeight
	}
	if err := checkWeights("shift volumes", shiftWeights); err != nil {
		return err
	}
	for _, p := range ArmProducts {
		if p.Weight <= 0 {
			return fmt.Errorf("catalog: arm product %q has non-positive weight", p.ID)
		}
	}
	return nil
}

func weightsOf(ws []PriorityWeight) []float64 {
	out := make([]float64, len(ws))
	for i, w := range ws {
		out[i] = w.Weight
	}
	return out
}

func checkWeights(owner string, ws []float64) error {
	if len(ws) == 0 {
		return fmt.Errorf("catalog: %s has no weights", owner)
	}
	for _, w := range ws {
		if w <= 0 {
			return fmt.Errorf("catalog: %s has a non-positive weight", owner)
		}
	}
	return nil
}
