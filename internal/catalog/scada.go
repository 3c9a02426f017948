package catalog

// StationSpec describes one station of the SCADA-instrumented assembly line.
type StationSpec struct {
	ID             string
	Name           string
	Description    string
	Position       int
	NumMachines    int
	CycleMeanMin   float64
	CycleStdMin    float64
	BaseDefectRate float64
}

// BottleneckStationID is the deliberately constrained integration station:
// a single machine with the longest cycle, so work backs up in front of it.
const BottleneckStationID = "STN-04"

// Stations lists the assembly line in positional order.
var Stations = []StationSpec{
	{ID: "STN-01", Name: "Precision CNC Machining", Description: "Joint housings & arm segment milling",
		Position: 1, NumMachines: 3, CycleMeanMin: 45, CycleStdMin: 4, BaseDefectRate: 0.02},
	{ID: "STN-02", Name: "Electronic Board Assembly", Description: "Control PCB & sensor board SMT",
		Position: 2, NumMachines: 2, CycleMeanMin: 35, CycleStdMin: 3, BaseDefectRate: 0.03},
	{ID: "STN-03", Name: "Servo Motor & Actuator", Description: "Motor winding, gear train assembly",
		Position: 3, NumMachines: 2, CycleMeanMin: 50, CycleStdMin: 5, BaseDefectRate: 0.025},
	{ID: "STN-04", Name: "Robotic Arm Integration", Description: "Mechanical assembly, wiring, joint fit",
		Position: 4, NumMachines: 1, CycleMeanMin: 65, CycleStdMin: 8, BaseDefectRate: 0.035},
	{ID: "STN-05", Name: "Cleanroom Assembly", Description: "End-effector sterile packaging & assembly",
		Position: 5, NumMachines: 2, CycleMeanMin: 40, CycleStdMin: 3, BaseDefectRate: 0.03},
	{ID: "STN-06", Name: "Calibration & Functional Test", Description: "Full system accuracy & safety verification",
		Position: 6, NumMachines: 2, CycleMeanMin: 30, CycleStdMin: 2, BaseDefectRate: 0.015},
}

// CleanroomStationID is the station whose defect rate is coupled to humidity.
const CleanroomStationID = "STN-05"

// Distribution names the noise family a sensor draws from.
type Distribution string

// Supported noise families.
const (
	DistGaussian  Distribution = "gaussian"
	DistLogNormal Distribution = "lognormal"
	DistPoisson   Distribution = "poisson"
)

// SeasonClass tells the layered generator which seasonal/cyclical offsets a
// sensor receives. Selection is by physical semantics, not by sensor name.
type SeasonClass string

// Season classes.
const (
	SeasonNone        SeasonClass = "none"
	SeasonTemperature SeasonClass = "temperature" // annual sinusoid + daily thermal cycle
	SeasonHumidity    SeasonClass = "humidity"    // annual sinusoid only
	SeasonParticulate SeasonClass = "particulate" // humidity sinusoid scaled to a count
)

// SensorSpec describes one sensor: its baseline signal, noise family, alarm
// band and degradation drift. A nil alarm bound means "no bound on this side".
type SensorSpec struct {
	StationID     string
	Name          string
	Unit          string
	Baseline      float64
	NoiseStd      float64
	Dist          Distribution
	AlarmLow      *float64
	AlarmHigh     *float64
	DegradePerDay float64 // location drift per day since maintenance; may be negative
	Season        SeasonClass
}

func bound(v float64) *float64 { return &v }

// Sensors lists every sensor on the line, grouped by station in positional
// order. The slice order fixes sensor IDs and RNG consumption order.
var Sensors = []SensorSpec{
	// STN-01 Precision CNC Machining
	{StationID: "STN-01", Name: "spindle_speed", Unit: "RPM", Baseline: 8000, NoiseStd: 120, Dist: DistGaussian, AlarmLow: bound(7200), AlarmHigh: bound(8800)},
	{StationID: "STN-01", Name: "spindle_vibration", Unit: "mm/s", Baseline: 2.1, NoiseStd: 0.15, Dist: DistLogNormal, AlarmHigh: bound(4.5), DegradePerDay: 0.08},
	{StationID: "STN-01", Name: "coolant_temp", Unit: "°C", Baseline: 22.0, NoiseStd: 1.2, Dist: DistGaussian, AlarmLow: bound(15), AlarmHigh: bound(35), Season: SeasonTemperature},
	{StationID: "STN-01", Name: "tool_wear_index", Unit: "%", Baseline: 5.0, NoiseStd: 0.5, Dist: DistGaussian, AlarmHigh: bound(85), DegradePerDay: 2.8},
	{StationID: "STN-01", Name: "cutting_force", Unit: "N", Baseline: 450, NoiseStd: 30, Dist: DistGaussian, AlarmLow: bound(200), AlarmHigh: bound(700), DegradePerDay: 3.0},

	// STN-02 Electronic Board Assembly
	{StationID: "STN-02", Name: "solder_temp", Unit: "°C", Baseline: 245, NoiseStd: 3.0, Dist: DistGaussian, AlarmLow: bound(230), AlarmHigh: bound(260), Season: SeasonTemperature},
	{StationID: "STN-02", Name: "placement_accuracy", Unit: "mm", Baseline: 0.05, NoiseStd: 0.008, Dist: DistGaussian, AlarmHigh: bound(0.10), DegradePerDay: 0.002},
	{StationID: "STN-02", Name: "board_voltage", Unit: "V", Baseline: 3.30, NoiseStd: 0.02, Dist: DistGaussian, AlarmLow: bound(3.10), AlarmHigh: bound(3.50)},
	{StationID: "STN-02", Name: "ambient_temp", Unit: "°C", Baseline: 23.0, NoiseStd: 0.8, Dist: DistGaussian, AlarmLow: bound(18), AlarmHigh: bound(28), Season: SeasonTemperature},

	// STN-03 Servo Motor & Actuator
	{StationID: "STN-03", Name: "winding_torque", Unit: "Nm", Baseline: 1.8, NoiseStd: 0.12, Dist: DistGaussian, AlarmLow: bound(1.2), AlarmHigh: bound(2.5), DegradePerDay: 0.015},
	{StationID: "STN-03", Name: "insulation_resistance", Unit: "MΩ", Baseline: 500, NoiseStd: 20, Dist: DistGaussian, AlarmLow: bound(200), DegradePerDay: -3.0},
	{StationID: "STN-03", Name: "motor_current", Unit: "A", Baseline: 2.5, NoiseStd: 0.15, Dist: DistGaussian, AlarmHigh: bound(4.0), DegradePerDay: 0.02},
	{StationID: "STN-03", Name: "coil_temp", Unit: "°C", Baseline: 55, NoiseStd: 2.5, Dist: DistGaussian, AlarmHigh: bound(85), DegradePerDay: 0.3, Season: SeasonTemperature},

	// STN-04 Robotic Arm Integration (bottleneck)
	{StationID: "STN-04", Name: "joint_torque", Unit: "Nm", Baseline: 12.0, NoiseStd: 0.8, Dist: DistGaussian, AlarmLow: bound(8), AlarmHigh: bound(18), DegradePerDay: 0.05},
	{StationID: "STN-04", Name: "positional_accuracy", Unit: "mm", Baseline: 0.02, NoiseStd: 0.004, Dist: DistGaussian, AlarmHigh: bound(0.08), DegradePerDay: 0.001},
	{StationID: "STN-04", Name: "fastener_torque", Unit: "Nm", Baseline: 5.5, NoiseStd: 0.3, Dist: DistGaussian, AlarmLow: bound(4.0), AlarmHigh: bound(7.0)},
	{StationID: "STN-04", Name: "vibration", Unit: "mm/s", Baseline: 1.5, NoiseStd: 0.10, Dist: DistLogNormal, AlarmHigh: bound(3.5), DegradePerDay: 0.06},

	// STN-05 Cleanroom Assembly
	{StationID: "STN-05", Name: "particle_count", Unit: "p/m³", Baseline: 3500, NoiseStd: 400, Dist: DistPoisson, AlarmHigh: bound(10000), Season: SeasonParticulate},
	{StationID: "STN-05", Name: "humidity", Unit: "%RH", Baseline: 42, NoiseStd: 3.0, Dist: DistGaussian, AlarmLow: bound(30), AlarmHigh: bound(55), Season: SeasonHumidity},
	{StationID: "STN-05", Name: "cleanroom_temp", Unit: "°C", Baseline: 21.0, NoiseStd: 0.5, Dist: DistGaussian, AlarmLow: bound(19), AlarmHigh: bound(23), Season: SeasonTemperature},
	{StationID: "STN-05", Name: "glove_integrity", Unit: "score", Baseline: 98, NoiseStd: 1.0, Dist: DistGaussian, AlarmLow: bound(90), DegradePerDay: -0.4},

	// STN-06 Calibration & Functional Test
	{StationID: "STN-06", Name: "repeatability_error", Unit: "mm", Baseline: 0.01, NoiseStd: 0.003, Dist: DistGaussian, AlarmHigh: bound(0.05)},
	{StationID: "STN-06", Name: "force_feedback", Unit: "N", Baseline: 2.0, NoiseStd: 0.1, Dist: DistGaussian, AlarmLow: bound(1.0), AlarmHigh: bound(3.5)},
	{StationID: "STN-06", Name: "control_latency", Unit: "ms", Baseline: 8.0, NoiseStd: 0.5, Dist: DistLogNormal, AlarmHigh: bound(20)},
	{StationID: "STN-06", Name: "system_voltage", Unit: "V", Baseline: 48.0, NoiseStd: 0.3, Dist: DistGaussian, AlarmLow: bound(44), AlarmHigh: bound(52)},
}

// SensorsFor returns the sensors of one station in catalog order.
func SensorsFor(stationID string) []SensorSpec {
	var out []SensorSpec
	for _, s := range Sensors {
		if s.StationID == stationID {
			out = append(out, s)
		}
	}
	return out
}

// ScadaOperator is one member of the assembly-line crew.
type ScadaOperator struct {
	ID         string
	Name       string
	Shift      string
	Experience float64
	Skill      string
}

// ScadaOperators lists the crew in dimension order.
var ScadaOperators = []ScadaOperator{
	{"OPR-01", "Maria Santos", "Day", 8.2, "Expert"},
	{"OPR-02", "James Chen", "Day", 6.5, "Advanced"},
	{"OPR-03", "Aisha Patel", "Day", 4.1, "Advanced"},
	{"OPR-04", "Robert Kowalski", "Day", 2.3, "Intermediate"},
	{"OPR-05", "Yuki Tanaka", "Swing", 7.8, "Expert"},
	{"OPR-06", "Carlos Rivera", "Swing", 3.5, "Advanced"},
	{"OPR-07", "Emma Johansson", "Swing", 1.8, "Intermediate"},
	{"OPR-08", "David Okafor", "Swing", 5.0, "Advanced"},
	{"OPR-09", "Sarah Mitchell", "Night", 9.1, "Expert"},
	{"OPR-10", "Ahmed Hassan", "Night", 2.0, "Intermediate"},
	{"OPR-11", "Lisa Nguyen", "Night", 0.8, "Junior"},
	{"OPR-12", "Kevin O'Brien", "Night", 1.2, "Junior"},
}

// ShiftSpec describes one assembly-line shift and its context multipliers.
type ShiftSpec struct {
	Name         string
	StartHour    int
	EndHour      int
	NoiseMult    float64 // widens sensor noise scale
	Efficiency   float64 // divides into defect rate (lower efficiency = more defects)
	VolumeWeight float64 // share of production runs scheduled onto this shift
}

// Shifts lists the three shifts in rotation order. Day shift carries most of
// the production volume.
var Shifts = []ShiftSpec{
	{Name: "Day", StartHour: 6, EndHour: 14, NoiseMult: 1.00, Efficiency: 1.00, VolumeWeight: 0.50},
	{Name: "Swing", StartHour: 14, EndHour: 22, NoiseMult: 1.08, Efficiency: 0.97, VolumeWeight: 0.35},
	{Name: "Night", StartHour: 22, EndHour: 6, NoiseMult: 1.18, Efficiency: 0.93, VolumeWeight: 0.15},
}

// ShiftForHour classifies an hour of day into its shift.
func ShiftForHour(hour int) ShiftSpec {
	switch {
	case hour >= 6 && hour < 14:
		return Shifts[0]
	case hour >= 14 && hour < 22:
		return Shifts[1]
	default:
		return Shifts[2]
	}
}

// ArmProduct is one robotic-arm variant built on the line.
type ArmProduct struct {
	ID           string
	Name         string
	Complexity   float64
	MaterialCost float64
	Weight       float64 // order-mix draw weight
}

// ArmProducts lists the variants; the standard arm dominates the mix.
var ArmProducts = []ArmProduct{
	{ID: "RA-100", Name: "RA-100 Standard Arm", Complexity: 1.0, MaterialCost: 1200, Weight: 0.50},
	{ID: "RA-200", Name: "RA-200 Extended Reach", Complexity: 1.15, MaterialCost: 1450, Weight: 0.30},
	{ID: "RA-300", Name: "RA-300 High-Precision", Complexity: 1.30, MaterialCost: 1800, Weight: 0.20},
}

// OrderPriorities is the priority mix for assembly-line orders.
var OrderPriorities = []PriorityWeight{
	{"Standard", 0.65}, {"Rush", 0.25}, {"Critical", 0.10},
}

// StationVocabulary carries the per-station defect and root-cause wording.
type StationVocabulary struct {
	StationID   string
	DefectTypes []string
	RootCauses  []string
}

// StationVocabularies gives each station its own failure vocabulary.
var StationVocabularies = []StationVocabulary{
	{"STN-01",
		[]string{"Dimensional Out-of-Spec", "Surface Finish Defect", "Tool Mark", "Burr"},
		[]string{"Tool Wear", "Vibration", "Coolant Failure", "Material Variation"}},
	{"STN-02",
		[]string{"Solder Bridge", "Cold Joint", "Component Misalignment", "Tombstoning"},
		[]string{"Solder Temp Drift", "Placement Error", "Component Defect", "Ambient Temp"}},
	{"STN-03",
		[]string{"Winding Short", "Insulation Failure", "Torque Out-of-Spec", "Bearing Noise"},
		[]string{"Winding Tension", "Insulation Degradation", "Motor Overload", "Process Drift"}},
	{"STN-04",
		[]string{"Joint Misalignment", "Fastener Under-Torque", "Wiring Error", "Clearance Violation"},
		[]string{"Operator Error", "Fixture Misalignment", "Component Tolerance Stack", "Fatigue"}},
	{"STN-05",
		[]string{"Particulate Contamination", "Seal Failure", "Moisture Ingress", "Label Defect"},
		[]string{"Humidity Excursion", "Filter Degradation", "Glove Breach", "HVAC Failure"}},
	{"STN-06",
		[]string{"Accuracy Out-of-Spec", "Latency Exceeded", "Force Feedback Error", "Calibration Drift"},
		[]string{"Sensor Calibration", "Software Bug", "Electrical Noise", "Mechanical Wear"}},
}

// VocabularyFor returns the vocabulary for a station, or nil when unknown.
func VocabularyFor(stationID string) *StationVocabulary {
	for i := range StationVocabularies {
		if StationVocabularies[i].StationID == stationID {
			return &StationVocabularies[i]
		}
	}
	return nil
}
