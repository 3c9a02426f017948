// Package catalog holds the static reference data for both simulated lines:
// machine and station specs, product routings, operator and customer pools,
// defect taxonomies and downtime categories. Everything is an ordered slice,
// never a map, so that generation walks the catalog in a fixed order and the
// seeded RNG is consumed identically on every run.
package catalog

// MachineSpec describes one job-shop machine type.
type MachineSpec struct {
	Type        string
	Count       int
	AvgCycleMin float64
	Variability float64 // fraction of AvgCycleMin used as cycle-time std dev
	HourlyCost  float64
	Department  string
}

// MachineSpecs lists the job-shop machine fleet in dimension order.
var MachineSpecs = []MachineSpec{
	{Type: "CNC Mill", Count: 4, AvgCycleMin: 45, Variability: 0.15, HourlyCost: 85, Department: "Machining"},
	{Type: "CNC Lathe", Count: 3, AvgCycleMin: 35, Variability: 0.12, HourlyCost: 75, Department: "Machining"},
	{Type: "Drill Press", Count: 3, AvgCycleMin: 20, Variability: 0.10, HourlyCost: 45, Department: "Machining"},
	{Type: "Surface Grinder", Count: 2, AvgCycleMin: 30, Variability: 0.18, HourlyCost: 65, Department: "Finishing"},
	{Type: "Assembly Station", Count: 4, AvgCycleMin: 60, Variability: 0.20, HourlyCost: 40, Department: "Assembly"},
	{Type: "Inspection Station", Count: 2, AvgCycleMin: 15, Variability: 0.08, HourlyCost: 55, Department: "Quality"},
}

// BottleneckMachineType is deliberately capacity-constrained so queue time
// and stress variance concentrate there.
const BottleneckMachineType = "Surface Grinder"

// MachineSpecByType returns the spec for a machine type, or nil when unknown.
func MachineSpecByType(machineType string) *MachineSpec {
	for i := range MachineSpecs {
		if MachineSpecs[i].Type == machineType {
			return &MachineSpecs[i]
		}
	}
	return nil
}

// PriorityWeight pairs an order priority class with its draw weight.
type PriorityWeight struct {
	Priority string
	Weight   float64
}

// ProductSpec describes one job-shop product and its routing.
type ProductSpec struct {
	Name            string
	Family          string
	Routing         []string // machine types, in processing order
	MaterialCost    float64
	PriorityWeights []PriorityWeight
}

// Products lists the job-shop product catalog in dimension order.
var Products = []ProductSpec{
	{
		Name: "Hydraulic Valve Body", Family: "Hydraulic Components",
		Routing:      []string{"CNC Mill", "Drill Press", "Surface Grinder", "Inspection Station"},
		MaterialCost: 45.00,
		PriorityWeights: []PriorityWeight{
			{"Standard", 0.6}, {"Rush", 0.25}, {"Critical", 0.15},
		},
	},
	{
		Name: "Gear Assembly", Family: "Drivetrain",
		Routing:      []string{"CNC Lathe", "Surface Grinder", "Assembly Station", "Inspection Station"},
		MaterialCost: 62.00,
		PriorityWeights: []PriorityWeight{
			{"Standard", 0.7}, {"Rush", 0.2}, {"Critical", 0.1},
		},
	},
	{
		Name: "Pump Housing", Family: "Hydraulic Components",
		Routing:      []string{"CNC Mill", "Drill Press", "CNC Lathe", "Inspection Station"},
		MaterialCost: 38.00,
		PriorityWeights: []PriorityWeight{
			{"Standard", 0.5}, {"Rush", 0.3}, {"Critical", 0.2},
		},
	},
	{
		Name: "Motor Shaft", Family: "Drivetrain",
		Routing:      []string{"CNC Lathe", "Surface Grinder", "Inspection Station"},
		MaterialCost: 28.00,
		PriorityWeights: []PriorityWeight{
			{"Standard", 0.65}, {"Rush", 0.25}, {"Critical", 0.1},
		},
	},
	{
		Name: "Control Panel Frame", Family: "Electrical Enclosures",
		Routing:      []string{"CNC Mill", "Drill Press", "Assembly Station", "Inspection Station"},
		MaterialCost: 55.00,
		PriorityWeights: []PriorityWeight{
			{"Standard", 0.55}, {"Rush", 0.3}, {"Critical", 0.15},
		},
	},
	{
		Name: "Bearing Cap", Family: "Drivetrain",
		Routing:      []string{"CNC Lathe", "Drill Press", "Surface Grinder", "Inspection Station"},
		MaterialCost: 18.00,
		PriorityWeights: []PriorityWeight{
			{"Standard", 0.75}, {"Rush", 0.2}, {"Critical", 0.05},
		},
	},
	{
		Name: "Manifold Block", Family: "Hydraulic Components",
		Routing:      []string{"CNC Mill", "Drill Press", "Drill Press", "Surface Grinder", "Inspection Station"},
		MaterialCost: 72.00,
		PriorityWeights: []PriorityWeight{
			{"Standard", 0.5}, {"Rush", 0.3}, {"Critical", 0.2},
		},
	},
	{
		Name: "Sensor Bracket", Family: "Electrical Enclosures",
		Routing:      []string{"CNC Mill", "Drill Press", "Assembly Station", "Inspection Station"},
		MaterialCost: 12.00,
		PriorityWeights: []PriorityWeight{
			{"Standard", 0.8}, {"Rush", 0.15}, {"Critical", 0.05},
		},
	},
}

// LeadDays maps an order priority to its promised lead time.
func LeadDays(priority string) int {
	switch priority {
	case "Rush":
		return 7
	case "Critical":
		return 3
	default:
		return 14
	}
}

// OperatorNames is the job-shop operator pool.
var OperatorNames = []string{
	"Maria Santos", "James Chen", "Aisha Patel", "Robert Kowalski",
	"Yuki Tanaka", "Carlos Rivera", "Emma Johansson", "David Okafor",
	"Sarah Mitchell", "Ahmed Hassan", "Lisa Nguyen", "Michael Brown",
	"Ana Garcia", "Tomasz Nowak", "Priya Sharma", "Kevin O'Brien",
}

// JobShopShifts are the shift labels used by the job-shop line.
var JobShopShifts = []string{"Morning (6AM-2PM)", "Afternoon (2PM-10PM)", "Night (10PM-6AM)"}

// Customers is the job-shop customer pool.
var Customers = []string{
	"Apex Manufacturing", "BlueStar Industries", "CrestLine Engineering",
	"Delta Precision Corp", "EagleTech Solutions", "ForgeMaster Inc",
	"GlobalDrive Systems", "HorizonMech Ltd",
}

// CustomerTiers and Regions parameterize the customer dimension.
var (
	CustomerTiers      = []PriorityWeight{{"Platinum", 0.2}, {"Gold", 0.4}, {"Silver", 0.4}}
	Regions            = []string{"North America", "Europe", "Asia-Pacific"}
	OnTimeTargets      = []int{95, 97, 98, 99}
	JobShopDefectTypes = []string{
		"Dimensional Out-of-Spec", "Surface Finish Defect", "Material Defect",
		"Assembly Error", "Tool Wear Damage", "Alignment Error",
		"Contamination", "Crack/Fracture",
	}
	JobShopRootCauses = []string{
		"Tool Wear", "Operator Error", "Material Variation",
		"Machine Calibration", "Process Drift", "Environmental",
	}
)

// SeverityWeight pairs a defect severity with its draw weight.
type SeverityWeight struct {
	Severity string
	Weight   float64
}

// DefectSeverities lists severities and their unconditional weights.
var DefectSeverities = []SeverityWeight{
	{"Minor", 0.50}, {"Major", 0.35}, {"Critical", 0.15},
}

// DispositionWeight pairs a disposition with its weight under one severity.
type DispositionWeight struct {
	Disposition string
	Weight      float64
}

// DispositionTable conditions the disposition distribution on severity:
// critical defects skew toward scrap, minor ones toward rework.
type DispositionTable struct {
	Severity     string
	Dispositions []DispositionWeight
}

// Dispositions is the severity-conditioned disposition catalog.
var Dispositions = []DispositionTable{
	{"Minor", []DispositionWeight{{"Rework", 0.75}, {"Use As-Is", 0.15}, {"Scrap", 0.10}}},
	{"Major", []DispositionWeight{{"Rework", 0.45}, {"Scrap", 0.45}, {"Use As-Is", 0.10}}},
	{"Critical", []DispositionWeight{{"Scrap", 0.70}, {"Rework", 0.25}, {"Use As-Is", 0.05}}},
}

// DispositionsFor returns the disposition table for a severity, or nil.
func DispositionsFor(severity string) []DispositionWeight {
	for _, t := range Dispositions {
		if t.Severity == severity {
			return t.Dispositions
		}
	}
	return nil
}

// DowntimeCategory describes one downtime cause and its base rate.
type DowntimeCategory struct {
	Name        string
	AvgHours    float64
	MonthlyFreq float64
	Scheduled   bool
	Impact      string
}

// UnplannedBreakdown is the one downtime category whose occurrence is coupled
// to asset degradation.
const UnplannedBreakdown = "Unplanned Breakdown"

// DowntimeCategories lists downtime causes in generation order.
var DowntimeCategories = []DowntimeCategory{
	{"Planned Maintenance", 2.0, 2.0, true, "Scheduled service - production rerouted"},
	{UnplannedBreakdown, 3.5, 0.8, false, "Emergency repair required - jobs delayed"},
	{"Tooling Change", 0.5, 5.0, true, "Tool replacement for new job setup"},
	{"Material Shortage", 3.0, 0.3, false, "Waiting for material delivery"},
	{"Quality Hold", 1.5, 0.4, false, "Production paused pending quality investigation"},
	{"Calibration", 1.0, 1.0, true, "Periodic calibration per quality standard"},
}
