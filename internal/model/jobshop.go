// Package model defines one struct per generated table. Field order fixes
// column order; `csv` tags name the exported columns and gorm tags shape the
// optional database sink. Dates and timestamps are kept as formatted strings
// so the exported tables are byte-stable across runs with the same seed.
package model

// Machine is one row of dim_machines.
type Machine struct {
	MachineID           string  `gorm:"primaryKey" csv:"machine_id"`
	MachineName         string  `csv:"machine_name"`
	MachineType         string  `csv:"machine_type"`
	MachineDepartment   string  `csv:"machine_department"`
	AvgCycleTimeMin     float64 `csv:"avg_cycle_time_min"`
	CycleVariabilityPct float64 `csv:"cycle_variability_pct"`
	HourlyOperatingCost float64 `csv:"hourly_operating_cost"`
	AgeYears            float64 `csv:"age_years"`
	ConditionScore      float64 `csv:"condition_score"`
	InstallDate         string  `csv:"install_date"`
}

// Product is one row of dim_products.
type Product struct {
	ProductID          string  `gorm:"primaryKey" csv:"product_id"`
	ProductName        string  `csv:"product_name"`
	ProductFamily      string  `csv:"product_family"`
	RoutingSteps       int     `csv:"routing_steps"`
	RoutingSequence    string  `csv:"routing_sequence"`
	BaseMaterialCost   float64 `csv:"base_material_cost"`
	TargetCycleTimeMin float64 `csv:"target_cycle_time_min"`
}

// Operator is one row of the job shop's dim_operators.
type Operator struct {
	OperatorID          string  `gorm:"primaryKey" csv:"operator_id"`
	OperatorName        string  `csv:"operator_name"`
	PrimaryShift        string  `csv:"primary_shift"`
	HireDate            string  `csv:"hire_date"`
	ExperienceYears     float64 `csv:"experience_years"`
	SkillLevel          string  `csv:"skill_level"`
	CertificationsCount int     `csv:"certifications_count"`
	EfficiencyRating    float64 `csv:"efficiency_rating"`
}

// Customer is one row of dim_customers.
type Customer struct {
	CustomerID             string `gorm:"primaryKey" csv:"customer_id"`
	CustomerName           string `csv:"customer_name"`
	CustomerTier           string `csv:"customer_tier"`
	Region                 string `csv:"region"`
	OnTimeDeliveryTargetPct int   `csv:"on_time_delivery_target_pct"`
}

// JobOrder is one row of fact_job_orders.
type JobOrder struct {
	JobOrderID  string `gorm:"primaryKey" csv:"job_order_id"`
	ProductID   string `gorm:"index" csv:"product_id"`
	ProductName string `csv:"product_name"`
	CustomerID  string `gorm:"index" csv:"customer_id"`
	OrderDate   string `csv:"order_date"`
	DueDate     string `csv:"due_date"`
	Priority    string `csv:"priority"`
	Quantity    int    `csv:"quantity"`
	Status      string `csv:"status"`
}

// ProductionRun is one row of the job shop's fact_production: one routing
// step of one job order on one machine.
type ProductionRun struct {
	ProductionID    string  `gorm:"primaryKey" csv:"production_id"`
	JobOrderID      string  `gorm:"index" csv:"job_order_id"`
	ProductID       string  `csv:"product_id"`
	MachineID       string  `gorm:"index" csv:"machine_id"`
	OperatorID      string  `csv:"operator_id"`
	StepNumber      int     `csv:"step_number"`
	StepMachineType string  `csv:"step_machine_type"`
	Date            string  `csv:"date"`
	Shift           string  `csv:"shift"`
	StartTime       string  `csv:"start_time"`
	EndTime         string  `csv:"end_time"`
	SetupTimeMin    float64 `csv:"setup_time_min"`
	CycleTimeMin    float64 `csv:"cycle_time_min"`
	QueueTimeMin    float64 `csv:"queue_time_min"`
	TotalTimeMin    float64 `csv:"total_time_min"`
	QuantityIn      int     `csv:"quantity_in"`
	QuantityGood    int     `csv:"quantity_good"`
	FirstPassYield  float64 `csv:"first_pass_yield"`
	MachineCost     float64 `csv:"machine_cost"`
	LaborCost       float64 `csv:"labor_cost"`
}

// QualityEvent is one row of the job shop's fact_quality: one defective unit
// traced back to the production run that produced it.
type QualityEvent struct {
	QualityEventID        string  `gorm:"primaryKey" csv:"quality_event_id"`
	ProductionID          string  `gorm:"index" csv:"production_id"`
	JobOrderID            string  `csv:"job_order_id"`
	ProductID             string  `csv:"product_id"`
	MachineID             string  `csv:"machine_id"`
	OperatorID            string  `csv:"operator_id"`
	Date                  string  `csv:"date"`
	DefectType            string  `csv:"defect_type"`
	Severity              string  `csv:"severity"`
	Disposition           string  `csv:"disposition"`
	ReworkCost            float64 `csv:"rework_cost"`
	RootCause             string  `csv:"root_cause"`
	CorrectiveActionTaken bool    `csv:"corrective_action_taken"`
}

// DowntimeEvent is one row of the job shop's fact_downtime.
type DowntimeEvent struct {
	DowntimeID        string  `gorm:"primaryKey" csv:"downtime_id"`
	MachineID         string  `gorm:"index" csv:"machine_id"`
	Date              string  `csv:"date"`
	DowntimeCategory  string  `csv:"downtime_category"`
	DurationHours     float64 `csv:"duration_hours"`
	DowntimeCost      float64 `csv:"downtime_cost"`
	ShiftAffected     string  `csv:"shift_affected"`
	WasScheduled      bool    `csv:"was_scheduled"`
	ImpactDescription string  `csv:"impact_description"`
}
