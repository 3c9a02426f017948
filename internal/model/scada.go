package model

// Station is one row of dim_stations.
type Station struct {
	StationID          string  `gorm:"primaryKey" csv:"station_id"`
	StationName        string  `csv:"station_name"`
	Description        string  `csv:"description"`
	LinePosition       int     `csv:"line_position"`
	NumMachines        int     `csv:"num_machines"`
	TargetCycleTimeMin float64 `csv:"target_cycle_time_min"`
	IsBottleneck       bool    `csv:"is_bottleneck"`
}

// Sensor is one row of dim_sensors. Nil bounds export as empty cells.
type Sensor struct {
	SensorID      string   `gorm:"primaryKey" csv:"sensor_id"`
	StationID     string   `gorm:"index" csv:"station_id"`
	SensorName    string   `csv:"sensor_name"`
	Unit          string   `csv:"unit"`
	BaselineValue float64  `csv:"baseline_value"`
	AlarmLow      *float64 `csv:"alarm_low"`
	AlarmHigh     *float64 `csv:"alarm_high"`
}

// LineOperator is one row of the assembly line's dim_operators.
type LineOperator struct {
	OperatorID       string  `gorm:"primaryKey" csv:"operator_id"`
	OperatorName     string  `csv:"operator_name"`
	PrimaryShift     string  `csv:"primary_shift"`
	ExperienceYears  float64 `csv:"experience_years"`
	SkillLevel       string  `csv:"skill_level"`
	EfficiencyRating float64 `csv:"efficiency_rating"`
}

// ShiftDim is one row of dim_shifts.
type ShiftDim struct {
	ShiftName        string  `gorm:"primaryKey" csv:"shift_name"`
	StartHour        int     `csv:"start_hour"`
	EndHour          int     `csv:"end_hour"`
	NoiseMultiplier  float64 `csv:"noise_multiplier"`
	EfficiencyFactor float64 `csv:"efficiency_factor"`
}

// ArmProductDim is one row of the assembly line's dim_products.
type ArmProductDim struct {
	ProductID        string  `gorm:"primaryKey" csv:"product_id"`
	ProductName      string  `csv:"product_name"`
	Complexity       float64 `csv:"complexity"`
	UnitMaterialCost float64 `csv:"unit_material_cost"`
}

// SensorReading is one row of fact_sensor_readings, the highest-volume table.
type SensorReading struct {
	ReadingID  string  `gorm:"primaryKey" csv:"reading_id"`
	Timestamp  string  `csv:"timestamp"`
	Date       string  `gorm:"index" csv:"date"`
	StationID  string  `gorm:"index" csv:"station_id"`
	SensorID   string  `gorm:"index" csv:"sensor_id"`
	SensorName string  `csv:"sensor_name"`
	Value      float64 `csv:"value"`
	Unit       string  `csv:"unit"`
	Shift      string  `csv:"shift"`
}

// AssemblyRun is one row of the assembly line's fact_production: one unit
// passing through one station.
type AssemblyRun struct {
	ProductionID  string  `gorm:"primaryKey" csv:"production_id"`
	OrderID       string  `gorm:"index" csv:"order_id"`
	ProductID     string  `csv:"product_id"`
	StationID     string  `gorm:"index" csv:"station_id"`
	OperatorID    string  `csv:"operator_id"`
	Date          string  `csv:"date"`
	Shift         string  `csv:"shift"`
	Priority      string  `csv:"priority"`
	CycleTimeMin  float64 `csv:"cycle_time_min"`
	QueueTimeMin  float64 `csv:"queue_time_min"`
	SetupTimeMin  float64 `csv:"setup_time_min"`
	TotalTimeMin  float64 `csv:"total_time_min"`
	MachineCost   float64 `csv:"machine_cost"`
	LaborCost     float64 `csv:"labor_cost"`
	MaterialCost  float64 `csv:"material_cost"`
	QualityResult string  `csv:"quality_result"`
}

// LineQualityEvent is one row of fact_quality_events: one failed unit with
// its severity, disposition and costs.
type LineQualityEvent struct {
	QualityEventID   string  `gorm:"primaryKey" csv:"quality_event_id"`
	ProductionID     string  `gorm:"index" csv:"production_id"`
	OrderID          string  `csv:"order_id"`
	ProductID        string  `csv:"product_id"`
	StationID        string  `csv:"station_id"`
	OperatorID       string  `csv:"operator_id"`
	Date             string  `csv:"date"`
	Shift            string  `csv:"shift"`
	DefectType       string  `csv:"defect_type"`
	Severity         string  `csv:"severity"`
	Disposition      string  `csv:"disposition"`
	RootCause        string  `csv:"root_cause"`
	ReworkCost       float64 `csv:"rework_cost"`
	ScrapCost        float64 `csv:"scrap_cost"`
	TotalQualityCost float64 `csv:"total_quality_cost"`
	CorrectiveAction bool    `csv:"corrective_action"`
}

// StationDowntime is one row of the assembly line's fact_downtime.
type StationDowntime struct {
	DowntimeID         string  `gorm:"primaryKey" csv:"downtime_id"`
	StationID          string  `gorm:"index" csv:"station_id"`
	Date               string  `csv:"date"`
	StartHour          int     `csv:"start_hour"`
	Shift              string  `csv:"shift"`
	DowntimeCategory   string  `csv:"downtime_category"`
	IsScheduled        bool    `csv:"is_scheduled"`
	DurationHours      float64 `csv:"duration_hours"`
	LostProductionCost float64 `csv:"lost_production_cost"`
	RepairCost         float64 `csv:"repair_cost"`
	TotalDowntimeCost  float64 `csv:"total_downtime_cost"`
}

// Alarm is one row of fact_alarms. ReadingID pins the alarm to the exact
// sensor reading that breached its bound.
type Alarm struct {
	AlarmID    string  `gorm:"primaryKey" csv:"alarm_id"`
	ReadingID  string  `gorm:"index" csv:"reading_id"`
	Timestamp  string  `csv:"timestamp"`
	Date       string  `csv:"date"`
	StationID  string  `csv:"station_id"`
	SensorID   string  `csv:"sensor_id"`
	SensorName string  `csv:"sensor_name"`
	AlarmType  string  `csv:"alarm_type"`
	Value      float64 `csv:"value"`
	Threshold  float64 `csv:"threshold"`
	Shift      string  `csv:"shift"`
}
