package model

// DateDay is one row of dim_date, shared by both lines. Fiscal year starts
// in July.
type DateDay struct {
	Date          string `gorm:"primaryKey" csv:"date"`
	Year          int    `csv:"year"`
	Quarter       string `csv:"quarter"`
	MonthNum      int    `csv:"month_num"`
	MonthName     string `csv:"month_name"`
	WeekNum       int    `csv:"week_num"`
	DayOfWeek     string `csv:"day_of_week"`
	IsWeekend     bool   `csv:"is_weekend"`
	IsWorkingDay  bool   `csv:"is_working_day"`
	FiscalYear    int    `csv:"fiscal_year"`
	FiscalQuarter string `csv:"fiscal_quarter"`
}
