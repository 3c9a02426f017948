package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"factory-sim-backend/config"
	"factory-sim-backend/internal/dataset"
	"factory-sim-backend/internal/model"
)

// A helper function to create an in-memory database connection.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func jobShopFixture(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds := dataset.New(config.LineJobShop)
	tables := []struct {
		name    string
		records any
	}{
		{"dim_machines", []model.Machine{
			{MachineID: "MCH-001", MachineName: "CNC Mill #1", MachineType: "CNC Mill",
				MachineDepartment: "Machining", AvgCycleTimeMin: 45, ConditionScore: 0.9,
				AgeYears: 4.5, InstallDate: "2019-07-01"},
		}},
		{"dim_products", []model.Product{
			{ProductID: "PRD-001", ProductName: "Hydraulic Valve Body", ProductFamily: "Hydraulic Components",
				RoutingSteps: 4, BaseMaterialCost: 45},
		}},
		{"dim_operators", []model.Operator{
			{OperatorID: "OPR-001", OperatorName: "Maria Santos", SkillLevel: "Expert",
				EfficiencyRating: 0.95, ExperienceYears: 8.2, HireDate: "2016-01-04"},
		}},
		{"dim_customers", []model.Customer{
			{CustomerID: "CUS-001", CustomerName: "Apex Manufacturing", CustomerTier: "Gold",
				Region: "Europe", OnTimeDeliveryTargetPct: 97},
		}},
		{"dim_date", []model.DateDay{
			{Date: "2024-01-02", Year: 2024, Quarter: "Q1", MonthNum: 1, MonthName: "January",
				WeekNum: 1, DayOfWeek: "Tuesday", IsWorkingDay: true, FiscalYear: 2023, FiscalQuarter: "FQ3"},
		}},
		{"fact_job_orders", []model.JobOrder{
			{JobOrderID: "JOB-00001", ProductID: "PRD-001", ProductName: "Hydraulic Valve Body",
				CustomerID: "CUS-001", OrderDate: "2024-01-02", DueDate: "2024-01-16",
				Priority: "Standard", Quantity: 5, Status: "Completed"},
		}},
		{"fact_production", []model.ProductionRun{
			{ProductionID: "PRD-RUN-000001", JobOrderID: "JOB-00001", ProductID: "PRD-001",
				MachineID: "MCH-001", OperatorID: "OPR-001", StepNumber: 1,
				StepMachineType: "CNC Mill", Date: "2024-01-02", QuantityIn: 5,
				QuantityGood: 4, FirstPassYield: 0.8},
		}},
		{"fact_quality", []model.QualityEvent{
			{QualityEventID: "QE-000001", ProductionID: "PRD-RUN-000001", JobOrderID: "JOB-00001",
				ProductID: "PRD-001", MachineID: "MCH-001", OperatorID: "OPR-001",
				Date: "2024-01-02", Severity: "Minor", Disposition: "Rework", ReworkCost: 40},
		}},
		{"fact_downtime", []model.DowntimeEvent{
			{DowntimeID: "DT-000001", MachineID: "MCH-001", Date: "2024-01-03",
				DowntimeCategory: "Planned Maintenance", DurationHours: 2, WasScheduled: true},
		}},
	}
	for _, tbl := range tables {
		require.NoError(t, ds.Add(tbl.name, tbl.records))
	}
	return ds
}

func TestGormStore_PersistJobShop(t *testing.T) {
	db := newTestDB(t)
	s := NewGormStore(db)
	ctx := context.Background()

	require.NoError(t, s.Migrate(ctx, config.LineJobShop))

	ds := jobShopFixture(t)
	require.NoError(t, s.Persist(ctx, ds))

	var machines []model.Machine
	require.NoError(t, db.Find(&machines).Error)
	require.Len(t, machines, 1)
	assert.Equal(t, "MCH-001", machines[0].MachineID)

	var runs []model.ProductionRun
	require.NoError(t, db.Find(&runs).Error)
	require.Len(t, runs, 1)
	assert.Equal(t, 4, runs[0].QuantityGood)
}

func TestGormStore_PersistReplacesPreviousRun(t *testing.T) {
	db := newTestDB(t)
	s := NewGormStore(db)
	ctx := context.Background()

	require.NoError(t, s.Migrate(ctx, config.LineJobShop))
	ds := jobShopFixture(t)

	require.NoError(t, s.Persist(ctx, ds))
	require.NoError(t, s.Persist(ctx, ds))

	var count int64
	require.NoError(t, db.Model(&model.JobOrder{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "re-persisting must replace, not append")
}

func TestGormStore_PersistRejectsUnknownLine(t *testing.T) {
	db := newTestDB(t)
	s := NewGormStore(db)

	err := s.Persist(context.Background(), dataset.New("conveyor"))
	assert.Error(t, err)
}
