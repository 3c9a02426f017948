package scenario

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"factory-sim-backend/config"
	"factory-sim-backend/internal/dataset"
	"factory-sim-backend/internal/model"
)

func jobShopDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds := dataset.New(config.LineJobShop)
	require.NoError(t, ds.Add("dim_machines", []model.Machine{
		{MachineID: "MCH-001", AgeYears: 4.0, ConditionScore: 0.9},
	}))
	require.NoError(t, ds.Add("fact_job_orders", []model.JobOrder{
		{JobOrderID: "JOB-00001", Priority: "Standard", Quantity: 1},
		{JobOrderID: "JOB-00002", Priority: "Critical", Quantity: 10},
	}))
	require.NoError(t, ds.Add("fact_production", []model.ProductionRun{
		{ProductionID: "PRD-RUN-000001", SetupTimeMin: 10, CycleTimeMin: 40,
			QueueTimeMin: 30, TotalTimeMin: 240, QuantityIn: 5, QuantityGood: 4,
			FirstPassYield: 0.8, MachineCost: 100},
		{ProductionID: "PRD-RUN-000002", SetupTimeMin: 5, CycleTimeMin: 20,
			QueueTimeMin: 10, TotalTimeMin: 55, QuantityIn: 2, QuantityGood: 2,
			FirstPassYield: 0.99, MachineCost: 50},
	}))
	require.NoError(t, ds.Add("fact_downtime", []model.DowntimeEvent{
		{DowntimeID: "DT-000001", DurationHours: 2.0, DowntimeCost: 100},
	}))
	return ds
}

func TestBaselineIsIdentity(t *testing.T) {
	ds := jobShopDataset(t)
	out, err := Apply(ds, Baseline, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Same(t, ds, out)
}

func TestUnknownScenarioFails(t *testing.T) {
	_, err := Apply(jobShopDataset(t), "apocalypse", rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestLeanTransform(t *testing.T) {
	ds := jobShopDataset(t)
	out, err := Apply(ds, Lean, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	runs := out.Table("fact_production").Records.([]model.ProductionRun)
	require.Len(t, runs, 2)
	assert.Equal(t, 18.0, runs[0].QueueTimeMin)
	assert.Equal(t, 10+40*5+18.0, runs[0].TotalTimeMin)
	assert.Equal(t, 0.824, runs[0].FirstPassYield)
	assert.Equal(t, 1.0, runs[1].FirstPassYield, "yield improvement is capped at 1.0")

	dt := out.Table("fact_downtime").Records.([]model.DowntimeEvent)
	assert.Equal(t, 1.4, dt[0].DurationHours)
	assert.Equal(t, 70.0, dt[0].DowntimeCost)
}

func TestLeanDoesNotMutateInput(t *testing.T) {
	ds := jobShopDataset(t)
	_, err := Apply(ds, Lean, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	runs := ds.Table("fact_production").Records.([]model.ProductionRun)
	assert.Equal(t, 30.0, runs[0].QueueTimeMin, "the base dataset must stay untouched")
	assert.Equal(t, 0.8, runs[0].FirstPassYield)
}

func TestHighDemandTransform(t *testing.T) {
	ds := jobShopDataset(t)
	out, err := Apply(ds, HighDemand, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	jobs := out.Table("fact_job_orders").Records.([]model.JobOrder)
	require.Len(t, jobs, 2)
	for _, j := range jobs {
		assert.GreaterOrEqual(t, j.Quantity, 1)
	}
	assert.Equal(t, 14, jobs[1].Quantity)
	assert.Equal(t, "Critical", jobs[1].Priority, "non-standard priorities are kept")
}

func TestAgingEquipmentTransform(t *testing.T) {
	ds := jobShopDataset(t)
	out, err := Apply(ds, AgingEquipment, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	machines := out.Table("dim_machines").Records.([]model.Machine)
	assert.Equal(t, 0.77, machines[0].ConditionScore)
	assert.Equal(t, 7.0, machines[0].AgeYears)

	runs := out.Table("fact_production").Records.([]model.ProductionRun)
	assert.Equal(t, 44.8, runs[0].CycleTimeMin)
	assert.Equal(t, 112.0, runs[0].MachineCost)

	dt := out.Table("fact_downtime").Records.([]model.DowntimeEvent)
	assert.Equal(t, 2.7, dt[0].DurationHours)
	assert.Equal(t, 135.0, dt[0].DowntimeCost)
}

func TestScenarioRowsStayInSyncWithRecords(t *testing.T) {
	ds := jobShopDataset(t)
	out, err := Apply(ds, Lean, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	table := out.Table("fact_production")
	assert.Equal(t, "18", table.Rows[0][findColumn(t, table.Columns, "queue_time_min")])
}

func findColumn(t *testing.T, columns []string, name string) int {
	t.Helper()
	for i, c := range columns {
		if c == name {
			return i
		}
	}
	t.Fatalf("column %s not found", name)
	return -1
}
