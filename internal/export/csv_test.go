package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"factory-sim-backend/config"
	"factory-sim-backend/internal/dataset"
	"factory-sim-backend/internal/model"
)

func TestCSVWritesOneFilePerTable(t *testing.T) {
	ds := dataset.New(config.LineJobShop)
	require.NoError(t, ds.Add("dim_machines", []model.Machine{
		{MachineID: "MCH-001", MachineName: "CNC Mill #1", MachineType: "CNC Mill",
			AvgCycleTimeMin: 45, ConditionScore: 0.92},
	}))
	require.NoError(t, ds.Add("fact_downtime", []model.DowntimeEvent{
		{DowntimeID: "DT-000001", MachineID: "MCH-001", Date: "2024-02-05",
			DowntimeCategory: "Calibration", DurationHours: 1.25, WasScheduled: true},
		{DowntimeID: "DT-000002", MachineID: "MCH-001", Date: "2024-03-11",
			DowntimeCategory: "Unplanned Breakdown", DurationHours: 3.5},
	}))

	dir := t.TempDir()
	require.NoError(t, CSV(ds, dir, "baseline"))

	f, err := os.Open(filepath.Join(dir, "baseline", "fact_downtime.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus two rows")
	assert.Equal(t, ds.Table("fact_downtime").Columns, records[0])
	assert.Equal(t, "DT-000001", records[1][0])
	assert.Equal(t, "1.25", records[1][4])

	_, err = os.Stat(filepath.Join(dir, "baseline", "dim_machines.csv"))
	assert.NoError(t, err)
}

func TestCSVOverwritesExisting(t *testing.T) {
	ds := dataset.New(config.LineJobShop)
	require.NoError(t, ds.Add("dim_machines", []model.Machine{{MachineID: "MCH-001"}}))

	dir := t.TempDir()
	require.NoError(t, CSV(ds, dir, "lean"))
	require.NoError(t, CSV(ds, dir, "lean"))

	f, err := os.Open(filepath.Join(dir, "lean", "dim_machines.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
