package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRow struct {
	ID       string   `csv:"sensor_id"`
	Value    float64  `csv:"value"`
	Count    int      `csv:"count"`
	Active   bool     `csv:"active"`
	AlarmLow *float64 `csv:"alarm_low"`
	internal string   // unexported, no tag: excluded
	Skipped  string   `csv:"-"`
}

func TestFromRecords(t *testing.T) {
	low := 30.0
	rows := []sampleRow{
		{ID: "SNS-001", Value: 42.125, Count: 3, Active: true, AlarmLow: &low},
		{ID: "SNS-002", Value: 0.5, Count: 0, Active: false, AlarmLow: nil},
	}

	table, err := FromRecords("dim_sensors", rows)
	require.NoError(t, err)

	assert.Equal(t, []string{"sensor_id", "value", "count", "active", "alarm_low"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"SNS-001", "42.125", "3", "true", "30"}, table.Rows[0])
	assert.Equal(t, []string{"SNS-002", "0.5", "0", "false", ""}, table.Rows[1])
}

func TestFromRecordsRejectsNonSlice(t *testing.T) {
	_, err := FromRecords("bad", sampleRow{})
	assert.Error(t, err)
}

func TestFromRecordsRejectsUntaggedType(t *testing.T) {
	type bare struct{ A int }
	_, err := FromRecords("bad", []bare{{A: 1}})
	assert.Error(t, err)
}

func TestDatasetAddAndLookup(t *testing.T) {
	ds := New("jobshop")
	require.NoError(t, ds.Add("dim_sensors", []sampleRow{{ID: "SNS-001"}}))
	require.NoError(t, ds.Add("fact_readings", []sampleRow{{ID: "SNS-001"}, {ID: "SNS-001"}}))

	assert.Equal(t, []string{"dim_sensors", "fact_readings"}, ds.Names())
	require.NotNil(t, ds.Table("fact_readings"))
	assert.Len(t, ds.Table("fact_readings").Rows, 2)
	assert.Nil(t, ds.Table("missing"))
}
