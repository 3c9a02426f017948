package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"factory-sim-backend/config"
	"factory-sim-backend/internal/dataset"
	"factory-sim-backend/internal/model"
)

func setupTablesRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ds := dataset.New(config.LineJobShop)
	machines := []model.Machine{
		{MachineID: "MCH-001", MachineName: "CNC Mill #1", MachineType: "CNC Mill"},
		{MachineID: "MCH-002", MachineName: "CNC Mill #2", MachineType: "CNC Mill"},
		{MachineID: "MCH-003", MachineName: "CNC Lathe #1", MachineType: "CNC Lathe"},
	}
	require.NoError(t, ds.Add("dim_machines", machines))

	r := gin.New()
	handler := NewHandler(ds)
	r.GET("/api/tables", handler.ListTables)
	r.GET("/api/tables/:name", handler.GetTable)
	return r
}

func TestListTables(t *testing.T) {
	router := setupTablesRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/tables", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Line   string         `json:"line"`
		Tables []TableSummary `json:"tables"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, config.LineJobShop, resp.Line)
	require.Len(t, resp.Tables, 1)
	assert.Equal(t, "dim_machines", resp.Tables[0].Name)
	assert.Equal(t, 3, resp.Tables[0].RowCount)
}

func TestGetTablePagination(t *testing.T) {
	router := setupTablesRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/tables/dim_machines?offset=1&limit=1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var page TablePage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 3, page.RowCount)
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "MCH-002", page.Rows[0][0])
}

func TestGetTableOffsetPastEnd(t *testing.T) {
	router := setupTablesRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/tables/dim_machines?offset=100", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var page TablePage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Empty(t, page.Rows)
}

func TestGetTableUnknown(t *testing.T) {
	router := setupTablesRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/tables/fact_nonexistent", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"unknown table"}`, w.Body.String())
}

func TestGetTableBadQuery(t *testing.T) {
	router := setupTablesRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/tables/dim_machines?limit=zero", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
