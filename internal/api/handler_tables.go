package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"factory-sim-backend/internal/dataset"
)

// Pagination bounds for GET /api/tables/:name.
const (
	defaultPageSize = 100
	maxPageSize     = 1000
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	ds *dataset.Dataset
}

// NewHandler creates a new API handler over a finished dataset.
func NewHandler(ds *dataset.Dataset) *Handler {
	return &Handler{ds: ds}
}

// TableSummary describes one table in the list response.
type TableSummary struct {
	Name     string   `json:"name"`
	Columns  []string `json:"columns"`
	RowCount int      `json:"rowCount"`
}

// TablePage is one page of a table's rows.
type TablePage struct {
	Name     string     `json:"name"`
	Columns  []string   `json:"columns"`
	RowCount int        `json:"rowCount"`
	Offset   int        `json:"offset"`
	Limit    int        `json:"limit"`
	Rows     [][]string `json:"rows"`
}

// ListTables handles GET /api/tables.
func (h *Handler) ListTables(c *gin.Context) {
	summaries := make([]TableSummary, 0, len(h.ds.Tables))
	for _, t := range h.ds.Tables {
		summaries = append(summaries, TableSummary{
			Name:     t.Name,
			Columns:  t.Columns,
			RowCount: len(t.Rows),
		})
	}
	c.JSON(http.StatusOK, gin.H{"line": h.ds.Line, "tables": summaries})
}

// GetTable handles GET /api/tables/:name with offset/limit pagination.
func (h *Handler) GetTable(c *gin.Context) {
	t := h.ds.Table(c.Param("name"))
	if t == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown table"})
		return
	}

	offset, err := parseQueryInt(c, "offset", 0)
	if err != nil || offset < 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
		return
	}
	limit, err := parseQueryInt(c, "limit", defaultPageSize)
	if err != nil || limit <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	start := offset
	if start > len(t.Rows) {
		start = len(t.Rows)
	}
	end := start + limit
	if end > len(t.Rows) {
		end = len(t.Rows)
	}

	c.JSON(http.StatusOK, TablePage{
		Name:     t.Name,
		Columns:  t.Columns,
		RowCount: len(t.Rows),
		Offset:   offset,
		Limit:    limit,
		Rows:     t.Rows[start:end],
	})
}

func parseQueryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
