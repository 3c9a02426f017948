// Package export writes a dataset's tables to disk as CSV, one file per
// table under a per-scenario directory, matching the layout BI tools import
// from: <dir>/<scenario>/<table>.csv.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"factory-sim-backend/internal/dataset"
)

// CSV writes every table of the dataset under dir/scenario/. The directory
// is created as needed; existing files are overwritten.
func CSV(ds *dataset.Dataset, dir, scenario string) error {
	target := filepath.Join(dir, scenario)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("export: creating %s: %w", target, err)
	}
	for _, t := range ds.Tables {
		if err := writeTable(t, target); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(t *dataset.Table, dir string) error {
	path := filepath.Join(dir, t.Name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("export: %s: writing header: %w", t.Name, err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("export: %s: writing row: %w", t.Name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("export: %s: flushing: %w", t.Name, err)
	}
	return f.Close()
}
