// Package dataset packages generated rows into named tables: the ordered
// column/cell form consumed by export and the API, plus the underlying typed
// record slice consumed by the database sink.
package dataset

import (
	"fmt"
	"reflect"
	"strconv"
)

// Table is one finished star-schema table.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
	Records any // the typed []model.X slice the rows were built from
}

// Dataset is the ordered set of tables one simulation run produces.
type Dataset struct {
	Line   string
	Tables []*Table
	byName map[string]*Table
}

// New creates an empty dataset for a line.
func New(line string) *Dataset {
	return &Dataset{Line: line, byName: make(map[string]*Table)}
}

// Add converts a typed record slice into a table and appends it. records
// must be a slice of structs whose exported fields carry `csv` tags.
func (d *Dataset) Add(name string, records any) error {
	t, err := FromRecords(name, records)
	if err != nil {
		return err
	}
	d.Tables = append(d.Tables, t)
	d.byName[name] = t
	return nil
}

// Table returns a table by name, or nil.
func (d *Dataset) Table(name string) *Table {
	return d.byName[name]
}

// Names lists table names in generation order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.Tables))
	for i, t := range d.Tables {
		names[i] = t.Name
	}
	return names
}

// FromRecords builds a Table from a slice of row structs via their csv tags.
func FromRecords(name string, records any) (*Table, error) {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Slice {
		return nil, fmt.Errorf("dataset: table %s: records must be a slice, got %T", name, records)
	}
	elem := v.Type().Elem()
	if elem.Kind() != reflect.Struct {
		return nil, fmt.Errorf("dataset: table %s: records must be a slice of structs, got %T", name, records)
	}

	var cols []string
	var fields []int
	for i := 0; i < elem.NumField(); i++ {
		tag := elem.Field(i).Tag.Get("csv")
		if tag == "" || tag == "-" {
			continue
		}
		cols = append(cols, tag)
		fields = append(fields, i)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("dataset: table %s: row type %s has no csv-tagged fields", name, elem.Name())
	}

	rows := make([][]string, v.Len())
	for r := 0; r < v.Len(); r++ {
		rec := v.Index(r)
		row := make([]string, len(fields))
		for c, fi := range fields {
			cell, err := formatCell(rec.Field(fi))
			if err != nil {
				return nil, fmt.Errorf("dataset: table %s, column %s: %w", name, cols[c], err)
			}
			row[c] = cell
		}
		rows[r] = row
	}

	return &Table{Name: name, Columns: cols, Rows: rows, Records: records}, nil
}

func formatCell(f reflect.Value) (string, error) {
	switch f.Kind() {
	case reflect.String:
		return f.String(), nil
	case reflect.Int, reflect.Int64:
		return strconv.FormatInt(f.Int(), 10), nil
	case reflect.Float64:
		return strconv.FormatFloat(f.Float(), 'f', -1, 64), nil
	case reflect.Bool:
		return strconv.FormatBool(f.Bool()), nil
	case reflect.Pointer:
		if f.IsNil() {
			return "", nil
		}
		return formatCell(f.Elem())
	default:
		return "", fmt.Errorf("unsupported cell kind %s", f.Kind())
	}
}
