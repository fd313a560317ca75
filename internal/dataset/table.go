// Package dataset loads a JSON array of records into a column-oriented table
// and flattens nested record lists into tables of their own.
package dataset

import (
	"fmt"
	"sort"

	"github.com/ohler55/ojg/oj"
)

// Table is a read-only, column-oriented view of a list of records. Each column
// holds one raw decoded JSON value per row; a row whose record lacks the field
// holds nil.
type Table struct {
	columns map[string][]any
	rows    int
}

// Column is a single named column of a Table.
type Column struct {
	Name   string
	Values []any
}

// Load parses a JSON array of objects into a Table.
func Load(data []byte) (*Table, error) {
	parsed, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (%w)", ErrInvalidJSON, err)
	}
	items, ok := parsed.([]any)
	if !ok {
		return nil, fmt.Errorf("%w (top level value is %T)", ErrNotRecordArray, parsed)
	}
	records := make([]map[string]any, len(items))
	for i, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w (item %d is %T)", ErrNotRecordArray, i, item)
		}
		records[i] = record
	}
	return FromRecords(records), nil
}

// FromRecords builds a Table from already decoded records. The columns are the
// union of all record keys.
func FromRecords(records []map[string]any) *Table {
	t := &Table{
		columns: map[string][]any{},
		rows:    len(records),
	}
	for i, record := range records {
		for key, value := range record {
			col, ok := t.columns[key]
			if !ok {
				col = make([]any, len(records))
				t.columns[key] = col
			}
			col[i] = value
		}
	}
	return t
}

// Rows returns the number of records in the table.
func (t *Table) Rows() int {
	return t.rows
}

// ColumnNames returns the sorted names of all columns.
func (t *Table) ColumnNames() []string {
	names := make([]string, 0, len(t.columns))
	for name := range t.columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Column returns the named column, or ErrMissingColumn if no record has the field.
func (t *Table) Column(name string) (Column, error) {
	values, ok := t.columns[name]
	if !ok {
		return Column{}, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	return Column{Name: name, Values: values}, nil
}

// record reassembles the fields of row i.
func (t *Table) record(i int) map[string]any {
	result := map[string]any{}
	for name, values := range t.columns {
		if values[i] != nil {
			result[name] = values[i]
		}
	}
	return result
}
