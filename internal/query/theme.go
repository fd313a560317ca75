package query

import (
	"fmt"

	"go.flow.arcalot.io/projectsummary/internal/dataset"
	"go.flow.arcalot.io/projectsummary/internal/tidy"
	"go.flow.arcalot.io/projectsummary/internal/util"
)

// FlattenThemes turns a column of theme cells into one list of theme entries.
// A list cell contributes each of its elements, a missing cell contributes
// nothing and any other cell contributes itself. Entries are rendered with
// util.CellString, so structurally equal entries compare equal.
func FlattenThemes(cells []any) []string {
	var entries []string
	for _, cell := range cells {
		switch v := cell.(type) {
		case nil:
		case []any:
			for _, item := range v {
				entries = append(entries, util.CellString(item))
			}
		default:
			entries = append(entries, util.CellString(v))
		}
	}
	return entries
}

// ThemeFrequency flattens the theme column and returns the n most frequent
// theme entries, highest count first. Entries with equal counts are listed in
// the order they first appear.
func ThemeFrequency(table *dataset.Table, column string, n int) ([]tidy.Count, error) {
	col, err := table.Column(column)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme column (%w)", err)
	}
	return tidy.Head(tidy.ValueCounts(FlattenThemes(col.Values)), n), nil
}
