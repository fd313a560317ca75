package query

import (
	"fmt"

	"go.flow.arcalot.io/projectsummary/internal/dataset"
	"go.flow.arcalot.io/projectsummary/internal/tidy"
	"go.flow.arcalot.io/projectsummary/internal/util"
)

const (
	codeField = "code"
	nameField = "name"
)

// NameBackfill flattens the code/name records at recordPath, sorts them by
// code and then name, and fills every empty name from the nearest following
// row that has one. Because empty names sort first within a code, a missing
// name is filled from its own code group whenever that group has a name.
// The names are returned in sorted order; names that could not be filled are
// nil.
func NameBackfill(table *dataset.Table, recordPath string) ([]*string, error) {
	flat, err := table.Normalize(recordPath)
	if err != nil {
		return nil, fmt.Errorf("failed to flatten %s (%w)", recordPath, err)
	}
	if flat.Rows() == 0 {
		return []*string{}, nil
	}
	codes, err := flat.Column(codeField)
	if err != nil {
		return nil, fmt.Errorf("failed to read codes of %s (%w)", recordPath, err)
	}
	names, err := flat.Column(nameField)
	if err != nil {
		return nil, fmt.Errorf("failed to read names of %s (%w)", recordPath, err)
	}

	rows := make([][]string, flat.Rows())
	for i := range rows {
		rows[i] = []string{cellOrEmpty(codes.Values[i]), cellOrEmpty(names.Values[i])}
	}
	tidy.SortRowsBy(rows, 0, 1)

	sortedNames := make([]string, len(rows))
	for i, row := range rows {
		sortedNames[i] = row[1]
	}
	return tidy.BackFill(tidy.NullIfEmpty(sortedNames)), nil
}

// cellOrEmpty treats missing cells like empty strings.
func cellOrEmpty(value any) string {
	if value == nil {
		return ""
	}
	return util.CellString(value)
}
