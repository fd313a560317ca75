package query

import (
	"fmt"

	"go.flow.arcalot.io/projectsummary/internal/dataset"
	"go.flow.arcalot.io/projectsummary/internal/tidy"
	"go.flow.arcalot.io/projectsummary/internal/util"
)

// CountryFrequency counts the projects per value of the country column and
// returns the n most frequent, highest count first. Countries with equal
// counts are listed in the order they first appear. Rows without a country
// are not counted.
func CountryFrequency(table *dataset.Table, column string, n int) ([]tidy.Count, error) {
	col, err := table.Column(column)
	if err != nil {
		return nil, fmt.Errorf("failed to read country column (%w)", err)
	}
	countries := make([]string, 0, len(col.Values))
	for _, v := range col.Values {
		if v == nil {
			continue
		}
		countries = append(countries, util.CellString(v))
	}
	return tidy.Head(tidy.ValueCounts(countries), n), nil
}
