// Package tidy holds small tidy-data transformations over string columns and
// row-major string tables.
package tidy

import "sort"

// Count is the number of occurrences of one distinct value.
type Count struct {
	Value string `json:"value" yaml:"value"`
	Count int    `json:"count" yaml:"count"`
}

// ValueCounts counts the occurrences of each distinct value. The result is
// sorted by count, highest first; values with equal counts keep the order in
// which they were first seen.
func ValueCounts(values []string) []Count {
	index := map[string]int{}
	counts := []Count{}
	for _, v := range values {
		i, ok := index[v]
		if !ok {
			i = len(counts)
			index[v] = i
			counts = append(counts, Count{Value: v})
		}
		counts[i].Count++
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// Head returns the first n items. A non-positive n or one larger than the
// input returns everything.
func Head[T any](items []T, n int) []T {
	if n <= 0 || n >= len(items) {
		return items
	}
	return items[:n]
}

// SortRowsBy sorts rows in place by the given column indexes, comparing cells
// as strings from the first column to the last. Equal rows keep their order.
// Rows shorter than a sort column compare as if the cell were empty.
func SortRowsBy(rows [][]string, columns ...int) {
	cell := func(row []string, col int) string {
		if col < len(row) {
			return row[col]
		}
		return ""
	}
	sort.SliceStable(rows, func(i, j int) bool {
		for _, col := range columns {
			a, b := cell(rows[i], col), cell(rows[j], col)
			if a != b {
				return a < b
			}
		}
		return false
	})
}
