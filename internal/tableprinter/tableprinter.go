// Package tableprinter provides behavior to write tabular data to a given
// destination.
package tableprinter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

const (
	tabwriterMinWidth = 6
	tabwriterWidth    = 4
	tabwriterPadding  = 3
	tabwriterPadChar  = ' '
	tabwriterFlags    = tabwriter.FilterHTML
)

// MissingValue is printed in place of a missing cell.
const MissingValue = "NaN"

// NewTabWriter returns a tabwriter that transforms tabbed columns into aligned
// text.
func NewTabWriter(output io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(output, tabwriterMinWidth, tabwriterWidth, tabwriterPadding, tabwriterPadChar, tabwriterFlags)
}

// PrintTable writes a table with headers to a given output destination. Rows
// may have any number of cells; the last cell of a row is not padded.
func PrintTable(output io.Writer, headers []string, rows [][]string) {
	w := NewTabWriter(output)

	// column headers are at the top, so they are written first
	for _, col := range headers {
		_, _ = fmt.Fprint(w, strings.ToUpper(col), "\t")
	}
	_, _ = fmt.Fprintln(w)

	// rows form the body of the table
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	_ = w.Flush()
}

// PrintSeries writes a single named column next to its row index, the way a
// one-column data frame is usually displayed. Nil values are printed as
// MissingValue.
func PrintSeries(output io.Writer, name string, values []*string) {
	PrintTable(output, []string{"index", name}, SeriesRows(values))
}

// SeriesRows converts a column of optional values into index/value rows.
func SeriesRows(values []*string) [][]string {
	result := make([][]string, len(values))
	for i, v := range values {
		cell := MissingValue
		if v != nil {
			cell = *v
		}
		result[i] = []string{strconv.Itoa(i), cell}
	}
	return result
}
