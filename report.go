package projectsummary

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.flow.arcalot.io/projectsummary/internal/query"
	"go.flow.arcalot.io/projectsummary/internal/tableprinter"
	"go.flow.arcalot.io/projectsummary/internal/tidy"
	"gopkg.in/yaml.v3"
)

// SectionID identifies one answer of the report.
type SectionID string

const (
	// SectionCountries holds the countries with the most projects.
	SectionCountries SectionID = "countries"
	// SectionThemes holds the most common project themes.
	SectionThemes SectionID = "themes"
	// SectionNames holds the backfilled theme names.
	SectionNames SectionID = "names"
)

// Sections lists the report sections in the order they are written.
var Sections = []SectionID{SectionCountries, SectionThemes, SectionNames}

var sectionTitles = map[SectionID]string{
	SectionCountries: "This is the answer to question one:",
	SectionThemes:    "This is the answer to question two:",
	SectionNames:     "This is the answer to question three:",
}

// Count is the number of occurrences of one distinct value.
type Count = tidy.Count

// Report holds the answers of one summary run.
type Report struct {
	// Countries holds the countries with the most projects, highest count first.
	Countries []Count
	// Themes holds the most common theme entries, highest count first.
	Themes []Count
	// Names holds the theme names sorted by code and name, with missing names backfilled. Names that could not be
	// filled are nil.
	Names []*string
	// Errors holds the failure of each section that could not be computed.
	Errors map[SectionID]error
}

// Failed returns true if at least one section could not be computed.
func (r *Report) Failed() bool {
	return len(r.Errors) > 0
}

// Err returns the failures of all sections joined together, or nil if every section was computed.
func (r *Report) Err() error {
	var errs []error
	for _, section := range Sections {
		if err, ok := r.Errors[section]; ok {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WriteText writes every section under its title as an aligned text table.
func (r *Report) WriteText(w io.Writer) {
	for i, section := range Sections {
		if i > 0 {
			_, _ = fmt.Fprint(w, "\n\n")
		}
		_, _ = fmt.Fprintf(w, "\n%s\n\n", sectionTitles[section])
		if err, failed := r.Errors[section]; failed {
			_, _ = fmt.Fprintf(w, "query failed: %v\n", err)
			continue
		}
		switch section {
		case SectionCountries:
			tableprinter.PrintTable(w, []string{query.HeaderCountry, query.HeaderCount}, countRows(r.Countries))
		case SectionThemes:
			tableprinter.PrintTable(w, []string{query.HeaderTheme, query.HeaderOccurrence}, countRows(r.Themes))
		case SectionNames:
			tableprinter.PrintSeries(w, query.HeaderName, r.Names)
		}
	}
}

type yamlReport struct {
	Countries []Count           `yaml:"countries"`
	Themes    []Count           `yaml:"themes"`
	Names     []*string         `yaml:"names"`
	Errors    map[string]string `yaml:"errors,omitempty"`
}

// WriteYAML writes the report as a single YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	out := yamlReport{
		Countries: r.Countries,
		Themes:    r.Themes,
		Names:     r.Names,
	}
	if r.Failed() {
		out.Errors = make(map[string]string, len(r.Errors))
		for section, err := range r.Errors {
			out.Errors[string(section)] = err.Error()
		}
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to marshal report (%w)", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write report (%w)", err)
	}
	return nil
}

func countRows(counts []Count) [][]string {
	rows := make([][]string, len(counts))
	for i, c := range counts {
		rows[i] = []string{c.Value, strconv.Itoa(c.Count)}
	}
	return rows
}
