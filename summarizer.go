// Package projectsummary computes descriptive summaries of a development-bank
// project dataset: the countries with the most projects, the most common
// project themes and the theme names with missing entries backfilled.
package projectsummary

import (
	"fmt"

	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/projectsummary/config"
	"go.flow.arcalot.io/projectsummary/internal/dataset"
	"go.flow.arcalot.io/projectsummary/internal/query"
)

// Summarizer is responsible for running the summary queries over a dataset and returning their answers.
type Summarizer interface {
	// Summarize parses the dataset, which must be a JSON array of project records, and runs every query against
	// it. An error is only returned if the dataset cannot be loaded. Query failures are recorded in the report
	// and do not stop the remaining queries.
	Summarize(data []byte) (*Report, error)
}

type summarizer struct {
	logger log.Logger
	config *config.Config
}

func (s *summarizer) Summarize(data []byte) (*Report, error) {
	table, err := dataset.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset (%w)", err)
	}
	s.logger.Infof("Loaded %d projects with %d fields.", table.Rows(), len(table.ColumnNames()))

	top := int(s.config.Top)
	columns := s.config.Columns
	report := &Report{
		Errors: map[SectionID]error{},
	}

	report.Countries, err = query.CountryFrequency(table, columns.Country, top)
	s.record(report, SectionCountries, err)

	report.Themes, err = query.ThemeFrequency(table, columns.Theme, top)
	s.record(report, SectionThemes, err)

	report.Names, err = query.NameBackfill(table, columns.NameCode)
	s.record(report, SectionNames, err)

	return report, nil
}

func (s *summarizer) record(report *Report, section SectionID, err error) {
	if err != nil {
		s.logger.Errorf("Failed to compute %s (%v)", section, err)
		report.Errors[section] = ErrQueryFailed{Section: section, Cause: err}
		return
	}
	s.logger.Debugf("Computed %s.", section)
}
