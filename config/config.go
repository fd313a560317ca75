package config

import (
	"go.arcalot.io/log/v2"
)

// OutputFormat selects how the summary report is written to the standard output.
type OutputFormat string

const (
	// OutputText writes each answer as an aligned text table under its heading.
	OutputText OutputFormat = "text"
	// OutputYAML writes the whole report as a single YAML document.
	OutputYAML OutputFormat = "yaml"
)

// Config is the main configuration structure for a summary run. It is not part of the dataset being summarized.
type Config struct {
	// Top is the number of entries kept in the country and theme frequency tables.
	Top int64 `json:"top" yaml:"top"`
	// Output selects the report format.
	Output OutputFormat `json:"output" yaml:"output"`
	// Columns names the dataset fields the queries read.
	Columns Columns `json:"columns" yaml:"columns"`
	// Log configures logging for summary runs.
	Log log.Config `json:"log" yaml:"log"`
}

// Columns holds the dataset field names each query reads.
type Columns struct {
	// Country is the field counted by the country frequency query.
	Country string `json:"country" yaml:"country"`
	// Theme is the field flattened by the theme frequency query.
	Theme string `json:"theme" yaml:"theme"`
	// NameCode is the nested list of code/name records used by the name backfill query.
	NameCode string `json:"name_code" yaml:"name_code"`
}
