// Package query implements the summary queries run over a loaded project
// dataset. Every query reads the table it is given and never modifies it.
package query

// Default field names of the World Bank projects dataset.
const (
	DefaultCountryColumn  = "countryname"
	DefaultThemeColumn    = "mjtheme"
	DefaultNameCodeColumn = "mjtheme_namecode"
)

// DefaultTop is the number of entries the frequency queries keep by default.
const DefaultTop = 10

// Column headers of the query results.
const (
	HeaderCountry    = "country"
	HeaderCount      = "count"
	HeaderTheme      = "theme"
	HeaderOccurrence = "occurrence"
	HeaderName       = "name"
)
