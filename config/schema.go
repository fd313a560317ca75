package config

import (
	"regexp"

	log "go.arcalot.io/log/v2"
	"go.flow.arcalot.io/pluginsdk/schema"
	"go.flow.arcalot.io/projectsummary/internal/query"
	"go.flow.arcalot.io/projectsummary/internal/util"
)

var fieldNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

func newFieldNameProperty(name string, description string, defaultValue string) *schema.PropertySchema {
	return schema.NewPropertySchema(
		schema.NewStringSchema(schema.IntPointer(1), schema.IntPointer(255), fieldNamePattern),
		schema.NewDisplayValue(
			schema.PointerTo(name),
			schema.PointerTo(description),
			nil,
		),
		false,
		nil,
		nil,
		nil,
		schema.PointerTo(util.JSONEncode(defaultValue)),
		nil,
	)
}

func getConfigSchema() *schema.TypedScopeSchema[*Config] {
	return schema.NewTypedScopeSchema[*Config](
		schema.NewStructMappedObjectSchema[*Config](
			"Config",
			map[string]*schema.PropertySchema{
				"log": schema.NewPropertySchema(
					schema.NewRefSchema("LogConfig", nil),
					schema.NewDisplayValue(
						schema.PointerTo("Logging"),
						schema.PointerTo("Logging configuration"),
						nil,
					),
					false,
					nil,
					nil,
					nil,
					schema.PointerTo("{}"),
					nil,
				),
				"top": schema.NewPropertySchema(
					schema.NewIntSchema(schema.PointerTo(int64(1)), nil, nil),
					schema.NewDisplayValue(
						schema.PointerTo("Top entries"),
						schema.PointerTo("Number of entries kept in the country and theme frequency tables."),
						nil,
					),
					false,
					nil,
					nil,
					nil,
					schema.PointerTo(util.JSONEncode(query.DefaultTop)),
					nil,
				),
				"output": schema.NewPropertySchema(
					schema.NewStringEnumSchema(map[string]*schema.DisplayValue{
						string(OutputText): {NameValue: schema.PointerTo("Text tables")},
						string(OutputYAML): {NameValue: schema.PointerTo("YAML document")},
					}),
					schema.NewDisplayValue(
						schema.PointerTo("Output format"),
						schema.PointerTo("Format of the report written to the standard output."),
						nil,
					),
					false,
					nil,
					nil,
					nil,
					schema.PointerTo(util.JSONEncode(OutputText)),
					nil,
				),
				"columns": schema.NewPropertySchema(
					schema.NewRefSchema("Columns", nil),
					schema.NewDisplayValue(
						schema.PointerTo("Columns"),
						schema.PointerTo("Dataset fields read by the queries."),
						nil,
					),
					false,
					nil,
					nil,
					nil,
					schema.PointerTo("{}"),
					nil,
				),
			},
		),
		schema.NewStructMappedObjectSchema[Columns](
			"Columns",
			map[string]*schema.PropertySchema{
				"country": newFieldNameProperty(
					"Country field",
					"Project field holding the country name.",
					query.DefaultCountryColumn,
				),
				"theme": newFieldNameProperty(
					"Theme field",
					"Project field holding the list of major themes.",
					query.DefaultThemeColumn,
				),
				"name_code": newFieldNameProperty(
					"Theme name/code field",
					"Project field holding the list of theme code and name pairs.",
					query.DefaultNameCodeColumn,
				),
			},
		),
		schema.NewStructMappedObjectSchema[log.Config](
			"LogConfig",
			map[string]*schema.PropertySchema{
				"level": schema.NewPropertySchema(
					schema.NewStringEnumSchema(map[string]*schema.DisplayValue{
						string(log.LevelDebug):   {NameValue: schema.PointerTo("Debug")},
						string(log.LevelInfo):    {NameValue: schema.PointerTo("Informational")},
						string(log.LevelWarning): {NameValue: schema.PointerTo("Warnings")},
						string(log.LevelError):   {NameValue: schema.PointerTo("Errors")},
					}),
					schema.NewDisplayValue(
						schema.PointerTo("Log level"),
						schema.PointerTo(
							"Minimum level of log messages to write.",
						),
						nil,
					),
					false,
					nil,
					nil,
					nil,
					schema.PointerTo(util.JSONEncode(log.LevelInfo)),
					nil,
				),
				"destination": schema.NewPropertySchema(
					schema.NewStringEnumSchema(map[string]*schema.DisplayValue{
						string(log.DestinationStdout): {NameValue: schema.PointerTo("Standard output")},
					}),
					schema.NewDisplayValue(
						schema.PointerTo("Log destination"),
						schema.PointerTo(
							"Where the logs should be written to.",
						),
						nil,
					),
					false,
					nil,
					nil,
					nil,
					schema.PointerTo(util.JSONEncode(log.DestinationStdout)),
					nil,
				),
			},
		),
	)
}
