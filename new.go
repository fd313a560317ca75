package projectsummary

import (
	"fmt"

	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/projectsummary/config"
)

// New creates a new summarizer with the provided configuration.
func New(cfg *config.Config) (Summarizer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w (no configuration provided)", ErrInvalidConfig)
	}
	if cfg.Top < 1 {
		return nil, fmt.Errorf("%w (top must be at least 1, got %d)", ErrInvalidConfig, cfg.Top)
	}
	if cfg.Output != config.OutputText && cfg.Output != config.OutputYAML {
		return nil, fmt.Errorf("%w (unsupported output format %q)", ErrInvalidConfig, cfg.Output)
	}
	columns := map[string]string{
		"country":   cfg.Columns.Country,
		"theme":     cfg.Columns.Theme,
		"name_code": cfg.Columns.NameCode,
	}
	for key, value := range columns {
		if value == "" {
			return nil, fmt.Errorf("%w (columns.%s must not be empty)", ErrInvalidConfig, key)
		}
	}
	logger := log.New(cfg.Log).WithLabel("source", "summarizer")
	return &summarizer{
		logger: logger,
		config: cfg,
	}, nil
}
