package config

import "fmt"

// Load unserializes a configuration data set, typically parsed from a YAML file, into the config struct. Missing
// values are filled with their defaults.
func Load(configData any) (*Config, error) {
	cfg, err := getConfigSchema().UnserializeType(configData)
	if err != nil {
		return nil, fmt.Errorf("failed to unserialize configuration (%w)", err)
	}
	return cfg, nil
}

// Default returns the default configuration.
func Default() *Config {
	cfg, err := Load(map[string]any{})
	if err != nil {
		panic(err)
	}
	return cfg
}
