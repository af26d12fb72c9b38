// Package config loads stateaudit's YAML configuration file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/viant/stateaudit/analyzer/model"
)

// Config is the on-disk shape of stateaudit.yaml.
type Config struct {
	Include      []string                `yaml:"include"`
	Exclude      []string                `yaml:"exclude"`
	Capabilities model.CapabilityProfile `yaml:"capabilities"`
	Rules        []string                `yaml:"rules"`
}

// Default returns the configuration used when no file is supplied: default
// includes, no excludes, core capability profile, all rules.
func Default() Config {
	return Config{
		Include:      []string{"**/*.ts", "**/*.tsx", "**/*.js", "**/*.jsx"},
		Capabilities: model.CoreProfile(),
	}
}

// Load reads and parses a stateaudit.yaml at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
