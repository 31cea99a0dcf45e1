package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level ledgerforms.yaml configuration.
type Config struct {
	Locale           string              `yaml:"locale"`
	DefaultDirection string              `yaml:"default_direction"` // one-way or round-trip
	Suggestions      []TagSuggestion     `yaml:"suggestions,omitempty"`
	Recurring        []RecurringTemplate `yaml:"recurring,omitempty"`
}

// TagSuggestion whitelists the accounts offered when a description tag is
// recognized, in the order they should be shown.
type TagSuggestion struct {
	Tag      string   `yaml:"tag"`
	Accounts []string `yaml:"accounts"`
}

// RecurringTemplate is a stored recurring-item description pattern.
type RecurringTemplate struct {
	Name     string `yaml:"name"`
	Template string `yaml:"template"`
}

// Load reads a ledgerforms.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new book.
func Default() *Config {
	return &Config{
		Locale:           "en",
		DefaultDirection: "one-way",
		Suggestions: []TagSuggestion{
			{Tag: "Bus", Accounts: []string{"6260"}},
			{Tag: "Taxi", Accounts: []string{"6260"}},
			{Tag: "Dinner", Accounts: []string{"6272", "2141"}},
			{Tag: "Salary", Accounts: []string{"4010"}},
		},
		Recurring: []RecurringTemplate{
			{Name: "rent", Template: "Rent for {this-month-name}"},
			{Name: "electricity", Template: "Electricity bill for {last-bimonthly-number}"},
		},
	}
}
