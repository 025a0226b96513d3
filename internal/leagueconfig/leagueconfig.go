// Package leagueconfig loads league settings from a YAML file: the roster
// template (position labels and slot counts), the categories the league
// scores, and simulation defaults.
package leagueconfig

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// PositionSpec is one roster slot group: a position label and how many
// spots it holds on each team.
type PositionSpec struct {
	Name  string `yaml:"name" json:"name"`
	Spots int    `yaml:"spots" json:"spots"`
}

// Config holds a league's settings.
type Config struct {
	Positions  []PositionSpec `yaml:"positions" json:"positions"`
	Categories []string       `yaml:"categories" json:"categories"`
	Trials     int            `yaml:"trials" json:"trials"`
	Season     string         `yaml:"season" json:"season"`
}

// Default returns the standard league template: the usual NHL roster shape
// and a five-category skater league, 500 trials.
func Default() Config {
	return Config{
		Positions: []PositionSpec{
			{Name: "Center", Spots: 2},
			{Name: "LW", Spots: 2},
			{Name: "RW", Spots: 2},
			{Name: "Defense", Spots: 2},
			{Name: "Utility", Spots: 2},
			{Name: "Bench", Spots: 3},
			{Name: "Goalie", Spots: 1},
		},
		Categories: []string{"Goals", "Assists", "Shots", "Hits", "Blocks"},
		Trials:     500,
		Season:     "20232024",
	}
}

// Load reads a YAML league config from path. Fields left empty in the file
// keep their Default() values.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read league config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse league config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the config for unusable values.
func (c Config) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("league config: trials must be positive, got %d", c.Trials)
	}
	for _, p := range c.Positions {
		if p.Name == "" {
			return fmt.Errorf("league config: position with empty name")
		}
		if p.Spots < 0 {
			return fmt.Errorf("league config: position %s has negative spots", p.Name)
		}
	}
	seen := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if cat == "" {
			return fmt.Errorf("league config: empty category name")
		}
		if seen[cat] {
			return fmt.Errorf("league config: duplicate category %q", cat)
		}
		seen[cat] = true
	}
	return nil
}
