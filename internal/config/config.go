package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/havenline/crisiscore/internal/model"
)

// defaultWeight is applied to any keyword category missing a weight entry.
const defaultWeight = 3

// Keywords holds the four ordered keyword sets consulted by the scorer.
type Keywords struct {
	Critical []string `yaml:"critical" json:"critical"`
	High     []string `yaml:"high" json:"high"`
	Moderate []string `yaml:"moderate" json:"moderate"`
	Urgency  []string `yaml:"urgency" json:"urgency"`
}

// Weights maps each keyword category to its score contribution.
type Weights struct {
	Critical int `yaml:"critical" json:"critical"`
	High     int `yaml:"high" json:"high"`
	Moderate int `yaml:"moderate" json:"moderate"`
	Urgency  int `yaml:"urgency" json:"urgency"`
}

// Thresholds are the four ascending score cut points for classification.
type Thresholds struct {
	Low      int `yaml:"low" json:"low"`
	Moderate int `yaml:"moderate" json:"moderate"`
	High     int `yaml:"high" json:"high"`
	Critical int `yaml:"critical" json:"critical"`
}

// Combination is an ordered word pair whose joint presence adds a bonus score.
type Combination struct {
	First  string `yaml:"first" json:"first"`
	Second string `yaml:"second" json:"second"`
}

// Config is one immutable configuration snapshot. Snapshots are replaced
// wholesale on reload, never mutated in place, so in-flight scoring calls
// always see a consistent view.
type Config struct {
	Keywords         Keywords                             `yaml:"keywords" json:"keywords"`
	Weights          Weights                              `yaml:"weights" json:"weights"`
	Combinations     []Combination                        `yaml:"combinations" json:"combinations"`
	CombinationBonus int                                  `yaml:"combination_bonus" json:"combination_bonus"`
	Thresholds       Thresholds                           `yaml:"thresholds" json:"thresholds"`
	DefaultRegion    string                               `yaml:"default_region" json:"default_region"`
	Resources        map[string][]model.EmergencyResource `yaml:"resources" json:"resources"`
	Support          map[string][]model.EmergencyResource `yaml:"support" json:"support"`
}

// Validate checks structural invariants. Thresholds must be strictly
// increasing; combination words must be non-empty. Zero weights are
// normalized to the default rather than rejected.
func (c *Config) Validate() error {
	t := c.Thresholds
	if !(t.Low < t.Moderate && t.Moderate < t.High && t.High < t.Critical) {
		return fmt.Errorf("thresholds must be strictly increasing: low=%d moderate=%d high=%d critical=%d",
			t.Low, t.Moderate, t.High, t.Critical)
	}
	for i, combo := range c.Combinations {
		if combo.First == "" || combo.Second == "" {
			return fmt.Errorf("combination %d has an empty word", i)
		}
	}
	if c.CombinationBonus < 0 {
		return fmt.Errorf("combination bonus must be non-negative, got %d", c.CombinationBonus)
	}
	c.fillWeights()
	return nil
}

// fillWeights applies the default weight to any category left at zero.
func (c *Config) fillWeights() {
	if c.Weights.Critical == 0 {
		c.Weights.Critical = defaultWeight
	}
	if c.Weights.High == 0 {
		c.Weights.High = defaultWeight
	}
	if c.Weights.Moderate == 0 {
		c.Weights.Moderate = defaultWeight
	}
	if c.Weights.Urgency == 0 {
		c.Weights.Urgency = defaultWeight
	}
}

// RegionResources returns the resource catalog for region, falling back to
// the default region when the region is absent or unknown.
func (c *Config) RegionResources(region string) []model.EmergencyResource {
	if region != "" {
		if rs, ok := c.Resources[region]; ok {
			return rs
		}
	}
	return c.Resources[c.DefaultRegion]
}

// RegionSupport returns the general support catalog for region, with the
// same default-region fallback as RegionResources.
func (c *Config) RegionSupport(region string) []model.EmergencyResource {
	if region != "" {
		if rs, ok := c.Support[region]; ok {
			return rs
		}
	}
	return c.Support[c.DefaultRegion]
}

// LoadFile reads a YAML override from disk and merges it over the defaults.
// A missing file returns defaults. Invalid YAML returns an error.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	// YAML overwrites only specified fields; defaults fill the rest.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}
