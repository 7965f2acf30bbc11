package config

import (
	"encoding/json"
	"fmt"

	"github.com/havenline/crisiscore/internal/model"
)

// RemoteOverride is the JSON payload served by the remote configuration
// endpoint. All fields are optional: keyword, weight and threshold maps
// override per key, combinations and resource catalogs replace the default
// set wholesale when present.
type RemoteOverride struct {
	Keywords         map[string][]string                  `json:"keywords,omitempty"`
	Weights          map[string]int                       `json:"weights,omitempty"`
	Thresholds       map[string]int                       `json:"thresholds,omitempty"`
	Combinations     []Combination                        `json:"combinations,omitempty"`
	CombinationBonus *int                                 `json:"combination_bonus,omitempty"`
	DefaultRegion    string                               `json:"default_region,omitempty"`
	Resources        map[string][]model.EmergencyResource `json:"resources,omitempty"`
	Support          map[string][]model.EmergencyResource `json:"support,omitempty"`
}

// ParseRemoteOverride decodes the remote JSON payload.
func ParseRemoteOverride(data []byte) (*RemoteOverride, error) {
	var ov RemoteOverride
	if err := json.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("config: parse remote override: %w", err)
	}
	return &ov, nil
}

// Merge lays the override over base and returns a new Config. Base is never
// mutated; the result is a fresh snapshot safe to swap in atomically.
func Merge(base *Config, ov *RemoteOverride) (*Config, error) {
	merged := *base
	if ov == nil {
		return &merged, nil
	}

	for category, words := range ov.Keywords {
		switch category {
		case "critical":
			merged.Keywords.Critical = words
		case "high":
			merged.Keywords.High = words
		case "moderate":
			merged.Keywords.Moderate = words
		case "urgency":
			merged.Keywords.Urgency = words
		}
	}

	for category, w := range ov.Weights {
		switch category {
		case "critical":
			merged.Weights.Critical = w
		case "high":
			merged.Weights.High = w
		case "moderate":
			merged.Weights.Moderate = w
		case "urgency":
			merged.Weights.Urgency = w
		}
	}

	for name, v := range ov.Thresholds {
		switch name {
		case "low":
			merged.Thresholds.Low = v
		case "moderate":
			merged.Thresholds.Moderate = v
		case "high":
			merged.Thresholds.High = v
		case "critical":
			merged.Thresholds.Critical = v
		}
	}

	if ov.Combinations != nil {
		merged.Combinations = ov.Combinations
	}
	if ov.CombinationBonus != nil {
		merged.CombinationBonus = *ov.CombinationBonus
	}
	if ov.DefaultRegion != "" {
		merged.DefaultRegion = ov.DefaultRegion
	}
	if ov.Resources != nil {
		merged.Resources = ov.Resources
	}
	if ov.Support != nil {
		merged.Support = ov.Support
	}

	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("config: merged override invalid: %w", err)
	}
	return &merged, nil
}
