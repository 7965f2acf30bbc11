package model

import "fmt"

// RiskLevel classifies the severity of a crisis assessment.
type RiskLevel string

const (
	RiskNone     RiskLevel = "none"
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// riskRank maps risk levels to comparable integers for monotonic ordering.
var riskRank = map[RiskLevel]int{
	RiskNone:     0,
	RiskLow:      1,
	RiskModerate: 2,
	RiskHigh:     3,
	RiskCritical: 4,
}

// Rank returns a comparable integer for the level. Unknown levels rank as none.
func (r RiskLevel) Rank() int {
	return riskRank[r]
}

// Valid reports whether r is one of the five defined levels.
func (r RiskLevel) Valid() bool {
	_, ok := riskRank[r]
	return ok
}

// RequiresImmediate reports whether the level demands immediate attention.
func (r RiskLevel) RequiresImmediate() bool {
	return r == RiskHigh || r == RiskCritical
}

// ParseRiskLevel converts a string to a RiskLevel, erroring on unknown values.
func ParseRiskLevel(s string) (RiskLevel, error) {
	r := RiskLevel(s)
	if !r.Valid() {
		return RiskNone, fmt.Errorf("unknown risk level %q", s)
	}
	return r, nil
}
