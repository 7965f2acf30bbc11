package model

import "testing"

func TestRiskLevelOrdering(t *testing.T) {
	ordered := []RiskLevel{RiskNone, RiskLow, RiskModerate, RiskHigh, RiskCritical}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Rank() >= ordered[i].Rank() {
			t.Errorf("%s must rank below %s", ordered[i-1], ordered[i])
		}
	}
}

func TestRequiresImmediate(t *testing.T) {
	tests := []struct {
		level RiskLevel
		want  bool
	}{
		{RiskNone, false},
		{RiskLow, false},
		{RiskModerate, false},
		{RiskHigh, true},
		{RiskCritical, true},
	}
	for _, tt := range tests {
		if got := tt.level.RequiresImmediate(); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.level, tt.want, got)
		}
	}
}

func TestParseRiskLevel(t *testing.T) {
	if lvl, err := ParseRiskLevel("critical"); err != nil || lvl != RiskCritical {
		t.Errorf("expected critical, got %s (%v)", lvl, err)
	}
	if _, err := ParseRiskLevel("catastrophic"); err == nil {
		t.Error("expected error for unknown level")
	}
	if RiskLevel("bogus").Valid() {
		t.Error("bogus level must not validate")
	}
}
