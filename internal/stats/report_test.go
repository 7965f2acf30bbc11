package stats

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/havenline/crisiscore/internal/model"
)

func TestProviderReportStripsIdentity(t *testing.T) {
	ev := model.CrisisEvent{
		ID:             "event-1",
		Timestamp:      time.Date(2026, 5, 20, 8, 0, 0, 0, time.UTC),
		Level:          model.RiskCritical,
		Confidence:     0.85,
		IndicatorHash:  "abc123",
		IndicatorCount: 4,
		UserHash:       "deadbeef",
		SessionID:      "session-7",
	}

	report := PrepareProviderReport(ev, fixedNow)

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatal(err)
	}
	for _, leaked := range []string{"deadbeef", "session-7", "abc123"} {
		if strings.Contains(string(data), leaked) {
			t.Errorf("report leaks %q", leaked)
		}
	}
	if report.Level != model.RiskCritical || report.IndicatorCount != 4 {
		t.Errorf("clinical fields missing: %+v", report)
	}
	if !report.AnonymizedAt.Equal(now) {
		t.Errorf("anonymization timestamp wrong: %v", report.AnonymizedAt)
	}
	if report.PrivacyLevel != "anonymized" {
		t.Errorf("privacy level wrong: %q", report.PrivacyLevel)
	}
}

func TestProviderReportRecommendationsPerLevel(t *testing.T) {
	tests := []struct {
		level model.RiskLevel
		count int
		first string
	}{
		{model.RiskCritical, 4, "Immediate psychiatric evaluation recommended"},
		{model.RiskHigh, 4, "Urgent clinical assessment recommended"},
		{model.RiskModerate, 3, "Outpatient referral"},
		{model.RiskLow, 3, "Continue supportive therapy"},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			report := PrepareProviderReport(model.CrisisEvent{Level: tt.level}, nil)
			if len(report.Recommendations) != tt.count {
				t.Fatalf("expected %d recommendations, got %d", tt.count, len(report.Recommendations))
			}
			if report.Recommendations[0] != tt.first {
				t.Errorf("expected first recommendation %q, got %q", tt.first, report.Recommendations[0])
			}
		})
	}
}
