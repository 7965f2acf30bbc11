package assess

import (
	"strings"
	"testing"

	"github.com/havenline/crisiscore/internal/config"
	"github.com/havenline/crisiscore/internal/model"
)

// testConfig mirrors the documented scenario: thresholds 1/4/8/15, weights
// critical=10 high=7 moderate=3 urgency=5, bonus 8.
func testConfig() *config.Config {
	return &config.Config{
		Keywords: config.Keywords{
			Critical: []string{"end my life", "suicide", "kill myself"},
			High:     []string{"self harm", "hopeless"},
			Moderate: []string{"worthless", "trapped"},
			Urgency:  []string{"tonight", "right now"},
		},
		Weights:          config.Weights{Critical: 10, High: 7, Moderate: 3, Urgency: 5},
		Combinations:     []config.Combination{{First: "plan", Second: "suicide"}},
		CombinationBonus: 8,
		Thresholds:       config.Thresholds{Low: 1, Moderate: 4, High: 8, Critical: 15},
		DefaultRegion:    "us",
	}
}

func TestAssessNoSignals(t *testing.T) {
	e := New(testConfig())

	result := e.Assess("I had a nice walk and a good dinner today with friends")

	// "today" is not a configured keyword in testConfig; nothing matches.
	if result.Level != model.RiskNone {
		t.Errorf("expected none, got %s", result.Level)
	}
	if result.Confidence != 0 {
		t.Errorf("expected confidence 0, got %v", result.Confidence)
	}
	if len(result.Indicators) != 0 {
		t.Errorf("expected no indicators, got %v", result.Indicators)
	}
	if result.RequiresImmediate {
		t.Error("none must not require immediate attention")
	}
}

func TestAssessEmptyInput(t *testing.T) {
	e := New(testConfig())

	for _, text := range []string{"", "   ", "\n\t"} {
		result := e.Assess(text)
		if result.Level != model.RiskNone || result.Confidence != 0 || len(result.Indicators) != 0 {
			t.Errorf("empty input %q: expected defined no-risk result, got %+v", text, result)
		}
	}
}

func TestWholeWordMatching(t *testing.T) {
	cfg := testConfig()
	cfg.Keywords.Moderate = []string{"the", "ass"}
	e := New(cfg)

	result := e.Assess("I am a therapist grading an assignment")

	if len(result.Indicators) != 0 {
		t.Errorf("substring matches must not fire: got %v", result.Indicators)
	}

	result = e.Assess("the dog sat on the mat")
	if len(result.Indicators) != 1 || result.Indicators[0] != "the" {
		t.Errorf("expected single whole-word match on \"the\", got %v", result.Indicators)
	}
}

func TestCriticalScenario(t *testing.T) {
	e := New(testConfig())

	// "end my life" (critical, +10) and "tonight" (urgency, +5) = 15.
	result := e.Assess("I want to end my life tonight, I have a plan")

	if result.Score != 15 {
		t.Errorf("expected score 15, got %d", result.Score)
	}
	if result.Level != model.RiskCritical {
		t.Errorf("expected critical, got %s", result.Level)
	}
	if result.Confidence != 0.75 {
		t.Errorf("expected confidence 0.75, got %v", result.Confidence)
	}
	if !result.RequiresImmediate {
		t.Error("critical must require immediate attention")
	}

	wantIndicators := []string{"end my life", "tonight"}
	if len(result.Indicators) != len(wantIndicators) {
		t.Fatalf("expected indicators %v, got %v", wantIndicators, result.Indicators)
	}
	for i, want := range wantIndicators {
		if result.Indicators[i] != want {
			t.Errorf("indicator %d: expected %q, got %q", i, want, result.Indicators[i])
		}
	}
}

func TestCombinationBonus(t *testing.T) {
	e := New(testConfig())

	for _, text := range []string{
		"I have a plan to commit suicide",
		"suicide is on my mind and I made a plan",
	} {
		result := e.Assess(text)

		// "suicide" critical (+10) plus the plan+suicide bonus (+8).
		if result.Score < 18 {
			t.Errorf("%q: expected score >= 18, got %d", text, result.Score)
		}
		found := false
		for _, ind := range result.Indicators {
			if ind == "plan + suicide" {
				found = true
			}
		}
		if !found {
			t.Errorf("%q: missing combination indicator, got %v", text, result.Indicators)
		}
	}
}

func TestCombinationRequiresBothWords(t *testing.T) {
	e := New(testConfig())

	result := e.Assess("I have a plan for the weekend")

	for _, ind := range result.Indicators {
		if strings.Contains(ind, "+") {
			t.Errorf("combination fired with only one word present: %v", result.Indicators)
		}
	}
}

func TestTierBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		score      int
		level      model.RiskLevel
		confidence float64
	}{
		{"low", "I feel trapped", 3, model.RiskLow, 0.5},
		{"moderate", "I feel trapped and worthless", 6, model.RiskModerate, 0.6},
		{"high", "I feel hopeless and worthless", 10, model.RiskHigh, 0.67},
		{"critical", "hopeless, worthless, and I want to kill myself", 20, model.RiskCritical, 1.0},
	}

	e := New(testConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := e.Assess(tt.text)
			if result.Score != tt.score {
				t.Errorf("expected score %d, got %d", tt.score, result.Score)
			}
			if result.Level != tt.level {
				t.Errorf("expected %s, got %s", tt.level, result.Level)
			}
			if result.Confidence != tt.confidence {
				t.Errorf("expected confidence %v, got %v", tt.confidence, result.Confidence)
			}
		})
	}
}

func TestRaisingThresholdNeverRaisesTier(t *testing.T) {
	base := testConfig()
	e := New(base)
	text := "I feel hopeless and worthless tonight"
	before := e.Assess(text)

	raised := testConfig()
	raised.Thresholds.High = before.Score + 1
	raised.Thresholds.Critical = before.Score + 10
	e.Reload(raised)
	after := e.Assess(text)

	if after.Level.Rank() > before.Level.Rank() {
		t.Errorf("raising thresholds raised the tier: %s -> %s", before.Level, after.Level)
	}
}

func TestReloadSwapsSnapshot(t *testing.T) {
	e := New(testConfig())

	if r := e.Assess("I feel sad beyond words"); r.Level != model.RiskNone {
		t.Fatalf("expected none before reload, got %s", r.Level)
	}

	cfg := testConfig()
	cfg.Keywords.Moderate = append(cfg.Keywords.Moderate, "sad beyond words")
	e.Reload(cfg)

	if r := e.Assess("I feel sad beyond words"); r.Level != model.RiskLow {
		t.Errorf("expected low after reload, got %s", r.Level)
	}
}
