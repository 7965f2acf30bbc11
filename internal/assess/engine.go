// Package assess implements the risk scoring engine: a deliberately simple,
// auditable keyword heuristic. It is not a diagnostic tool and attempts no
// semantic disambiguation; false-negative tolerance comes from conservative
// thresholds, not model sophistication.
package assess

import (
	"math"
	"strings"
	"sync"

	"github.com/havenline/crisiscore/internal/config"
	"github.com/havenline/crisiscore/internal/model"
)

// Engine scores free-form text against the active configuration snapshot.
// Assess is a pure function of text and snapshot; Reload swaps the snapshot
// and its precompiled matchers atomically.
type Engine struct {
	mu       sync.RWMutex
	cfg      *config.Config
	matchers *matcherSet
}

// New builds an engine over the given snapshot.
func New(cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Engine{cfg: cfg, matchers: buildMatcherSet(cfg)}
}

// Reload replaces the snapshot and rebuilds matchers. In-flight Assess
// calls finish against the snapshot they started with.
func (e *Engine) Reload(cfg *config.Config) {
	if cfg == nil {
		return
	}
	ms := buildMatcherSet(cfg)
	e.mu.Lock()
	e.cfg = cfg
	e.matchers = ms
	e.mu.Unlock()
}

// Config returns the snapshot the engine currently scores against.
func (e *Engine) Config() *config.Config {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cfg
}

// Assess scores text and classifies it into a risk level. Empty input is a
// defined no-risk result, not an error. No side effects.
func (e *Engine) Assess(text string) model.AssessmentResult {
	e.mu.RLock()
	cfg := e.cfg
	ms := e.matchers
	e.mu.RUnlock()

	normalized := strings.TrimSpace(strings.ToLower(text))
	if normalized == "" {
		return model.AssessmentResult{Level: model.RiskNone, Indicators: []string{}}
	}

	score := 0
	indicators := []string{}

	categories := []struct {
		matchers []keywordMatcher
		weight   int
	}{
		{ms.critical, cfg.Weights.Critical},
		{ms.high, cfg.Weights.High},
		{ms.moderate, cfg.Weights.Moderate},
		{ms.urgency, cfg.Weights.Urgency},
	}
	for _, cat := range categories {
		for _, m := range cat.matchers {
			if m.matches(normalized) {
				indicators = append(indicators, m.word)
				score += cat.weight
			}
		}
	}

	for _, combo := range ms.combos {
		if combo.first.matches(normalized) && combo.second.matches(normalized) {
			score += cfg.CombinationBonus
			indicators = append(indicators, combo.first.word+" + "+combo.second.word)
		}
	}

	level, confidence := classify(score, cfg.Thresholds)
	return model.AssessmentResult{
		Level:             level,
		Confidence:        confidence,
		Score:             score,
		Indicators:        indicators,
		RequiresImmediate: level.RequiresImmediate(),
	}
}

// classify maps a score onto a level via the configured thresholds and
// derives a bounded confidence from the score.
func classify(score int, t config.Thresholds) (model.RiskLevel, float64) {
	switch {
	case score >= t.Critical:
		return model.RiskCritical, round2(math.Min(float64(score)/20, 1.0))
	case score >= t.High:
		return model.RiskHigh, round2(math.Min(float64(score)/15, 0.9))
	case score >= t.Moderate:
		return model.RiskModerate, round2(math.Min(float64(score)/10, 0.7))
	case score >= t.Low:
		return model.RiskLow, round2(math.Min(float64(score)/5, 0.5))
	default:
		return model.RiskNone, 0
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
