// Package stats aggregates the persisted crisis logs into distribution and
// response-rate metrics, and builds anonymized provider-facing reports.
package stats

import (
	"context"
	"sort"
	"time"

	"github.com/havenline/crisiscore/internal/eventlog"
	"github.com/havenline/crisiscore/internal/model"
)

const (
	recentWindow = 30 * 24 * time.Hour

	// responseWindow is the forward window within which any logged action
	// counts a high/critical event as responded. Coarse: no action is tied
	// to a specific event. Kept as-is; tightening it changes the metric's
	// meaning for existing consumers.
	responseWindow = 24 * time.Hour

	topIndicators = 10
)

// Reporter computes statistics over a Logger's persisted records.
type Reporter struct {
	log *eventlog.Logger
	now func() time.Time
}

// New creates a reporter. A nil clock uses wall time.
func New(log *eventlog.Logger, now func() time.Time) *Reporter {
	if now == nil {
		now = time.Now
	}
	return &Reporter{log: log, now: now}
}

// Statistics reads the full event and action logs and aggregates them.
func (r *Reporter) Statistics(ctx context.Context) (model.Statistics, error) {
	events, err := r.log.Events(ctx)
	if err != nil {
		return model.Statistics{}, err
	}
	actions, err := r.log.Actions(ctx)
	if err != nil {
		return model.Statistics{}, err
	}

	now := r.now().UTC()
	cutoff := now.Add(-recentWindow)

	stats := model.Statistics{
		TotalEvents:       len(events),
		TotalActions:      len(actions),
		LevelDistribution: make(map[model.RiskLevel]int),
	}

	indicatorCounts := make(map[string]int)
	for _, ev := range events {
		if ev.Timestamp.After(cutoff) {
			stats.EventsLast30Days++
		}
		stats.LevelDistribution[ev.Level]++
		if ev.IndicatorHash != "" {
			indicatorCounts[ev.IndicatorHash] += ev.IndicatorCount
		}
	}
	for _, a := range actions {
		if a.Timestamp.After(cutoff) {
			stats.ActionsLast30Days++
		}
	}

	stats.TopIndicators = topN(indicatorCounts, topIndicators)
	stats.ResponseRate = responseRate(events, actions)
	return stats, nil
}

// responseRate is the fraction of high/critical events with at least one
// action logged within the forward response window. No such events means a
// perfect rate by definition.
func responseRate(events []model.CrisisEvent, actions []model.EmergencyActionRecord) float64 {
	var urgent, responded int
	for _, ev := range events {
		if !ev.Level.RequiresImmediate() {
			continue
		}
		urgent++
		deadline := ev.Timestamp.Add(responseWindow)
		for _, a := range actions {
			if !a.Timestamp.Before(ev.Timestamp) && !a.Timestamp.After(deadline) {
				responded++
				break
			}
		}
	}
	if urgent == 0 {
		return 1
	}
	return float64(responded) / float64(urgent)
}

// topN returns the n highest counts, descending, ties broken by hash for
// deterministic output.
func topN(counts map[string]int, n int) []model.IndicatorCount {
	out := make([]model.IndicatorCount, 0, len(counts))
	for hash, count := range counts {
		out = append(out, model.IndicatorCount{IndicatorHash: hash, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].IndicatorHash < out[j].IndicatorHash
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
