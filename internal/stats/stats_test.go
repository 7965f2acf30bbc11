package stats

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/havenline/crisiscore/internal/eventlog"
	"github.com/havenline/crisiscore/internal/model"
	"github.com/havenline/crisiscore/internal/storage"
)

var now = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return now }

// seedLogs writes prebuilt logs into a fresh secure store and returns a
// reporter over it.
func seedLogs(t *testing.T, events []model.CrisisEvent, actions []model.EmergencyActionRecord) *Reporter {
	t.Helper()
	secure := storage.NewMemoryStore()
	ctx := context.Background()

	if events != nil {
		data, err := json.Marshal(events)
		if err != nil {
			t.Fatal(err)
		}
		secure.Set(ctx, "crisis_events", data)
	}
	if actions != nil {
		data, err := json.Marshal(actions)
		if err != nil {
			t.Fatal(err)
		}
		secure.Set(ctx, "emergency_actions", data)
	}

	return New(eventlog.NewLogger(secure, nil), fixedNow)
}

func event(ts time.Time, level model.RiskLevel, hash string, count int) model.CrisisEvent {
	return model.CrisisEvent{ID: "e-" + ts.Format("0102"), Timestamp: ts, Level: level, IndicatorHash: hash, IndicatorCount: count}
}

func action(ts time.Time) model.EmergencyActionRecord {
	return model.EmergencyActionRecord{ID: "a-" + ts.Format("0102T15"), Timestamp: ts, Type: model.ActionCallCrisisLine}
}

func TestStatisticsEmptyLogs(t *testing.T) {
	r := seedLogs(t, nil, nil)

	stats, err := r.Statistics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalEvents != 0 || stats.TotalActions != 0 {
		t.Errorf("expected empty totals: %+v", stats)
	}
	if stats.ResponseRate != 1 {
		t.Errorf("no high/critical events defines response rate 1, got %v", stats.ResponseRate)
	}
}

func TestStatisticsCountsAndDistribution(t *testing.T) {
	events := []model.CrisisEvent{
		event(now.Add(-40*24*time.Hour), model.RiskLow, "h1", 1),
		event(now.Add(-10*24*time.Hour), model.RiskModerate, "h2", 2),
		event(now.Add(-1*24*time.Hour), model.RiskModerate, "h2", 2),
	}
	actions := []model.EmergencyActionRecord{
		action(now.Add(-50 * 24 * time.Hour)),
		action(now.Add(-2 * time.Hour)),
	}
	r := seedLogs(t, events, actions)

	stats, err := r.Statistics(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalEvents != 3 || stats.EventsLast30Days != 2 {
		t.Errorf("event counts wrong: %+v", stats)
	}
	if stats.TotalActions != 2 || stats.ActionsLast30Days != 1 {
		t.Errorf("action counts wrong: %+v", stats)
	}
	if stats.LevelDistribution[model.RiskModerate] != 2 || stats.LevelDistribution[model.RiskLow] != 1 {
		t.Errorf("distribution wrong: %v", stats.LevelDistribution)
	}
	if stats.ResponseRate != 1 {
		t.Errorf("no high/critical events, expected rate 1, got %v", stats.ResponseRate)
	}
}

func TestResponseRateOneOfThree(t *testing.T) {
	base := now.Add(-20 * 24 * time.Hour)
	events := []model.CrisisEvent{
		event(base, model.RiskHigh, "h1", 1),
		event(base.Add(2*24*time.Hour), model.RiskHigh, "h1", 1),
		event(base.Add(4*24*time.Hour), model.RiskCritical, "h2", 3),
	}
	// One action, an hour after the third event: inside its 24h window,
	// outside the windows of the first two.
	actions := []model.EmergencyActionRecord{action(base.Add(4*24*time.Hour + time.Hour))}
	r := seedLogs(t, events, actions)

	stats, err := r.Statistics(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := 1.0 / 3.0
	if stats.ResponseRate < want-0.001 || stats.ResponseRate > want+0.001 {
		t.Errorf("expected response rate ~%.2f, got %v", want, stats.ResponseRate)
	}
}

func TestResponseRateActionBeforeEventDoesNotCount(t *testing.T) {
	base := now.Add(-5 * 24 * time.Hour)
	events := []model.CrisisEvent{event(base, model.RiskHigh, "h1", 1)}
	actions := []model.EmergencyActionRecord{action(base.Add(-time.Hour))}
	r := seedLogs(t, events, actions)

	stats, err := r.Statistics(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.ResponseRate != 0 {
		t.Errorf("backward action must not count, got %v", stats.ResponseRate)
	}
}

func TestTopIndicators(t *testing.T) {
	var events []model.CrisisEvent
	// Twelve distinct hashes with ascending weight.
	for i := 0; i < 12; i++ {
		h := string(rune('a' + i))
		for j := 0; j <= i; j++ {
			events = append(events, event(now.Add(-time.Duration(i*12+j)*time.Hour), model.RiskLow, h, 1))
		}
	}
	r := seedLogs(t, events, nil)

	stats, err := r.Statistics(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(stats.TopIndicators) != 10 {
		t.Fatalf("expected top 10, got %d", len(stats.TopIndicators))
	}
	if stats.TopIndicators[0].IndicatorHash != "l" || stats.TopIndicators[0].Count != 12 {
		t.Errorf("expected most frequent hash first, got %+v", stats.TopIndicators[0])
	}
	for i := 1; i < len(stats.TopIndicators); i++ {
		if stats.TopIndicators[i-1].Count < stats.TopIndicators[i].Count {
			t.Errorf("top indicators not descending: %+v", stats.TopIndicators)
		}
	}
}
