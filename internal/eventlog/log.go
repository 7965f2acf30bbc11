// Package eventlog persists privacy-preserving records of crisis
// evaluations and emergency actions. The crisis record is the one artifact
// that must never be silently lost: the primary write path is backed by a
// three-tier fallback chain, and no failure in this package ever reaches
// the user-facing response flow.
package eventlog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/havenline/crisiscore/internal/model"
	"github.com/havenline/crisiscore/internal/platform"
	"github.com/havenline/crisiscore/internal/storage"
)

const (
	// maxEntries caps each rolling log; oldest entries are evicted on insert.
	maxEntries = 50

	eventsKey  = "crisis_events"
	actionsKey = "emergency_actions"

	// anonymousUser is hashed in place of an absent user identifier.
	anonymousUser = "anonymous"
)

// Logger owns the crisis event and emergency action logs.
type Logger struct {
	secure   storage.Store
	plain    storage.Store
	applog   *AppLog
	digest   platform.Digest
	notifier Notifier
	signaler platform.Signaler
	now      func() time.Time

	// Serializes read-modify-write cycles on the capped logs so overlapping
	// writes cannot produce an inconsistent trim.
	mu sync.Mutex
}

// Option configures a Logger.
type Option func(*Logger)

// WithDigest replaces the default SHA-256 digest.
func WithDigest(d platform.Digest) Option { return func(l *Logger) { l.digest = d } }

// WithNotifier installs the emergency contact notifier.
func WithNotifier(n Notifier) Option { return func(l *Logger) { l.notifier = n } }

// WithSignaler installs the user-facing alert signal.
func WithSignaler(s platform.Signaler) Option { return func(l *Logger) { l.signaler = s } }

// WithClock replaces wall time. Tests only.
func WithClock(now func() time.Time) Option { return func(l *Logger) { l.now = now } }

// WithAppLog installs the last-resort application log.
func WithAppLog(a *AppLog) Option { return func(l *Logger) { l.applog = a } }

// NewLogger creates a logger over the secure and plain stores.
func NewLogger(secure, plain storage.Store, opts ...Option) *Logger {
	l := &Logger{
		secure:   secure,
		plain:    plain,
		digest:   platform.SHA256Digest,
		signaler: platform.StderrSignaler{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LogCrisisEvent records one crisis evaluation. It never returns an error
// and never panics: primary-path failures run the fallback chain, and the
// chain itself degrades tier by tier. High and critical events additionally
// trigger best-effort contact notification.
func (l *Logger) LogCrisisEvent(ctx context.Context, result model.AssessmentResult, user model.UserContext) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "eventlog: panic recovered in LogCrisisEvent: %v\n", r)
		}
	}()

	event := l.buildEvent(result, user)

	if err := l.appendEvent(ctx, event); err != nil {
		l.runFallback(ctx, event, err)
	}

	if result.Level.RequiresImmediate() {
		l.notifyContacts(ctx, user, result.Level)
	}
}

// buildEvent assembles the anonymized record: indicators are sorted then
// hashed as one string; identifiers are hashed individually. Raw text and
// raw indicators never leave this function.
func (l *Logger) buildEvent(result model.AssessmentResult, user model.UserContext) model.CrisisEvent {
	indicators := make([]string, len(result.Indicators))
	copy(indicators, result.Indicators)
	sort.Strings(indicators)

	userID := user.UserID
	if userID == "" {
		userID = anonymousUser
	}
	sessionID := user.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	return model.CrisisEvent{
		ID:             uuid.NewString(),
		Timestamp:      l.now().UTC(),
		Level:          result.Level,
		Confidence:     result.Confidence,
		IndicatorHash:  l.digest(strings.Join(indicators, "|")),
		IndicatorCount: len(result.Indicators),
		UserHash:       l.digest(userID),
		SessionID:      sessionID,
		Responded:      result.Level != model.RiskNone,
	}
}

// appendEvent is the primary persistence path: read the capped log from the
// secure store, append, trim to the newest entries, write back.
func (l *Logger) appendEvent(ctx context.Context, event model.CrisisEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	events, err := readList[model.CrisisEvent](ctx, l.secure, eventsKey)
	if err != nil {
		return err
	}
	events = append(events, event)
	if len(events) > maxEntries {
		events = events[len(events)-maxEntries:]
	}
	return writeList(ctx, l.secure, eventsKey, events)
}

// LogEmergencyAction records one escalation action with a hashed target.
// Failure is logged and absorbed: this is secondary telemetry, so it gets
// no fallback chain and no retry.
func (l *Logger) LogEmergencyAction(ctx context.Context, actionType model.ActionType, target string, success bool) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "eventlog: panic recovered in LogEmergencyAction: %v\n", r)
		}
	}()

	record := model.EmergencyActionRecord{
		ID:         uuid.NewString(),
		Timestamp:  l.now().UTC(),
		Type:       actionType,
		TargetHash: l.digest(target),
		Success:    success,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	actions, err := readList[model.EmergencyActionRecord](ctx, l.secure, actionsKey)
	if err == nil {
		actions = append(actions, record)
		if len(actions) > maxEntries {
			actions = actions[len(actions)-maxEntries:]
		}
		err = writeList(ctx, l.secure, actionsKey, actions)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "eventlog: emergency action not recorded: %v\n", err)
	}
}

// Events returns the persisted crisis event log, oldest first.
func (l *Logger) Events(ctx context.Context) ([]model.CrisisEvent, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return readList[model.CrisisEvent](ctx, l.secure, eventsKey)
}

// Actions returns the persisted emergency action log, oldest first.
func (l *Logger) Actions(ctx context.Context) ([]model.EmergencyActionRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return readList[model.EmergencyActionRecord](ctx, l.secure, actionsKey)
}

// readList loads a JSON array from the store; a missing key is an empty list.
func readList[T any](ctx context.Context, store storage.Store, key string) ([]T, error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("eventlog: read %s: %w", key, err)
	}
	if data == nil {
		return nil, nil
	}
	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("eventlog: decode %s: %w", key, err)
	}
	return list, nil
}

func writeList[T any](ctx context.Context, store storage.Store, key string, list []T) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("eventlog: encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("eventlog: write %s: %w", key, err)
	}
	return nil
}
