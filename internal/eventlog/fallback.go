package eventlog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/havenline/crisiscore/internal/model"
)

// userNotice is surfaced (non-blocking) only when every tier has failed.
// Framed as reassurance, not a technical error.
const userNotice = "We couldn't save a record of this conversation, but that does not affect your support: emergency resources are still available to you right now."

// fallbackRecord is what the chain persists when the primary path fails. It
// carries the primary error so the failure is diagnosable later.
type fallbackRecord struct {
	Timestamp    string            `json:"timestamp"`
	PrimaryError string            `json:"primary_error"`
	Event        model.CrisisEvent `json:"event"`
}

// tier is one step of the fallback chain. Each tier is attempted only after
// the previous tier failed; success stops the chain. Adding a tier is one
// entry in the slice built by runFallback.
type tier struct {
	name    string
	attempt func(ctx context.Context, key string, record []byte) error
}

// runFallback pushes the record through the chain: secure store under a
// timestamped key, then plain store, then the application log plus a user
// notice. If even the final tier fails there is nothing left to do but
// say so on stderr.
func (l *Logger) runFallback(ctx context.Context, event model.CrisisEvent, primaryErr error) {
	rec := fallbackRecord{
		Timestamp:    l.now().UTC().Format("2006-01-02T15:04:05.000Z"),
		PrimaryError: primaryErr.Error(),
		Event:        event,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "eventlog: fallback record not marshallable: %v\n", err)
		return
	}
	key := fmt.Sprintf("crisis_fallback_%d", l.now().UTC().UnixNano())

	tiers := []tier{
		{name: "secure", attempt: func(ctx context.Context, key string, record []byte) error {
			return l.secure.Set(ctx, key, record)
		}},
		{name: "plain", attempt: func(ctx context.Context, key string, record []byte) error {
			if l.plain == nil {
				return fmt.Errorf("no plain store configured")
			}
			return l.plain.Set(ctx, key, record)
		}},
		{name: "applog", attempt: func(ctx context.Context, key string, record []byte) error {
			if l.applog == nil {
				return fmt.Errorf("no application log configured")
			}
			if err := l.applog.Append("crisis_fallback", json.RawMessage(record)); err != nil {
				return err
			}
			if l.signaler != nil {
				l.signaler.Signal(ctx, userNotice)
			}
			return nil
		}},
	}

	for _, t := range tiers {
		if err := t.attempt(ctx, key, data); err != nil {
			fmt.Fprintf(os.Stderr, "eventlog: fallback tier %s failed: %v\n", t.name, err)
			continue
		}
		return
	}
	fmt.Fprintf(os.Stderr, "eventlog: all fallback tiers exhausted, crisis record lost: %v\n", primaryErr)
}
