// Package platform declares the host collaborators the engine consumes:
// one-way digest, device action launcher, and haptic/alert signaling. The
// engine never talks to the device directly; a mobile shell supplies real
// implementations and the defaults here keep the engine testable.
package platform

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
)

// Digest is the one-way hash collaborator used to anonymize indicators and
// identifiers before persistence. Implementations must be deterministic.
type Digest func(input string) string

// SHA256Digest is the default digest: lowercase hex of SHA-256.
func SHA256Digest(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// Launcher is the platform capability for opening dial, SMS, and URL
// intents. CanOpen is the pre-flight check for each.
type Launcher interface {
	CanOpen(ctx context.Context, uri string) bool
	OpenDial(ctx context.Context, number string) error
	OpenSMS(ctx context.Context, number, body string) error
	OpenURL(ctx context.Context, url string) error
}

// Signaler surfaces a short vibration or modal prompt on critical events.
// Fire-and-forget: implementations must not block.
type Signaler interface {
	Signal(ctx context.Context, message string)
}

// NoopLauncher satisfies Launcher without touching any device capability.
type NoopLauncher struct{}

func (NoopLauncher) CanOpen(context.Context, string) bool          { return false }
func (NoopLauncher) OpenDial(context.Context, string) error        { return nil }
func (NoopLauncher) OpenSMS(context.Context, string, string) error { return nil }
func (NoopLauncher) OpenURL(context.Context, string) error         { return nil }

// StderrSignaler writes the alert to stderr. Used by the CLI.
type StderrSignaler struct{}

func (StderrSignaler) Signal(_ context.Context, message string) {
	fmt.Fprintf(os.Stderr, "ALERT: %s\n", message)
}
