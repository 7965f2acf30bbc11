package platform

import (
	"context"
	"testing"

	"github.com/havenline/crisiscore/internal/model"
)

// fakeLauncher records calls and can refuse the pre-flight check.
type fakeLauncher struct {
	canOpen bool
	dials   []string
	sms     [][2]string
	urls    []string
}

func (f *fakeLauncher) CanOpen(context.Context, string) bool { return f.canOpen }
func (f *fakeLauncher) OpenDial(_ context.Context, number string) error {
	f.dials = append(f.dials, number)
	return nil
}
func (f *fakeLauncher) OpenSMS(_ context.Context, number, body string) error {
	f.sms = append(f.sms, [2]string{number, body})
	return nil
}
func (f *fakeLauncher) OpenURL(_ context.Context, url string) error {
	f.urls = append(f.urls, url)
	return nil
}

func TestExecuteCallAction(t *testing.T) {
	l := &fakeLauncher{canOpen: true}
	action := model.CrisisAction{Type: model.ActionCallCrisisLine, Number: "988"}

	if err := ExecuteAction(context.Background(), l, action); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l.dials) != 1 || l.dials[0] != "988" {
		t.Errorf("dial not launched: %v", l.dials)
	}
}

func TestExecuteTextActionCarriesKeyword(t *testing.T) {
	l := &fakeLauncher{canOpen: true}
	action := model.CrisisAction{Type: model.ActionTextCrisisLine, Number: "741741", Keyword: "HOME"}

	if err := ExecuteAction(context.Background(), l, action); err != nil {
		t.Fatal(err)
	}
	if len(l.sms) != 1 || l.sms[0][0] != "741741" || l.sms[0][1] != "HOME" {
		t.Errorf("sms not prefilled: %v", l.sms)
	}
}

func TestExecutePreflightFailure(t *testing.T) {
	l := &fakeLauncher{canOpen: false}
	action := model.CrisisAction{Type: model.ActionCallEmergency, Number: "911"}

	if err := ExecuteAction(context.Background(), l, action); err == nil {
		t.Error("expected error when pre-flight check fails")
	}
	if len(l.dials) != 0 {
		t.Errorf("dial must not launch after failed pre-flight: %v", l.dials)
	}
}

func TestExecuteInformationalActionIsNoop(t *testing.T) {
	l := &fakeLauncher{canOpen: true}
	if err := ExecuteAction(context.Background(), l, model.CrisisAction{Type: model.ActionContinueChat}); err != nil {
		t.Errorf("informational action must be a no-op: %v", err)
	}
	if len(l.dials)+len(l.sms)+len(l.urls) != 0 {
		t.Error("informational action touched the launcher")
	}
}

func TestSHA256Digest(t *testing.T) {
	h := SHA256Digest("anonymous")
	if len(h) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(h))
	}
	if h != SHA256Digest("anonymous") {
		t.Error("digest must be deterministic")
	}
	if h == SHA256Digest("someone else") {
		t.Error("distinct inputs must not collide")
	}
}
