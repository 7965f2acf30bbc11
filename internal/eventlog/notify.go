package eventlog

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/havenline/crisiscore/internal/model"
	"github.com/havenline/crisiscore/internal/platform"
)

// Notifier delivers a crisis notification to one emergency contact.
type Notifier interface {
	Notify(ctx context.Context, contact model.EmergencyContact, level model.RiskLevel) error
}

// notifyContacts fans out to every stored contact. Each contact is
// attempted independently: one failure neither stops the others nor
// propagates to the caller.
func (l *Logger) notifyContacts(ctx context.Context, user model.UserContext, level model.RiskLevel) {
	if l.notifier == nil || len(user.EmergencyContacts) == 0 {
		return
	}

	var wg sync.WaitGroup
	for _, contact := range user.EmergencyContacts {
		wg.Add(1)
		go func(c model.EmergencyContact) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					fmt.Fprintf(os.Stderr, "eventlog: notifier panic for contact %s: %v\n", c.Name, r)
				}
			}()
			if err := l.notifier.Notify(ctx, c, level); err != nil {
				fmt.Fprintf(os.Stderr, "eventlog: notify %s failed: %v\n", c.Name, err)
			}
		}(contact)
	}
	wg.Wait()
}

// SMSNotifier notifies contacts through the platform SMS composer.
type SMSNotifier struct {
	Launcher platform.Launcher
}

// Notify opens a pre-filled SMS to the contact after a pre-flight check.
func (n SMSNotifier) Notify(ctx context.Context, contact model.EmergencyContact, level model.RiskLevel) error {
	if n.Launcher == nil {
		return fmt.Errorf("eventlog: no launcher for sms notification")
	}
	uri := "sms:" + contact.Phone
	if !n.Launcher.CanOpen(ctx, uri) {
		return fmt.Errorf("eventlog: sms composer unavailable for %s", contact.Phone)
	}
	body := fmt.Sprintf("Someone who lists you as an emergency contact may need support right now (alert level: %s). Please check in with them.", level)
	return n.Launcher.OpenSMS(ctx, contact.Phone, body)
}
