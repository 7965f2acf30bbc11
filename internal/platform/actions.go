package platform

import (
	"context"
	"fmt"

	"github.com/havenline/crisiscore/internal/model"
)

// ExecuteAction dispatches a response action through the launcher, running
// the pre-flight check first. Informational actions (continue chat, view
// resources) are the host UI's concern and return nil here.
func ExecuteAction(ctx context.Context, launcher Launcher, action model.CrisisAction) error {
	if launcher == nil {
		return fmt.Errorf("platform: no launcher available")
	}

	switch action.Type {
	case model.ActionCallCrisisLine, model.ActionCallEmergency:
		uri := "tel:" + action.Number
		if !launcher.CanOpen(ctx, uri) {
			return fmt.Errorf("platform: cannot open dialer for %s", action.Number)
		}
		return launcher.OpenDial(ctx, action.Number)

	case model.ActionTextCrisisLine:
		uri := "sms:" + action.Number
		if !launcher.CanOpen(ctx, uri) {
			return fmt.Errorf("platform: cannot open sms composer for %s", action.Number)
		}
		return launcher.OpenSMS(ctx, action.Number, action.Keyword)

	default:
		return nil
	}
}
