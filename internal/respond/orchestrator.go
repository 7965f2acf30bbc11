// Package respond maps a risk assessment to a structured intervention:
// message copy, ranked resources, and action descriptors. Executing an
// action (dialing, composing an SMS) belongs to the host platform.
package respond

import (
	"time"

	"github.com/havenline/crisiscore/internal/config"
	"github.com/havenline/crisiscore/internal/model"
)

// Fallback contact points used when the regional catalog is missing the
// corresponding channel.
const (
	fallbackCrisisLine  = "988"
	fallbackTextLine    = "741741"
	fallbackTextKeyword = "HOME"
	emergencyNumber     = "911"
)

// Orchestrator builds CrisisResponses from assessment results.
type Orchestrator struct {
	now func() time.Time
}

// New creates an orchestrator. A nil clock uses wall time.
func New(now func() time.Time) *Orchestrator {
	if now == nil {
		now = time.Now
	}
	return &Orchestrator{now: now}
}

// Respond builds the intervention for result. Returns nil for level "none":
// no intervention is offered and the caller proceeds normally.
func (o *Orchestrator) Respond(cfg *config.Config, result model.AssessmentResult, user model.UserContext) *model.CrisisResponse {
	if result.Level == model.RiskNone {
		return nil
	}

	resp := &model.CrisisResponse{
		Level:      result.Level,
		Confidence: result.Confidence,
		Timestamp:  o.now().UTC(),
		Message:    MessageFor(result.Level),
	}

	switch result.Level {
	case model.RiskCritical, model.RiskHigh:
		resp.Resources = RankedEmergencyResources(cfg, user)
		resp.Actions = escalationActions(resp.Resources, result.Level == model.RiskCritical)

	case model.RiskModerate:
		resp.Resources = append(RankedEmergencyResources(cfg, user), cfg.RegionSupport(user.Region)...)
		resp.Actions = []model.CrisisAction{
			{Type: model.ActionContinueChat, Label: "Keep talking with me"},
			{Type: model.ActionViewResources, Label: "See support resources"},
			{Type: model.ActionViewCoping, Label: "Coping strategies"},
		}

	case model.RiskLow:
		resp.Resources = cfg.RegionSupport(user.Region)
		resp.Actions = []model.CrisisAction{
			{Type: model.ActionContinueChat, Label: "Keep talking with me"},
			{Type: model.ActionCalmingBreath, Label: "Try a calming exercise"},
			{Type: model.ActionViewResources, Label: "See support resources"},
		}
	}

	return resp
}

// escalationActions builds the call/text action set for high and critical
// responses, sourcing numbers from the ranked catalog with hard fallbacks.
func escalationActions(resources []model.EmergencyResource, critical bool) []model.CrisisAction {
	callNumber := fallbackCrisisLine
	textNumber := fallbackTextLine
	textKeyword := fallbackTextKeyword
	for _, r := range resources {
		switch r.Type {
		case model.ResourceVoice:
			if r.Specialty == "" && callNumber == fallbackCrisisLine {
				callNumber = r.Number
			}
		case model.ResourceText:
			textNumber = r.Number
			if r.TextKeyword != "" {
				textKeyword = r.TextKeyword
			}
		}
	}

	actions := []model.CrisisAction{
		{Type: model.ActionCallCrisisLine, Number: callNumber, Label: "Call the crisis line", Urgent: true},
		{Type: model.ActionTextCrisisLine, Number: textNumber, Keyword: textKeyword, Label: "Text a crisis counselor", Urgent: true},
	}
	if critical {
		actions = append(actions, model.CrisisAction{
			Type: model.ActionCallEmergency, Number: emergencyNumber, Label: "Call emergency services", Urgent: true,
		})
	}
	return actions
}
