package respond

import (
	"testing"
	"time"

	"github.com/havenline/crisiscore/internal/config"
	"github.com/havenline/crisiscore/internal/model"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
}

func TestRespondNoneReturnsNil(t *testing.T) {
	o := New(fixedClock)
	resp := o.Respond(config.Default(), model.AssessmentResult{Level: model.RiskNone}, model.UserContext{})
	if resp != nil {
		t.Errorf("expected nil response for none, got %+v", resp)
	}
}

func TestRespondCritical(t *testing.T) {
	o := New(fixedClock)
	result := model.AssessmentResult{Level: model.RiskCritical, Confidence: 0.9}

	resp := o.Respond(config.Default(), result, model.UserContext{})
	if resp == nil {
		t.Fatal("expected response")
	}
	if resp.Level != model.RiskCritical || resp.Confidence != 0.9 {
		t.Errorf("result fields not carried: %+v", resp)
	}
	if !resp.Timestamp.Equal(fixedClock()) {
		t.Errorf("expected fixed timestamp, got %v", resp.Timestamp)
	}
	if resp.Message == "" {
		t.Error("critical response needs message copy")
	}
	if len(resp.Resources) == 0 {
		t.Error("critical response needs emergency resources")
	}

	types := map[model.ActionType]model.CrisisAction{}
	for _, a := range resp.Actions {
		types[a.Type] = a
	}
	for _, want := range []model.ActionType{model.ActionCallCrisisLine, model.ActionTextCrisisLine, model.ActionCallEmergency} {
		if _, ok := types[want]; !ok {
			t.Errorf("critical response missing action %s", want)
		}
	}
	if call := types[model.ActionCallEmergency]; call.Number != "911" || !call.Urgent {
		t.Errorf("emergency call malformed: %+v", call)
	}
}

func TestRespondHighOmitsEmergencyCall(t *testing.T) {
	o := New(nil)
	resp := o.Respond(config.Default(), model.AssessmentResult{Level: model.RiskHigh}, model.UserContext{})
	if resp == nil {
		t.Fatal("expected response")
	}
	for _, a := range resp.Actions {
		if a.Type == model.ActionCallEmergency {
			t.Error("high response must not offer an emergency-services call")
		}
	}
}

func TestRespondModerateConcatenatesSupport(t *testing.T) {
	cfg := config.Default()
	o := New(nil)
	resp := o.Respond(cfg, model.AssessmentResult{Level: model.RiskModerate}, model.UserContext{})
	if resp == nil {
		t.Fatal("expected response")
	}

	wantLen := len(RankedEmergencyResources(cfg, model.UserContext{})) + len(cfg.RegionSupport(""))
	if len(resp.Resources) != wantLen {
		t.Errorf("expected %d resources (emergency + support), got %d", wantLen, len(resp.Resources))
	}
	for _, a := range resp.Actions {
		if a.Urgent {
			t.Errorf("moderate actions must not be urgent: %+v", a)
		}
	}
}

func TestRespondLowUsesSupportOnly(t *testing.T) {
	cfg := config.Default()
	o := New(nil)
	resp := o.Respond(cfg, model.AssessmentResult{Level: model.RiskLow}, model.UserContext{})
	if resp == nil {
		t.Fatal("expected response")
	}
	for _, r := range resp.Resources {
		if r.Type == model.ResourceEmergency {
			t.Errorf("low response should not surface emergency resources: %+v", r)
		}
	}
}
