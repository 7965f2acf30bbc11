package crisiscore

import "github.com/havenline/crisiscore/internal/model"

// Aliases for the domain types that appear in the public API. Host
// applications work entirely in terms of these.
type (
	RiskLevel             = model.RiskLevel
	AssessmentResult      = model.AssessmentResult
	CrisisResponse        = model.CrisisResponse
	CrisisAction          = model.CrisisAction
	ActionType            = model.ActionType
	EmergencyResource     = model.EmergencyResource
	UserContext           = model.UserContext
	EmergencyContact      = model.EmergencyContact
	CrisisEvent           = model.CrisisEvent
	EmergencyActionRecord = model.EmergencyActionRecord
	SafetyPlan            = model.SafetyPlan
	Statistics            = model.Statistics
	IndicatorCount        = model.IndicatorCount
	ProviderReport        = model.ProviderReport
)

// Risk levels, lowest to highest.
const (
	RiskNone     = model.RiskNone
	RiskLow      = model.RiskLow
	RiskModerate = model.RiskModerate
	RiskHigh     = model.RiskHigh
	RiskCritical = model.RiskCritical
)

// Action types offered in crisis responses.
const (
	ActionCallCrisisLine = model.ActionCallCrisisLine
	ActionTextCrisisLine = model.ActionTextCrisisLine
	ActionCallEmergency  = model.ActionCallEmergency
	ActionContinueChat   = model.ActionContinueChat
	ActionViewResources  = model.ActionViewResources
	ActionViewCoping     = model.ActionViewCoping
	ActionCalmingBreath  = model.ActionCalmingBreath
)
