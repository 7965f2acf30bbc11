package model

import "time"

// ResourceType identifies the contact channel of an emergency resource.
type ResourceType string

const (
	ResourceVoice     ResourceType = "voice"
	ResourceText      ResourceType = "text"
	ResourceEmergency ResourceType = "emergency"
	ResourceChat      ResourceType = "chat"
	ResourceInfo      ResourceType = "resource"
)

// EmergencyResource is one entry in a region's crisis resource catalog.
// Immutable once loaded for a session.
type EmergencyResource struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Number      string       `json:"number" yaml:"number"`
	TextKeyword string       `json:"text_keyword,omitempty" yaml:"text_keyword,omitempty"`
	Description string       `json:"description" yaml:"description"`
	Type        ResourceType `json:"type" yaml:"type"`
	Priority    int          `json:"priority" yaml:"priority"`
	Specialty   string       `json:"specialty,omitempty" yaml:"specialty,omitempty"`
	Region      string       `json:"region" yaml:"region"`
}

// AssessmentResult is the output of one risk evaluation. Created fresh per
// evaluation; never mutated.
type AssessmentResult struct {
	Level             RiskLevel `json:"level"`
	Confidence        float64   `json:"confidence"`
	Score             int       `json:"score"`
	Indicators        []string  `json:"indicators"`
	RequiresImmediate bool      `json:"requires_immediate"`
}

// ActionType identifies a device-level escalation action.
type ActionType string

const (
	ActionCallCrisisLine ActionType = "call_crisis_line"
	ActionTextCrisisLine ActionType = "text_crisis_line"
	ActionCallEmergency  ActionType = "call_emergency"
	ActionContinueChat   ActionType = "continue_chat"
	ActionViewResources  ActionType = "view_resources"
	ActionViewCoping     ActionType = "view_coping"
	ActionCalmingBreath  ActionType = "calming_exercise"
)

// CrisisAction is one actionable step offered to the user. The orchestrator
// decides what to offer; executing the action is the host platform's job.
type CrisisAction struct {
	Type    ActionType `json:"type"`
	Number  string     `json:"number,omitempty"`
	Keyword string     `json:"keyword,omitempty"`
	Label   string     `json:"label"`
	Urgent  bool       `json:"urgent"`
}

// CrisisResponse is the structured intervention built from an assessment.
// Read-only downstream.
type CrisisResponse struct {
	Level      RiskLevel           `json:"level"`
	Confidence float64             `json:"confidence"`
	Timestamp  time.Time           `json:"timestamp"`
	Resources  []EmergencyResource `json:"resources"`
	Message    string              `json:"message"`
	Actions    []CrisisAction      `json:"actions"`
}

// EmergencyContact is a user-supplied contact notified on high/critical
// events. Stored outside this engine; read by the notification step.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// UserContext is the lightweight profile context consulted when building a
// response and logging an event.
type UserContext struct {
	UserID            string             `json:"user_id,omitempty"`
	SessionID         string             `json:"session_id,omitempty"`
	Region            string             `json:"region,omitempty"`
	Age               int                `json:"age,omitempty"`
	IdentifiesLGBTQ   bool               `json:"identifies_lgbtq,omitempty"`
	Veteran           bool               `json:"veteran,omitempty"`
	EmergencyContacts []EmergencyContact `json:"emergency_contacts,omitempty"`
}

// CrisisEvent is the persisted, anonymized record of one crisis evaluation.
// Raw text and raw indicators never appear here — only one-way hashes.
type CrisisEvent struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	Level          RiskLevel `json:"level"`
	Confidence     float64   `json:"confidence"`
	IndicatorHash  string    `json:"indicator_hash"`
	IndicatorCount int       `json:"indicator_count"`
	UserHash       string    `json:"user_hash"`
	SessionID      string    `json:"session_id,omitempty"`
	Responded      bool      `json:"responded"`
}

// EmergencyActionRecord is the persisted record of one escalation action.
type EmergencyActionRecord struct {
	ID         string     `json:"id"`
	Timestamp  time.Time  `json:"timestamp"`
	Type       ActionType `json:"type"`
	TargetHash string     `json:"target_hash"`
	Success    bool       `json:"success"`
}

// SafetyPlan is a user-authored crisis plan, versioned on every update.
type SafetyPlan struct {
	WarningSigns         []string           `json:"warning_signs"`
	CopingStrategies     []string           `json:"coping_strategies"`
	SocialSupports       []string           `json:"social_supports"`
	ProfessionalContacts []string           `json:"professional_contacts"`
	SafeEnvironmentSteps []string           `json:"safe_environment_steps"`
	EmergencyContacts    []EmergencyContact `json:"emergency_contacts"`
	Version              int                `json:"version"`
	LastUpdated          time.Time          `json:"last_updated"`
}

// Statistics aggregates the persisted event and action logs.
type Statistics struct {
	TotalEvents       int               `json:"total_events"`
	EventsLast30Days  int               `json:"events_last_30_days"`
	TotalActions      int               `json:"total_actions"`
	ActionsLast30Days int               `json:"actions_last_30_days"`
	LevelDistribution map[RiskLevel]int `json:"level_distribution"`
	TopIndicators     []IndicatorCount  `json:"top_indicators"`
	ResponseRate      float64           `json:"response_rate"`
}

// IndicatorCount pairs a hashed indicator with its occurrence count.
type IndicatorCount struct {
	IndicatorHash string `json:"indicator_hash"`
	Count         int    `json:"count"`
}

// ProviderReport is the anonymized, provider-facing summary of one event.
type ProviderReport struct {
	Level           RiskLevel `json:"level"`
	Confidence      float64   `json:"confidence"`
	EventTimestamp  time.Time `json:"event_timestamp"`
	IndicatorCount  int       `json:"indicator_count"`
	Recommendations []string  `json:"recommendations"`
	AnonymizedAt    time.Time `json:"anonymized_at"`
	PrivacyLevel    string    `json:"privacy_level"`
}
