package stats

import (
	"time"

	"github.com/havenline/crisiscore/internal/model"
)

// privacyLevel marks every provider report. There is no lower level: the
// persisted event is already anonymized, and this strips it further.
const privacyLevel = "anonymized"

// recommendations are the clinical follow-up suggestions attached per level.
var recommendations = map[model.RiskLevel][]string{
	model.RiskCritical: {
		"Immediate psychiatric evaluation recommended",
		"Consider inpatient care",
		"Monitor for suicidal ideation",
		"Coordinate with emergency services if indicated",
	},
	model.RiskHigh: {
		"Urgent clinical assessment recommended",
		"Crisis-focused therapy",
		"Medication compliance check",
		"Review and update safety plan",
	},
	model.RiskModerate: {
		"Outpatient referral",
		"Medication evaluation",
		"Reinforce coping strategies",
	},
	model.RiskLow: {
		"Continue supportive therapy",
		"Routine monitoring",
		"Reinforce existing skills",
	},
}

// PrepareProviderReport builds the anonymized, provider-facing summary of
// one event. The persisted event carries no user id or raw text; the report
// additionally drops the user and session hashes and stamps when and at
// what privacy level the anonymization happened.
func PrepareProviderReport(event model.CrisisEvent, now func() time.Time) model.ProviderReport {
	if now == nil {
		now = time.Now
	}
	return model.ProviderReport{
		Level:           event.Level,
		Confidence:      event.Confidence,
		EventTimestamp:  event.Timestamp,
		IndicatorCount:  event.IndicatorCount,
		Recommendations: recommendations[event.Level],
		AnonymizedAt:    now().UTC(),
		PrivacyLevel:    privacyLevel,
	}
}
