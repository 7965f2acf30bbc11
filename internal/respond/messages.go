package respond

import "github.com/havenline/crisiscore/internal/model"

// Message copy shown with each intervention. Wording is reviewed by the
// clinical team; keep edits coordinated with them.
var messages = map[model.RiskLevel]string{
	model.RiskCritical: "I'm really concerned about what you're sharing. You don't have to face this alone — trained counselors are available right now, and they want to help. Please reach out to one of the resources below.",
	model.RiskHigh:     "It sounds like you're going through something very painful right now. You deserve support. A trained crisis counselor is available around the clock and talking to one can help.",
	model.RiskModerate: "Thank you for sharing how you're feeling. Things sound heavy right now. Would you like to keep talking, or explore some support options together?",
	model.RiskLow:      "I hear you, and I'm glad you're talking about it. If things start to feel like more than you can carry, support is always available.",
}

// MessageFor returns the intervention copy for a level.
func MessageFor(level model.RiskLevel) string {
	return messages[level]
}
