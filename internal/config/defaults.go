package config

import "github.com/havenline/crisiscore/internal/model"

// DefaultRegion is the region used when a user's region is absent or unknown.
const DefaultRegion = "us"

// Default returns the built-in configuration. Remote or file overrides are
// merged over this; the engine always works even when no override loads.
func Default() *Config {
	return &Config{
		Keywords: Keywords{
			Critical: []string{
				"kill myself",
				"suicide",
				"suicidal",
				"end my life",
				"want to die",
				"better off dead",
				"no reason to live",
				"end it all",
			},
			High: []string{
				"self harm",
				"hurt myself",
				"cutting myself",
				"overdose",
				"can't go on",
				"hopeless",
				"no way out",
				"never wake up",
			},
			Moderate: []string{
				"worthless",
				"unbearable",
				"trapped",
				"give up",
				"burden to everyone",
				"hate myself",
				"empty inside",
			},
			Urgency: []string{
				"tonight",
				"right now",
				"today",
				"this time",
				"goodbye forever",
			},
		},
		Weights: Weights{
			Critical: 10,
			High:     7,
			Moderate: 3,
			Urgency:  5,
		},
		Combinations: []Combination{
			{First: "plan", Second: "suicide"},
			{First: "plan", Second: "die"},
			{First: "pills", Second: "overdose"},
			{First: "bridge", Second: "jump"},
			{First: "gun", Second: "myself"},
			{First: "goodbye", Second: "everyone"},
		},
		CombinationBonus: 8,
		Thresholds: Thresholds{
			Low:      1,
			Moderate: 4,
			High:     8,
			Critical: 15,
		},
		DefaultRegion: DefaultRegion,
		Resources: map[string][]model.EmergencyResource{
			DefaultRegion: {
				{
					ID:          "crisis-lifeline",
					Name:        "988 Suicide & Crisis Lifeline",
					Number:      "988",
					Description: "Free, confidential support 24/7",
					Type:        model.ResourceVoice,
					Priority:    1,
					Region:      DefaultRegion,
				},
				{
					ID:          "crisis-text-line",
					Name:        "Crisis Text Line",
					Number:      "741741",
					TextKeyword: "HOME",
					Description: "Text with a trained crisis counselor",
					Type:        model.ResourceText,
					Priority:    2,
					Region:      DefaultRegion,
				},
				{
					ID:          "emergency-services",
					Name:        "Emergency Services",
					Number:      "911",
					Description: "Immediate emergency response",
					Type:        model.ResourceEmergency,
					Priority:    3,
					Region:      DefaultRegion,
				},
				{
					ID:          "trevor-project",
					Name:        "The Trevor Project",
					Number:      "1-866-488-7386",
					Description: "Crisis support for LGBTQ young people",
					Type:        model.ResourceVoice,
					Priority:    4,
					Specialty:   "lgbtq",
					Region:      DefaultRegion,
				},
				{
					ID:          "veterans-crisis-line",
					Name:        "Veterans Crisis Line",
					Number:      "988",
					TextKeyword: "838255",
					Description: "Support for veterans and their families",
					Type:        model.ResourceVoice,
					Priority:    5,
					Specialty:   "veterans",
					Region:      DefaultRegion,
				},
			},
		},
		Support: map[string][]model.EmergencyResource{
			DefaultRegion: {
				{
					ID:          "samhsa-helpline",
					Name:        "SAMHSA National Helpline",
					Number:      "1-800-662-4357",
					Description: "Treatment referral and information service",
					Type:        model.ResourceInfo,
					Priority:    1,
					Region:      DefaultRegion,
				},
				{
					ID:          "warmline-directory",
					Name:        "Peer Support Warmline Directory",
					Number:      "",
					Description: "Non-crisis peer support lines by state",
					Type:        model.ResourceChat,
					Priority:    2,
					Region:      DefaultRegion,
				},
			},
		},
	}
}
