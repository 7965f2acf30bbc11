package respond

import (
	"sort"

	"github.com/havenline/crisiscore/internal/config"
	"github.com/havenline/crisiscore/internal/model"
)

// maxResources caps how many resources a response carries. A crisis screen
// with a dozen numbers helps no one.
const maxResources = 5

// RankedEmergencyResources returns the user's regional emergency resources
// in presentation order. Specialty resources are promoted with a stable sort
// so the configured priority order is preserved among equals: lgbtq first
// for LGBTQ+ users under 25, veterans first for veterans. No side effects.
func RankedEmergencyResources(cfg *config.Config, user model.UserContext) []model.EmergencyResource {
	regional := cfg.RegionResources(user.Region)

	ranked := make([]model.EmergencyResource, len(regional))
	copy(ranked, regional)

	promote := ""
	switch {
	case user.Veteran:
		promote = "veterans"
	case user.IdentifiesLGBTQ && user.Age > 0 && user.Age < 25:
		promote = "lgbtq"
	}
	if promote != "" {
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Specialty == promote && ranked[j].Specialty != promote
		})
	}

	if len(ranked) > maxResources {
		ranked = ranked[:maxResources]
	}
	return ranked
}
