package service

import (
	"sort"
	"strings"

	"homematch/internal/config"
	"homematch/internal/model"
)

// Match reason constants
const (
	ReasonWithinBudget  = "Within budget"
	ReasonBedroomsMatch = "Enough bedrooms"
	ReasonSizeMatch     = "Meets size requirement"
	ReasonFeatureMatch  = "Has desired features"
	ReasonLocationMatch = "Location match"
	ReasonMustHavesMet  = "Must-haves present"
	ReasonSemanticMatch = "Description relevant"
	ReasonGeneralMatch  = "General match"
)

// Scorer is the deterministic attribute matcher. Score is a pure function
// of the listing and the preference model: no external calls, no clock.
// Weights are configuration, not code.
type Scorer struct {
	cfg config.MatchConfig
}

// NewScorer creates a scorer with the given weight table.
func NewScorer(cfg config.MatchConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score returns a weighted match score in [0,1]. Criteria whose precondition
// preference is absent contribute neither earned nor applicable weight; when
// nothing is applicable the score is 0.
func (s *Scorer) Score(l model.Listing, p *model.PreferenceModel) float64 {
	if p == nil {
		return 0
	}

	var earned, applicable float64

	if p.Budget != nil {
		applicable += s.cfg.WeightPrice
		if l.Price <= *p.Budget {
			// Scaled by how far below budget; at exactly budget the ratio
			// is 0 and the criterion earns half its weight.
			ratio := 1 - float64(l.Price)/float64(*p.Budget)
			earned += s.cfg.WeightPrice * (0.5 + ratio/2)
		}
	}

	if p.MinBedrooms != nil {
		applicable += s.cfg.WeightBedrooms
		if l.Bedrooms >= *p.MinBedrooms {
			earned += s.cfg.WeightBedrooms
		}
	}

	if len(p.DesiredFeatures) > 0 {
		applicable += s.cfg.WeightFeatures
		per := s.cfg.WeightFeatures / float64(len(p.DesiredFeatures))
		for _, want := range p.DesiredFeatures {
			if anyContains(l.Features, want) {
				earned += per
			}
		}
	}

	if len(p.LocationPreferences) > 0 {
		applicable += s.cfg.WeightLocation
		combined := strings.ToLower(l.NeighborhoodDescription + " " + l.Description)
		per := s.cfg.WeightLocation / float64(len(p.LocationPreferences))
		for _, pref := range p.LocationPreferences {
			if strings.Contains(combined, strings.ToLower(pref)) {
				earned += per
			}
		}
	}

	if len(p.MustHaves) > 0 {
		applicable += s.cfg.WeightMustHaves
		combined := strings.ToLower(l.Description + " " + l.NeighborhoodDescription + " " + strings.Join(l.Features, " "))
		per := s.cfg.WeightMustHaves / float64(len(p.MustHaves))
		for _, must := range p.MustHaves {
			if strings.Contains(combined, strings.ToLower(must)) {
				earned += per
			}
		}
	}

	if applicable == 0 {
		return 0
	}
	score := earned / applicable
	if score > 1 {
		score = 1
	}
	return score
}

// Rank is the hard-filter companion: a coarse integer score over the
// structured constraints. Listings scoring 0 are excluded; the rest are
// sorted descending, stable on ties.
func (s *Scorer) Rank(listings []model.Listing, p *model.PreferenceModel) []model.RankedListing {
	if p == nil {
		return nil
	}

	ranked := make([]model.RankedListing, 0, len(listings))
	for _, l := range listings {
		score := 0
		if p.Budget != nil && l.Price <= *p.Budget {
			score += s.cfg.RankPrice
		}
		if p.MinSqft != nil && l.Sqft >= *p.MinSqft {
			score += s.cfg.RankSqft
		}
		if p.MinBedrooms != nil && l.Bedrooms >= *p.MinBedrooms {
			score += s.cfg.RankBedrooms
		}
		if p.PreferredLocation != nil && matchesLocation(l, *p.PreferredLocation) {
			score += s.cfg.RankLocation
		}
		if score > 0 {
			ranked = append(ranked, model.RankedListing{Listing: l, Score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Reasons generates human-readable reasons for why a listing matched.
func (s *Scorer) Reasons(l model.Listing, p *model.PreferenceModel, semanticScore float64) []string {
	reasons := []string{}
	if p == nil {
		return reasons
	}

	if p.Budget != nil && l.Price <= *p.Budget {
		reasons = append(reasons, ReasonWithinBudget)
	}
	if p.MinBedrooms != nil && l.Bedrooms >= *p.MinBedrooms {
		reasons = append(reasons, ReasonBedroomsMatch)
	}
	if p.MinSqft != nil && l.Sqft >= *p.MinSqft {
		reasons = append(reasons, ReasonSizeMatch)
	}
	for _, want := range p.DesiredFeatures {
		if anyContains(l.Features, want) {
			reasons = append(reasons, ReasonFeatureMatch)
			break
		}
	}
	if p.PreferredLocation != nil && matchesLocation(l, *p.PreferredLocation) {
		reasons = append(reasons, ReasonLocationMatch)
	}
	if len(p.MustHaves) > 0 {
		combined := strings.ToLower(l.SearchableText())
		for _, must := range p.MustHaves {
			if strings.Contains(combined, strings.ToLower(must)) {
				reasons = append(reasons, ReasonMustHavesMet)
				break
			}
		}
	}
	if semanticScore > 0 {
		reasons = append(reasons, ReasonSemanticMatch)
	}
	if len(reasons) == 0 {
		reasons = append(reasons, ReasonGeneralMatch)
	}
	return reasons
}

// anyContains reports whether any item case-insensitively contains want as
// a substring. Exact-substring semantics are intentional: "park" matches
// "parking", a known precision limitation carried over as-is.
func anyContains(items []string, want string) bool {
	w := strings.ToLower(want)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item), w) {
			return true
		}
	}
	return false
}

func matchesLocation(l model.Listing, location string) bool {
	loc := strings.ToLower(location)
	return strings.Contains(strings.ToLower(l.Neighborhood), loc) ||
		strings.Contains(strings.ToLower(l.NeighborhoodDescription), loc)
}
