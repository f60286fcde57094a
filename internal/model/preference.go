package model

import "strings"

// PreferenceInput is the raw buyer input: free-text preference statements
// plus optional structured constraints. Absent fields mean the corresponding
// scoring criterion is inapplicable, not zero.
type PreferenceInput struct {
	Statements           []string `json:"statements,omitempty"`
	Budget               *int     `json:"budget,omitempty"`
	MinBedrooms          *int     `json:"min_bedrooms,omitempty"`
	MinSqft              *int     `json:"min_sqft,omitempty"`
	PreferredLocation    *string  `json:"preferred_location,omitempty"`
	DesiredFeatures      []string `json:"desired_features,omitempty"`
	MustHaves            []string `json:"must_haves,omitempty"`
	LocationPreferences  []string `json:"location_preferences,omitempty"`
	LifestylePreferences []string `json:"lifestyle_preferences,omitempty"`
}

// PreferenceModel is the normalized buyer intent for one matching run. Built
// once per run, immutable, discarded afterwards.
type PreferenceModel struct {
	Budget               *int     `json:"budget,omitempty"`
	MinBedrooms          *int     `json:"min_bedrooms,omitempty"`
	MinSqft              *int     `json:"min_sqft,omitempty"`
	PreferredLocation    *string  `json:"preferred_location,omitempty"`
	DesiredFeatures      []string `json:"desired_features,omitempty"`
	MustHaves            []string `json:"must_haves,omitempty"`
	LocationPreferences  []string `json:"location_preferences,omitempty"`
	LifestylePreferences []string `json:"lifestyle_preferences,omitempty"`
	Statements           []string `json:"statements,omitempty"`

	// SummaryText is the natural-language synthesis of the preference
	// statements, used as the semantic query.
	SummaryText string `json:"summary_text,omitempty"`
}

// HasStructured reports whether any structured constraint is set. When true,
// the attribute score is the primary fusion key.
func (p *PreferenceModel) HasStructured() bool {
	return p.Budget != nil ||
		p.MinBedrooms != nil ||
		p.MinSqft != nil ||
		p.PreferredLocation != nil ||
		len(p.DesiredFeatures) > 0 ||
		len(p.MustHaves) > 0 ||
		len(p.LocationPreferences) > 0
}

// IsEmpty reports whether the model carries neither structured constraints
// nor free-text statements. Scoring an empty model is undefined and treated
// as a no-op match upstream.
func (p *PreferenceModel) IsEmpty() bool {
	if p.HasStructured() {
		return false
	}
	for _, s := range p.Statements {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}
