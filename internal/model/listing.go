package model

import (
	"fmt"
	"strings"
)

// Listing represents a property listing. Listings are immutable once created:
// they are either generated by the listing generator or loaded from the seed
// set, and never mutated afterwards.
type Listing struct {
	ID                      string   `json:"id"`
	Neighborhood            string   `json:"neighborhood"`
	Price                   int      `json:"price"`
	Sqft                    int      `json:"sqft"`
	Bedrooms                int      `json:"bedrooms"`
	Bathrooms               float64  `json:"bathrooms"`
	YearBuilt               int      `json:"year_built,omitempty"`
	PropertyType            string   `json:"property_type,omitempty"`
	Description             string   `json:"description"`
	NeighborhoodDescription string   `json:"neighborhood_description"`
	Features                []string `json:"features,omitempty"`
	Amenities               []string `json:"amenities,omitempty"`
	LotSize                 string   `json:"lot_size,omitempty"`
	ParkingType             string   `json:"parking_type,omitempty"`
	SchoolDistrict          string   `json:"school_district,omitempty"`
}

// Validate checks the listing invariants. Generated listings that fail
// validation are skipped, never stored.
func (l *Listing) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("listing has no id")
	}
	if l.Price <= 0 {
		return fmt.Errorf("listing %s: price must be positive, got %d", l.ID, l.Price)
	}
	if l.Sqft <= 0 {
		return fmt.Errorf("listing %s: sqft must be positive, got %d", l.ID, l.Sqft)
	}
	if l.Bedrooms < 0 {
		return fmt.Errorf("listing %s: bedrooms must be non-negative, got %d", l.ID, l.Bedrooms)
	}
	if l.Bathrooms < 0 {
		return fmt.Errorf("listing %s: bathrooms must be non-negative, got %.1f", l.ID, l.Bathrooms)
	}
	if strings.TrimSpace(l.Description) == "" {
		return fmt.Errorf("listing %s: description is empty", l.ID)
	}
	if strings.TrimSpace(l.NeighborhoodDescription) == "" {
		return fmt.Errorf("listing %s: neighborhood description is empty", l.ID)
	}
	return nil
}

// CombinedDescription returns the text that is embedded for semantic search.
func (l *Listing) CombinedDescription() string {
	return l.Description + " " + l.NeighborhoodDescription
}

// SearchableText returns all free text of the listing, including feature and
// amenity names. Used for keyword matching and factual-accuracy checks.
func (l *Listing) SearchableText() string {
	parts := []string{l.Description, l.NeighborhoodDescription, l.Neighborhood}
	parts = append(parts, l.Features...)
	parts = append(parts, l.Amenities...)
	if l.PropertyType != "" {
		parts = append(parts, l.PropertyType)
	}
	return strings.Join(parts, " ")
}

// ScoredListing pairs a listing with its fused match score and, once
// personalization has run, the rewritten description. It is derived output
// and never persisted as source of truth.
type ScoredListing struct {
	Listing          Listing  `json:"listing"`
	MatchScore       float64  `json:"match_score"`
	SemanticScore    float64  `json:"semantic_score,omitempty"`
	PersonalizedText string   `json:"personalized_text,omitempty"`
	MatchedReasons   []string `json:"matched_reasons,omitempty"`
}

// RankedListing is the hard-filter companion result: an integer score from
// the coarse criteria, with zero-scoring listings excluded.
type RankedListing struct {
	Listing Listing `json:"listing"`
	Score   int     `json:"score"`
}
