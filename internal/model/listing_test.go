package model

import (
	"strings"
	"testing"
)

func validListing() Listing {
	return Listing{
		ID:                      "test-1",
		Neighborhood:            "Green Oaks",
		Price:                   800000,
		Sqft:                    2000,
		Bedrooms:                3,
		Bathrooms:               2,
		Description:             "An eco-friendly home with solar panels.",
		NeighborhoodDescription: "A close-knit community.",
		Features:                []string{"solar panels"},
		Amenities:               []string{"parks"},
	}
}

func TestListing_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Listing)
		wantErr bool
	}{
		{name: "valid", mutate: func(l *Listing) {}, wantErr: false},
		{name: "missing id", mutate: func(l *Listing) { l.ID = "" }, wantErr: true},
		{name: "zero price", mutate: func(l *Listing) { l.Price = 0 }, wantErr: true},
		{name: "negative price", mutate: func(l *Listing) { l.Price = -100 }, wantErr: true},
		{name: "zero sqft", mutate: func(l *Listing) { l.Sqft = 0 }, wantErr: true},
		{name: "negative bedrooms", mutate: func(l *Listing) { l.Bedrooms = -1 }, wantErr: true},
		{name: "studio is fine", mutate: func(l *Listing) { l.Bedrooms = 0 }, wantErr: false},
		{name: "blank description", mutate: func(l *Listing) { l.Description = "  " }, wantErr: true},
		{name: "blank neighborhood description", mutate: func(l *Listing) { l.NeighborhoodDescription = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validListing()
			tt.mutate(&l)
			err := l.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestListing_SearchableText(t *testing.T) {
	l := validListing()
	l.PropertyType = "Townhouse"

	text := l.SearchableText()
	for _, want := range []string{"solar panels", "parks", "Green Oaks", "Townhouse", "eco-friendly"} {
		if !strings.Contains(text, want) {
			t.Errorf("SearchableText() missing %q", want)
		}
	}
}

func TestListing_CombinedDescription(t *testing.T) {
	l := validListing()
	got := l.CombinedDescription()
	want := l.Description + " " + l.NeighborhoodDescription
	if got != want {
		t.Errorf("CombinedDescription() = %q, want %q", got, want)
	}
}
