package store

import (
	"testing"

	"homematch/internal/model"
)

func TestNewSeeded(t *testing.T) {
	s := NewSeeded()
	if s.Len() != 10 {
		t.Fatalf("seeded store has %d listings, want 10", s.Len())
	}

	listing, ok := s.Get("L1")
	if !ok {
		t.Fatal("Get(L1) not found")
	}
	if listing.Neighborhood != "Riverside Heights" {
		t.Errorf("L1 neighborhood = %q, want Riverside Heights", listing.Neighborhood)
	}
}

func TestSeedListingsValid(t *testing.T) {
	for _, l := range Seed() {
		if err := l.Validate(); err != nil {
			t.Errorf("seed listing %s invalid: %v", l.ID, err)
		}
	}
}

func TestStore_Replace(t *testing.T) {
	s := NewSeeded()

	valid := model.Listing{
		ID:                      "new-1",
		Neighborhood:            "Testville",
		Price:                   500000,
		Sqft:                    1500,
		Bedrooms:                3,
		Bathrooms:               2,
		Description:             "A test home.",
		NeighborhoodDescription: "A test neighborhood.",
	}
	invalid := model.Listing{ID: "new-2", Price: -1}

	kept := s.Replace([]model.Listing{valid, invalid})
	if kept != 1 {
		t.Errorf("Replace() kept %d listings, want 1 (invalid dropped)", kept)
	}
	if s.Len() != 1 {
		t.Errorf("store has %d listings after replace, want 1", s.Len())
	}
	if _, ok := s.Get("L1"); ok {
		t.Error("old listing L1 still present after replace")
	}
	if _, ok := s.Get("new-1"); !ok {
		t.Error("new listing not found after replace")
	}
}

func TestStore_AllReturnsCopy(t *testing.T) {
	s := NewSeeded()

	all := s.All()
	all[0].Neighborhood = "Mutated"

	fresh, _ := s.Get(all[0].ID)
	if fresh.Neighborhood == "Mutated" {
		t.Error("mutating the All() result changed stored data")
	}
}

func TestStore_GetUnknown(t *testing.T) {
	s := New()
	if _, ok := s.Get("nope"); ok {
		t.Error("Get() on empty store reported a hit")
	}
}
