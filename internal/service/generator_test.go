package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"homematch/internal/config"
)

func testGenConfig() config.GenerationConfig {
	return config.GenerationConfig{
		NumListings:    10,
		InterCallDelay: 0,
		Temperature:    0.8,
	}
}

const validListingJSON = `{
	"neighborhood": "Green Oaks",
	"price": 800000,
	"bedrooms": 3,
	"bathrooms": 2,
	"houseSize": 2000,
	"description": "An eco-friendly three bedroom home with solar panels.",
	"neighborhoodDescription": "Green Oaks is a close-knit community with access to parks.",
	"features": ["solar panels", "energy-efficient windows"],
	"yearBuilt": 2010,
	"propertyType": "Single Family Home",
	"lotSize": "0.2 acres",
	"amenities": ["parks", "organic grocery"],
	"parkingType": "garage",
	"schoolDistrict": "Green Oaks Unified"
}`

func TestParseJSONListing(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "clean JSON", raw: validListingJSON, wantErr: false},
		{name: "markdown fenced", raw: "```json\n" + validListingJSON + "\n```", wantErr: false},
		{name: "surrounded by prose", raw: "Here is your listing:\n" + validListingJSON + "\nEnjoy!", wantErr: false},
		{name: "not JSON at all", raw: "I cannot generate a listing right now.", wantErr: true},
		{name: "missing required fields", raw: `{"neighborhood": "Nowhere"}`, wantErr: true},
		{name: "negative price", raw: `{"neighborhood": "X", "price": -5, "bedrooms": 2, "bathrooms": 1, "houseSize": 900, "description": "d", "neighborhoodDescription": "n"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing, err := ParseJSONListing(tt.raw)
			if tt.wantErr {
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("ParseJSONListing() error = %v, want *ParseError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseJSONListing() error = %v", err)
			}
			if listing.ID == "" {
				t.Error("expected a generated listing ID")
			}
			if listing.Neighborhood != "Green Oaks" || listing.Price != 800000 || listing.Sqft != 2000 {
				t.Errorf("unexpected listing fields: %+v", listing)
			}
		})
	}
}

func TestParseKeyValueListing(t *testing.T) {
	valid := `Neighborhood: Green Oaks
Price: $800,000
Bedrooms: 3
Bathrooms: 2
House Size: 2,000 sqft
Description: An eco-friendly three bedroom home with solar panels.
Neighborhood Description: Green Oaks is a close-knit community.`

	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "valid", raw: valid, wantErr: false},
		{name: "missing price", raw: "Neighborhood: X\nBedrooms: 2", wantErr: true},
		{name: "unparsable price", raw: "Neighborhood: X\nPrice: cheap\nBedrooms: 2\nBathrooms: 1\nHouse Size: 900\nDescription: d\nNeighborhood Description: n", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing, err := ParseKeyValueListing(tt.raw)
			if tt.wantErr {
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("ParseKeyValueListing() error = %v, want *ParseError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKeyValueListing() error = %v", err)
			}
			if listing.Price != 800000 {
				t.Errorf("Price = %d, want 800000 (currency formatting stripped)", listing.Price)
			}
			if listing.Sqft != 2000 {
				t.Errorf("Sqft = %d, want 2000 (suffix stripped)", listing.Sqft)
			}
		})
	}
}

func TestListingGenerator_Generate(t *testing.T) {
	t.Run("all calls succeed", func(t *testing.T) {
		gen := &stubGen{text: validListingJSON}
		g := NewListingGenerator(gen, testGenConfig(), zerolog.Nop())

		listings, usedFallback := g.Generate(context.Background(), 3)
		if usedFallback {
			t.Error("fallback used despite successful generation")
		}
		if len(listings) != 3 {
			t.Errorf("generated %d listings, want 3", len(listings))
		}
	})

	t.Run("unparsable output falls back to seed", func(t *testing.T) {
		gen := &stubGen{text: "not a listing"}
		g := NewListingGenerator(gen, testGenConfig(), zerolog.Nop())

		listings, usedFallback := g.Generate(context.Background(), 3)
		if !usedFallback {
			t.Error("expected seed fallback for unparsable output")
		}
		if len(listings) == 0 {
			t.Error("seed fallback returned no listings")
		}
	})

	t.Run("provider outage stops early and falls back", func(t *testing.T) {
		gen := &stubGen{err: &GenerationError{Op: "chat", Err: errors.New("connection refused")}}
		g := NewListingGenerator(gen, testGenConfig(), zerolog.Nop())

		listings, usedFallback := g.Generate(context.Background(), 5)
		if !usedFallback {
			t.Error("expected seed fallback after provider outage")
		}
		if len(listings) == 0 {
			t.Error("seed fallback returned no listings")
		}
		if gen.calls != 1 {
			t.Errorf("generator called %d times, want 1 (stop after first outright failure)", gen.calls)
		}
	})

	t.Run("nil generator uses seed", func(t *testing.T) {
		g := NewListingGenerator(nil, testGenConfig(), zerolog.Nop())

		listings, usedFallback := g.Generate(context.Background(), 3)
		if !usedFallback || len(listings) == 0 {
			t.Errorf("Generate() = (%d listings, fallback=%v), want seed fallback", len(listings), usedFallback)
		}
	})
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "$425,000", want: 425000},
		{in: "425000", want: 425000},
		{in: "2,100 sqft", want: 2100},
		{in: "1.5", want: 1},
		{in: "cheap", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseMoney(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseMoney(%q) = %d, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseMoney(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseMoney(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
