package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"homematch/internal/config"
	"homematch/internal/model"
	"homematch/internal/store"
	"homematch/internal/utils"
)

const generatorSystemRole = "You are a real estate listing generator that creates " +
	"detailed, accurate property descriptions in JSON format."

const listingJSONPrompt = `Generate a realistic real estate listing in JSON format with the following fields:
- neighborhood
- price (between $300,000 and $2,000,000)
- bedrooms (1-6)
- bathrooms (1-4)
- houseSize (in sqft, between 800 and 5000)
- description (detailed property description)
- neighborhoodDescription (detailed area description)
- features (list of key property features)
- yearBuilt (between 1900 and 2024)
- propertyType (e.g., Single Family Home, Condo, Townhouse)
- lotSize (in acres or sqft)
- amenities (list of nearby amenities)
- parkingType (e.g., garage, carport, street parking)
- schoolDistrict

Create a unique listing with specific details and character.
Ensure all numeric values are realistic and consistent.
The description should paint a vivid picture of the property.`

// listingStyles seeds variety across a generated batch.
var listingStyles = []string{
	"luxury waterfront property",
	"cozy starter home",
	"urban loft with modern amenities",
	"historic property with character",
	"family-friendly suburban home",
	"eco-friendly sustainable house",
	"mountain retreat",
	"golf course community property",
	"downtown penthouse",
	"smart home with cutting-edge technology",
}

// ListingGenerator produces synthetic listings through the external text
// generator, falling back to the built-in seed set when the generator is
// unavailable.
type ListingGenerator struct {
	gen   TextGenerator
	cfg   config.GenerationConfig
	log   zerolog.Logger
	sleep func(ctx context.Context, d time.Duration) error
}

// NewListingGenerator creates a listing generator.
func NewListingGenerator(gen TextGenerator, cfg config.GenerationConfig, log zerolog.Logger) *ListingGenerator {
	return &ListingGenerator{
		gen:   gen,
		cfg:   cfg,
		log:   log.With().Str("component", "generator").Logger(),
		sleep: sleepCtx,
	}
}

// Generate produces up to n listings. A listing that fails to parse or
// validate is skipped and generation continues; if nothing usable comes
// back at all, the seed set is returned instead. The second return value
// reports whether the fallback was used.
func (g *ListingGenerator) Generate(ctx context.Context, n int) ([]model.Listing, bool) {
	if n <= 0 {
		n = g.cfg.NumListings
	}
	if g.gen == nil {
		g.log.Info().Msg("no text generator configured, using seed set")
		return store.Seed(), true
	}

	listings := make([]model.Listing, 0, n)
	for i := 0; i < n; i++ {
		style := listingStyles[i%len(listingStyles)]
		prompt := listingJSONPrompt + "\nAdditional style guidance: " + style

		raw, err := g.gen.Generate(ctx, generatorSystemRole, prompt, g.cfg.Temperature)
		if err != nil {
			g.log.Warn().Err(err).Str("style", style).Msg("listing generation call failed")
			var genErr *GenerationError
			if errors.As(err, &genErr) && len(listings) == 0 {
				// Provider looks down outright; stop burning calls.
				break
			}
			continue
		}

		listing, err := ParseJSONListing(raw)
		if err != nil {
			g.log.Warn().Err(err).Str("style", style).Msg("skipping unparsable listing")
			continue
		}
		listings = append(listings, listing)

		// Respect external rate limits between calls.
		if i < n-1 {
			if err := g.sleep(ctx, g.cfg.InterCallDelay); err != nil {
				break
			}
		}
	}

	if len(listings) == 0 {
		g.log.Warn().Msg("generator produced no usable listings, falling back to seed set")
		return store.Seed(), true
	}

	g.log.Info().Int("count", len(listings)).Msg("generated listings")
	return listings, false
}

// listingPayload mirrors the extended JSON generation schema.
type listingPayload struct {
	Neighborhood            string      `json:"neighborhood"`
	Price                   float64     `json:"price"`
	Bedrooms                int         `json:"bedrooms"`
	Bathrooms               float64     `json:"bathrooms"`
	HouseSize               float64     `json:"houseSize"`
	Description             string      `json:"description"`
	NeighborhoodDescription string      `json:"neighborhoodDescription"`
	Features                []string    `json:"features"`
	YearBuilt               int         `json:"yearBuilt"`
	PropertyType            string      `json:"propertyType"`
	LotSize                 interface{} `json:"lotSize"`
	Amenities               []string    `json:"amenities"`
	ParkingType             string      `json:"parkingType"`
	SchoolDistrict          string      `json:"schoolDistrict"`
}

// ParseJSONListing parses the extended JSON listing shape. Returns a
// *ParseError when the payload does not conform.
func ParseJSONListing(raw string) (model.Listing, error) {
	var payload listingPayload
	if err := utils.ParseAIJSON(raw, &payload); err != nil {
		return model.Listing{}, &ParseError{Reason: err.Error(), Raw: raw}
	}

	listing := model.Listing{
		ID:                      uuid.NewString(),
		Neighborhood:            strings.TrimSpace(payload.Neighborhood),
		Price:                   int(payload.Price),
		Sqft:                    int(payload.HouseSize),
		Bedrooms:                payload.Bedrooms,
		Bathrooms:               payload.Bathrooms,
		YearBuilt:               payload.YearBuilt,
		PropertyType:            strings.TrimSpace(payload.PropertyType),
		Description:             strings.TrimSpace(payload.Description),
		NeighborhoodDescription: strings.TrimSpace(payload.NeighborhoodDescription),
		Features:                payload.Features,
		Amenities:               payload.Amenities,
		LotSize:                 stringifyLotSize(payload.LotSize),
		ParkingType:             strings.TrimSpace(payload.ParkingType),
		SchoolDistrict:          strings.TrimSpace(payload.SchoolDistrict),
	}

	if err := listing.Validate(); err != nil {
		return model.Listing{}, &ParseError{Reason: err.Error(), Raw: raw}
	}
	return listing, nil
}

// ParseKeyValueListing parses the minimal "Key: value" line format:
// Neighborhood, Price, Bedrooms, Bathrooms, House Size, Description,
// Neighborhood Description.
func ParseKeyValueListing(raw string) (model.Listing, error) {
	fields := make(map[string]string)
	for _, line := range strings.Split(raw, "\n") {
		if !strings.Contains(line, ":") {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key != "" && value != "" {
			fields[key] = value
		}
	}

	required := []string{"Neighborhood", "Price", "Bedrooms", "Bathrooms", "House Size", "Description", "Neighborhood Description"}
	for _, key := range required {
		if fields[key] == "" {
			return model.Listing{}, &ParseError{Reason: fmt.Sprintf("missing field %q", key), Raw: raw}
		}
	}

	price, err := parseMoney(fields["Price"])
	if err != nil {
		return model.Listing{}, &ParseError{Reason: "bad price: " + err.Error(), Raw: raw}
	}
	bedrooms, err := strconv.Atoi(strings.TrimSpace(fields["Bedrooms"]))
	if err != nil {
		return model.Listing{}, &ParseError{Reason: "bad bedrooms: " + err.Error(), Raw: raw}
	}
	bathrooms, err := strconv.ParseFloat(strings.TrimSpace(fields["Bathrooms"]), 64)
	if err != nil {
		return model.Listing{}, &ParseError{Reason: "bad bathrooms: " + err.Error(), Raw: raw}
	}
	sqft, err := parseMoney(fields["House Size"])
	if err != nil {
		return model.Listing{}, &ParseError{Reason: "bad house size: " + err.Error(), Raw: raw}
	}

	listing := model.Listing{
		ID:                      uuid.NewString(),
		Neighborhood:            fields["Neighborhood"],
		Price:                   price,
		Sqft:                    sqft,
		Bedrooms:                bedrooms,
		Bathrooms:               bathrooms,
		Description:             fields["Description"],
		NeighborhoodDescription: fields["Neighborhood Description"],
	}

	if err := listing.Validate(); err != nil {
		return model.Listing{}, &ParseError{Reason: err.Error(), Raw: raw}
	}
	return listing, nil
}

// parseMoney strips currency formatting ("$425,000", "2,100 sqft") down to
// the leading integer.
func parseMoney(s string) (int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if i := strings.IndexFunc(s, func(r rune) bool { return r != '.' && (r < '0' || r > '9') }); i > 0 {
		s = s[:i]
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func stringifyLotSize(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// sleepCtx pauses for d unless the context is cancelled first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
