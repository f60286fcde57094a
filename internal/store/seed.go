package store

import "homematch/internal/model"

// Seed returns the built-in listing set. It doubles as the fallback when the
// external generator is unavailable, so the pipeline always has data to
// match against.
func Seed() []model.Listing {
	return []model.Listing{
		{
			ID:           "L1",
			Neighborhood: "Riverside Heights",
			Price:        750000,
			Sqft:         2400,
			Bedrooms:     4,
			Bathrooms:    2.5,
			YearBuilt:    2008,
			PropertyType: "Single Family Home",
			Description: "Sun-filled four bedroom home with a modern kitchen, dedicated home office, " +
				"and generous storage space throughout. Hardwood floors, high-speed internet wiring, " +
				"and a landscaped backyard with covered patio for outdoor living.",
			NeighborhoodDescription: "Riverside Heights is a walkable neighborhood with tree-lined " +
				"quiet streets, highly rated schools, and parks along the water.",
			Features:       []string{"modern kitchen", "home office", "hardwood floors", "backyard", "two-car garage"},
			Amenities:      []string{"parks", "farmers market", "bike trails"},
			LotSize:        "0.25 acres",
			ParkingType:    "garage",
			SchoolDistrict: "Riverside Unified",
		},
		{
			ID:           "L2",
			Neighborhood: "Oak Hollow",
			Price:        620000,
			Sqft:         1500,
			Bedrooms:     3,
			Bathrooms:    2,
			YearBuilt:    1996,
			PropertyType: "Single Family Home",
			Description: "Well-kept three bedroom starter home with an updated kitchen, fenced yard, " +
				"and a converted garage workshop. Fresh paint and new carpet throughout.",
			NeighborhoodDescription: "Oak Hollow is a friendly suburban pocket with community " +
				"playgrounds and an easy commute to the tech corridor.",
			Features:       []string{"updated kitchen", "fenced yard", "workshop"},
			Amenities:      []string{"playground", "community pool"},
			LotSize:        "0.18 acres",
			ParkingType:    "driveway",
			SchoolDistrict: "Oak Hollow District",
		},
		{
			ID:           "L3",
			Neighborhood: "Maple Grove",
			Price:        950000,
			Sqft:         2600,
			Bedrooms:     4,
			Bathrooms:    3,
			YearBuilt:    2015,
			PropertyType: "Single Family Home",
			Description: "Contemporary four bedroom with open floor plan, chef's kitchen with island, " +
				"energy-efficient appliances, and abundant natural light from floor-to-ceiling windows.",
			NeighborhoodDescription: "Maple Grove offers award-winning schools, weekend farmers " +
				"markets, and quick freeway access for commuters.",
			Features:       []string{"chef's kitchen", "open floor plan", "energy-efficient appliances", "smart thermostat"},
			Amenities:      []string{"farmers market", "dog park"},
			LotSize:        "0.2 acres",
			ParkingType:    "garage",
			SchoolDistrict: "Maple Grove Schools",
		},
		{
			ID:           "L4",
			Neighborhood: "Riverside Glen",
			Price:        890000,
			Sqft:         2100,
			Bedrooms:     3,
			Bathrooms:    2,
			YearBuilt:    2001,
			PropertyType: "Townhouse",
			Description: "End-unit townhouse with a private deck, vaulted ceilings, and a flexible " +
				"loft space ideal for a home office. Attached garage with extra storage space.",
			NeighborhoodDescription: "Riverside Glen sits along the greenbelt with jogging paths, " +
				"a quiet street grid, and cafes within walking distance.",
			Features:       []string{"private deck", "vaulted ceilings", "loft", "attached garage"},
			Amenities:      []string{"greenbelt trails", "cafes"},
			LotSize:        "2100 sqft",
			ParkingType:    "garage",
			SchoolDistrict: "Riverside Unified",
		},
		{
			ID:           "L5",
			Neighborhood: "Downtown Arts District",
			Price:        1250000,
			Sqft:         1100,
			Bedrooms:     1,
			Bathrooms:    1,
			YearBuilt:    2019,
			PropertyType: "Condo",
			Description: "Industrial-chic loft with exposed brick, polished concrete floors, and a " +
				"building rooftop lounge. Floor-to-ceiling windows frame the skyline.",
			NeighborhoodDescription: "The Arts District buzzes with galleries, late-night eateries, " +
				"and light-rail access at the corner.",
			Features:       []string{"exposed brick", "concrete floors", "floor-to-ceiling windows"},
			Amenities:      []string{"rooftop lounge", "concierge", "gym"},
			LotSize:        "1100 sqft",
			ParkingType:    "assigned space",
			SchoolDistrict: "Metro Central",
		},
		{
			ID:           "L6",
			Neighborhood: "Cedar Park",
			Price:        780000,
			Sqft:         2050,
			Bedrooms:     3,
			Bathrooms:    2.5,
			YearBuilt:    2012,
			PropertyType: "Single Family Home",
			Description: "Craftsman-style three bedroom with a wraparound porch, good natural light, " +
				"built-in bookshelves, and a detached studio with high-speed internet, perfect for " +
				"anyone who works from home.",
			NeighborhoodDescription: "Cedar Park is known for its canopy streets, neighborhood " +
				"book swaps, and a Saturday market two blocks away.",
			Features:       []string{"wraparound porch", "built-in bookshelves", "detached studio", "garden beds"},
			Amenities:      []string{"saturday market", "library", "parks"},
			LotSize:        "0.22 acres",
			ParkingType:    "carport",
			SchoolDistrict: "Cedar Park ISD",
		},
		{
			ID:           "L7",
			Neighborhood: "Hillcrest Estates",
			Price:        1600000,
			Sqft:         3800,
			Bedrooms:     5,
			Bathrooms:    4,
			YearBuilt:    2005,
			PropertyType: "Single Family Home",
			Description: "Expansive five bedroom estate with a three-car garage, home theater, " +
				"wine cellar, and a resort-style pool overlooking the valley.",
			NeighborhoodDescription: "Hillcrest Estates is a gated enclave with private security " +
				"and panoramic valley views.",
			Features:       []string{"home theater", "wine cellar", "pool", "three-car garage"},
			Amenities:      []string{"gated entrance", "clubhouse", "tennis courts"},
			LotSize:        "0.6 acres",
			ParkingType:    "garage",
			SchoolDistrict: "Hillcrest Academy Zone",
		},
		{
			ID:           "L8",
			Neighborhood: "Willow Creek",
			Price:        450000,
			Sqft:         1350,
			Bedrooms:     2,
			Bathrooms:    1,
			YearBuilt:    1978,
			PropertyType: "Cottage",
			Description: "Charming two bedroom cottage with original hardwood floors, a cozy " +
				"wood-burning fireplace, and a sunny breakfast nook.",
			NeighborhoodDescription: "Willow Creek keeps a small-town feel with porch-lined " +
				"streets and a creekside walking loop.",
			Features:       []string{"hardwood floors", "fireplace", "breakfast nook"},
			Amenities:      []string{"walking loop", "corner store"},
			LotSize:        "0.15 acres",
			ParkingType:    "street parking",
			SchoolDistrict: "Willow Creek Local",
		},
		{
			ID:           "L9",
			Neighborhood: "Riverside Landing",
			Price:        840000,
			Sqft:         1700,
			Bedrooms:     2,
			Bathrooms:    2,
			YearBuilt:    2017,
			PropertyType: "Condo",
			Description: "Modern two bedroom condo with water views, quartz counters, and a " +
				"private balcony. Secure building with bike storage.",
			NeighborhoodDescription: "Riverside Landing puts the waterfront esplanade, ferry " +
				"dock, and weekend night market at your doorstep.",
			Features:       []string{"water views", "quartz counters", "balcony"},
			Amenities:      []string{"bike storage", "secure entry", "esplanade"},
			LotSize:        "1700 sqft",
			ParkingType:    "underground garage",
			SchoolDistrict: "Riverside Unified",
		},
		{
			ID:           "L10",
			Neighborhood: "Harbor Pointe",
			Price:        1900000,
			Sqft:         1800,
			Bedrooms:     2,
			Bathrooms:    2.5,
			YearBuilt:    2021,
			PropertyType: "Condo",
			Description: "Penthouse residence with a private elevator landing, custom millwork, " +
				"and a terrace built for entertaining above the marina.",
			NeighborhoodDescription: "Harbor Pointe is the city's marina district, with yacht " +
				"slips, fine dining, and a seasonal concert lawn.",
			Features:       []string{"private elevator", "custom millwork", "terrace"},
			Amenities:      []string{"marina", "valet", "concert lawn"},
			LotSize:        "1800 sqft",
			ParkingType:    "valet garage",
			SchoolDistrict: "Metro Central",
		},
	}
}
