// Package catalog holds the static configuration data the safety services are
// constructed with: the predefined zone catalog, the location-name coordinate
// table, and the per-location safety profiles. All of it is fixed at process
// start.
package catalog

import "github.com/Suraj8267/Tourist/module/core/domain"

// Zones returns the predefined safety zone catalog. Order is significant for
// violation reporting and is preserved by the evaluator.
func Zones() []domain.Zone {
	return []domain.Zone{
		{
			ZoneID:       "delhi_central",
			Name:         "Central Delhi - Tourist Areas",
			Center:       domain.Coordinate{Lat: 28.6139, Lng: 77.2090},
			RadiusMeters: 2000,
			ZoneType:     domain.TierSafe,
			Description:  "Main tourist areas including India Gate, Red Fort",
		},
		{
			ZoneID:       "delhi_airport",
			Name:         "Delhi Airport Area",
			Center:       domain.Coordinate{Lat: 28.5562, Lng: 77.1000},
			RadiusMeters: 1500,
			ZoneType:     domain.TierSafe,
			Description:  "Airport and surrounding commercial areas",
		},
		{
			ZoneID:       "mumbai_central",
			Name:         "Mumbai Central Business District",
			Center:       domain.Coordinate{Lat: 19.0760, Lng: 72.8777},
			RadiusMeters: 2500,
			ZoneType:     domain.TierSafe,
			Description:  "Main business and tourist areas",
		},
		{
			ZoneID:       "goa_north_beaches",
			Name:         "North Goa Beaches",
			Center:       domain.Coordinate{Lat: 15.2993, Lng: 74.1240},
			RadiusMeters: 3000,
			ZoneType:     domain.TierSafe,
			Description:  "Popular beach areas with good infrastructure",
		},
		{
			ZoneID:       "delhi_danger_1",
			Name:         "High Crime Area - East Delhi",
			Center:       domain.Coordinate{Lat: 28.6500, Lng: 77.3000},
			RadiusMeters: 1000,
			ZoneType:     domain.TierDanger,
			Description:  "Area with higher crime rates, avoid especially at night",
		},
		{
			ZoneID:       "mumbai_warning_1",
			Name:         "Industrial Zone - Mumbai",
			Center:       domain.Coordinate{Lat: 19.0500, Lng: 72.9000},
			RadiusMeters: 800,
			ZoneType:     domain.TierWarning,
			Description:  "Industrial area with heavy traffic and pollution",
		},
		{
			ZoneID:       "tokyo_safe_1",
			Name:         "Tokyo Central Tourist Zone",
			Center:       domain.Coordinate{Lat: 35.6762, Lng: 139.6503},
			RadiusMeters: 2000,
			ZoneType:     domain.TierSafe,
			Description:  "Central Tokyo tourist areas",
		},
	}
}

// DefaultCoordinate is the fallback for itinerary location names missing from
// the coordinate table. Approximation: unresolved names map to central Delhi.
var DefaultCoordinate = domain.Coordinate{Lat: 28.6139, Lng: 77.2090}

// LocationCoordinates maps canonical (title-cased) location names to reference
// coordinates for route-deviation checks.
func LocationCoordinates() map[string]domain.Coordinate {
	return map[string]domain.Coordinate{
		"Delhi":     {Lat: 28.6139, Lng: 77.2090},
		"Mumbai":    {Lat: 19.0760, Lng: 72.8777},
		"Goa":       {Lat: 15.2993, Lng: 74.1240},
		"Rajasthan": {Lat: 26.9124, Lng: 75.7873},
		"Kerala":    {Lat: 9.9312, Lng: 76.2673},
		"Kolkata":   {Lat: 22.5726, Lng: 88.3639},
		"Tokyo":     {Lat: 35.6762, Lng: 139.6503},
		"London":    {Lat: 51.5074, Lng: -0.1278},
		"Paris":     {Lat: 48.8566, Lng: 2.3522},
		"New York":  {Lat: 40.7128, Lng: -74.0060},
		"Bangkok":   {Lat: 13.7563, Lng: 100.5018},
		"Baghi":     {Lat: 30.1204, Lng: 78.2706},
		"Thdc-Dam":  {Lat: 30.1464, Lng: 78.4322},
	}
}

// SafetyProfile is the static safety assessment for a location.
type SafetyProfile struct {
	Score   int      `json:"score"`
	Factors []string `json:"factors"`
	Tips    []string `json:"tips"`
}

// DefaultProfileKey indexes the fallback profile used for unknown locations.
const DefaultProfileKey = "default"

// SafetyProfiles maps canonical location names to their safety profiles.
func SafetyProfiles() map[string]SafetyProfile {
	profiles := map[string]SafetyProfile{
		"Delhi":     {Score: 75, Factors: []string{"Heavy traffic", "Air pollution", "Crowded areas"}, Tips: []string{"Avoid isolated areas at night", "Use registered taxis"}},
		"Mumbai":    {Score: 80, Factors: []string{"Monsoon flooding", "Dense population"}, Tips: []string{"Be cautious during monsoon", "Keep valuables secure"}},
		"Baghi":     {Score: 90, Factors: []string{"Tourist-friendly", "Good infrastructure"}, Tips: []string{"Beach safety", "Licensed water sports only"}},
		"Rajasthan": {Score: 85, Factors: []string{"Desert climate", "Cultural sites"}, Tips: []string{"Stay hydrated", "Respect local customs"}},
		"Kerala":    {Score: 88, Factors: []string{"Natural disasters", "Monsoon season"}, Tips: []string{"Check weather conditions", "Use reputable tour operators"}},
		"Thdc-Dam":  {Score: 78, Factors: []string{"Traffic congestion", "Old infrastructure"}, Tips: []string{"Use metro when possible", "Be aware of surroundings"}},
		"Tokyo":     {Score: 95, Factors: []string{"Very safe", "Natural disasters possible"}, Tips: []string{"Learn basic earthquake safety", "Respect local etiquette"}},
		"London":    {Score: 92, Factors: []string{"Generally safe", "Weather changes"}, Tips: []string{"Be aware in tourist areas", "Carry umbrella"}},
		"Paris":     {Score: 88, Factors: []string{"Pickpocketing in tourist areas"}, Tips: []string{"Secure belongings", "Avoid crowded metro during rush hour"}},
		"New York":  {Score: 85, Factors: []string{"Busy traffic", "Varied neighborhoods"}, Tips: []string{"Stay in well-lit areas", "Use official taxis"}},
		"Bangkok":   {Score: 82, Factors: []string{"Traffic congestion", "Monsoon flooding"}, Tips: []string{"Use BTS/MRT when possible", "Stay hydrated"}},
	}
	profiles[DefaultProfileKey] = SafetyProfile{Score: 90, Factors: []string{"Unknown area"}, Tips: []string{"Research local conditions", "Stay vigilant"}}
	return profiles
}
