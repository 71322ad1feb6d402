package domain

// CustomLocation is a lat/lon point with a radius in kilometres.
type CustomLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"`
}

// GeoLocations describes where an ad set is delivered. Either Countries or
// CustomLocations is populated, never both.
type GeoLocations struct {
	Countries       []string         `json:"countries,omitempty"`
	CustomLocations []CustomLocation `json:"custom_locations,omitempty"`
}

// Targeting describes who should see a campaign.
type Targeting struct {
	GeoLocations GeoLocations `json:"geo_locations"`
	Genders      []int        `json:"genders"` // 1 = male, 2 = female
	AgeMin       int          `json:"age_min"`
	AgeMax       int          `json:"age_max"`
	// AdvantageAudience toggles Facebook's audience expansion. Always 0
	// for imported campaigns so delivery matches the spreadsheet.
	AdvantageAudience int `json:"advantage_audience"`
}
