package favorites

// FavoriteCitySnapshot is a city's identity plus the last-known weather a
// favorites list needs to render without a new provider call. City is the
// identity key; every other field is optional and stored as given.
type FavoriteCitySnapshot struct {
	City    string   `json:"city"`
	Region  string   `json:"region,omitempty"`
	Country string   `json:"country,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lon     *float64 `json:"lon,omitempty"`
	TempC   *float64 `json:"temp_c,omitempty"`
}

// HasCoordinates reports whether both Lat and Lon are set.
func (s FavoriteCitySnapshot) HasCoordinates() bool {
	return s.Lat != nil && s.Lon != nil
}

func (s FavoriteCitySnapshot) clone() FavoriteCitySnapshot {
	c := s
	c.Lat = cloneFloat(s.Lat)
	c.Lon = cloneFloat(s.Lon)
	c.TempC = cloneFloat(s.TempC)
	return c
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// FavoritesState is the serializable form of the store.
type FavoritesState struct {
	FavoriteCities []FavoriteCitySnapshot `json:"favoriteCities"`
}
