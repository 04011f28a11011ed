package providers

import (
	"context"
	"errors"

	"github.com/kelvins/geocoder"
)

var errNoGeocoderKey = errors.New("geocoder api key is not configured")

// GoogleGeocoder resolves city coordinates through the Google Geocoding API.
type GoogleGeocoder struct{}

// NewGoogleGeocoder configures the geocoding client with apiKey. The
// underlying client keeps the key in a package variable, so one key serves
// the whole process.
func NewGoogleGeocoder(apiKey string) *GoogleGeocoder {
	geocoder.ApiKey = apiKey
	return &GoogleGeocoder{}
}

// Locate returns the coordinates of city (optionally within country). The
// client takes no context; ctx is only checked before the call.
func (g *GoogleGeocoder) Locate(ctx context.Context, city, country string) (float64, float64, error) {
	if geocoder.ApiKey == "" {
		return 0, 0, errNoGeocoderKey
	}
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}

	loc, err := geocoder.Geocoding(geocoder.Address{
		City:    city,
		Country: country,
	})
	if err != nil {
		return 0, 0, err
	}
	return loc.Latitude, loc.Longitude, nil
}
