package weather

import (
	"context"

	"github.com/i474232898/weather-favorites/internal/favorites"
)

// Provider abstracts the weather data source (WeatherAPI.com in production).
type Provider interface {
	Name() string
	// Fetch returns current conditions and a forecast of days days (>= 1).
	Fetch(ctx context.Context, q Query, days int) (WeatherData, error)
}

// Geocoder resolves coordinates for a snapshot that was saved without them.
type Geocoder interface {
	Locate(ctx context.Context, city, country string) (lat, lon float64, err error)
}

// FavoritesStore is the contract the display service needs from the
// favorites state.
type FavoritesStore interface {
	ToggleFavoriteCity(snapshot favorites.FavoriteCitySnapshot) bool
	IsCityFavorite(city string) bool
	FavoriteCities() []favorites.FavoriteCitySnapshot
	Len() int
}

var _ FavoritesStore = (*favorites.Store)(nil)
