package weather

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/i474232898/weather-favorites/internal/favorites"
	"github.com/i474232898/weather-favorites/internal/metrics"
)

// MaxForecastDays is the longest forecast the provider serves.
const MaxForecastDays = 7

var (
	// ErrInvalidQuery is returned when a query names neither a city nor coordinates.
	ErrInvalidQuery = errors.New("city or coordinates are required")
	// ErrNoProvider is returned when weather is requested without a provider.
	ErrNoProvider = errors.New("no weather provider configured")
	// ErrInvalidDays is returned for forecast lengths outside 1..MaxForecastDays.
	ErrInvalidDays = fmt.Errorf("days must be between 1 and %d", MaxForecastDays)
	// ErrLocationNotFound is returned when the provider rejects the query
	// itself, e.g. an unknown city. It says nothing about provider health.
	ErrLocationNotFound = errors.New("location not found")
)

// Service is what the rendering layer talks to: it fetches weather, renders
// it through the presenter and reads or toggles favorites. The favorites
// store itself never formats anything.
type Service struct {
	favorites FavoritesStore
	provider  Provider
	presenter *Presenter
	geocoder  Geocoder
}

// NewService creates a Service. provider may be nil, in which case only the
// favorites operations work.
func NewService(favs FavoritesStore, provider Provider, presenter *Presenter) *Service {
	return &Service{
		favorites: favs,
		provider:  provider,
		presenter: presenter,
	}
}

// WithGeocoder sets the geocoder used to fill coordinates of new favorites.
func (s *Service) WithGeocoder(g Geocoder) *Service {
	s.geocoder = g
	return s
}

// Presenter returns the presenter used for rendering.
func (s *Service) Presenter() *Presenter {
	return s.presenter
}

// Current fetches and renders the current conditions for q.
func (s *Service) Current(ctx context.Context, q Query) (CurrentView, error) {
	data, err := s.fetch(ctx, q, 1)
	if err != nil {
		return CurrentView{}, err
	}
	view := s.presenter.Current(data)
	view.Favorite = s.favorites.IsCityFavorite(view.City)
	return view, nil
}

// Forecast fetches and renders days days of forecast for q.
func (s *Service) Forecast(ctx context.Context, q Query, days int) ([]DayView, error) {
	if days < 1 || days > MaxForecastDays {
		return nil, ErrInvalidDays
	}
	data, err := s.fetch(ctx, q, days)
	if err != nil {
		return nil, err
	}
	view := s.presenter.Forecast(data)
	if len(view) > days {
		view = view[:days]
	}
	return view, nil
}

func (s *Service) fetch(ctx context.Context, q Query, days int) (WeatherData, error) {
	if !q.Valid() {
		return WeatherData{}, ErrInvalidQuery
	}
	if s.provider == nil {
		return WeatherData{}, ErrNoProvider
	}

	log.Printf("DEBUG: fetching weather for %s (%d days) from %s", q.Key(), days, s.provider.Name())
	data, err := s.provider.Fetch(ctx, q, days)
	if err != nil {
		log.Printf("provider %s fetch failed for %s: %v", s.provider.Name(), q.Key(), err)
		return WeatherData{}, fmt.Errorf("fetch weather for %s: %w", q.Key(), err)
	}
	return data, nil
}

// Favorites returns the favorites in insertion order.
func (s *Service) Favorites() []favorites.FavoriteCitySnapshot {
	return s.favorites.FavoriteCities()
}

// IsFavorite reports whether city is a favorite.
func (s *Service) IsFavorite(city string) bool {
	return s.favorites.IsCityFavorite(city)
}

// ToggleFavorite toggles snap.City and reports whether it is a favorite
// afterwards. A city being added is first completed with whatever the
// provider and geocoder can supply for missing fields; lookup failures only
// get logged and the snapshot is stored as given.
func (s *Service) ToggleFavorite(ctx context.Context, snap favorites.FavoriteCitySnapshot) bool {
	if !s.favorites.IsCityFavorite(snap.City) {
		snap = s.complete(ctx, snap)
	}

	added := s.favorites.ToggleFavoriteCity(snap)
	metrics.ObserveToggle(added, s.favorites.Len())

	if added {
		log.Printf("favorites: added %q", snap.City)
	} else {
		log.Printf("favorites: removed %q", snap.City)
	}
	return added
}

func (s *Service) complete(ctx context.Context, snap favorites.FavoriteCitySnapshot) favorites.FavoriteCitySnapshot {
	if snap.TempC == nil && s.provider != nil && snap.City != "" {
		data, err := s.fetch(ctx, Query{City: snap.City, Country: snap.Country, Lat: snap.Lat, Lon: snap.Lon}, 1)
		if err != nil {
			log.Printf("INFO: favorites: storing %q without current weather: %v", snap.City, err)
		} else {
			snap = merge(snap, SnapshotFrom(data))
		}
	}

	if !snap.HasCoordinates() && s.geocoder != nil && snap.City != "" {
		lat, lon, err := s.geocoder.Locate(ctx, snap.City, snap.Country)
		if err != nil {
			log.Printf("INFO: favorites: storing %q without coordinates: %v", snap.City, err)
		} else {
			snap.Lat, snap.Lon = &lat, &lon
		}
	}
	return snap
}

// merge fills the empty fields of snap from fetched. City is never replaced:
// it is the identity the caller toggles by.
func merge(snap, fetched favorites.FavoriteCitySnapshot) favorites.FavoriteCitySnapshot {
	if snap.Region == "" {
		snap.Region = fetched.Region
	}
	if snap.Country == "" {
		snap.Country = fetched.Country
	}
	if !snap.HasCoordinates() {
		snap.Lat, snap.Lon = fetched.Lat, fetched.Lon
	}
	if snap.TempC == nil {
		snap.TempC = fetched.TempC
	}
	return snap
}
