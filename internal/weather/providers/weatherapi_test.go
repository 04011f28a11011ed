package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/i474232898/weather-favorites/internal/weather"
)

const samplePayload = `{
  "location": {"name": "Recife", "region": "Pernambuco", "country": "Brazil", "lat": -8.05, "lon": -34.9, "localtime": "2024-01-01 10:05"},
  "current": {
    "temp_c": 29.1, "feelslike_c": 33.0, "last_updated": "2024-01-01 10:00",
    "condition": {"text": "Partly cloudy", "icon": "//cdn/116.png"},
    "wind_kph": 18.0, "is_day": 1, "wind_dir": "ESE",
    "air_quality": {"us-epa-index": 2}, "humidity": 70
  },
  "forecast": {"forecastday": [
    {"date": "2024-01-01", "day": {"avgtemp_c": 28.0, "condition": {"text": "Sunny", "icon": "//cdn/113.png"}},
     "hour": [{"time": "2024-01-01 09:00", "temp_c": 27.5, "condition": {"text": "Sunny", "icon": "//cdn/113.png"}}]}
  ]}
}`

func TestWeatherAPIFetch(t *testing.T) {
	var gotQuery atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.Query())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	p := NewWeatherAPIProvider(srv.Client(), "secret", "pt").WithBaseURL(srv.URL)
	data, err := p.Fetch(context.Background(), weather.Query{City: "Recife", Country: "Brazil"}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := gotQuery.Load().(url.Values)
	if q.Get("q") != "Recife,Brazil" || q.Get("days") != "3" || q.Get("aqi") != "yes" || q.Get("lang") != "pt" || q.Get("key") != "secret" {
		t.Fatalf("unexpected query: %v", q)
	}

	if data.Location.Name != "Recife" || data.Current.WindDir != "ESE" || data.Current.AirQuality.USEPAIndex != 2 {
		t.Fatalf("unexpected payload: %+v", data)
	}
	if len(data.Forecast.ForecastDay) != 1 || data.Forecast.ForecastDay[0].Hour[0].Condition == nil {
		t.Fatalf("unexpected forecast: %+v", data.Forecast)
	}
}

func TestWeatherAPIRequiresKey(t *testing.T) {
	p := NewWeatherAPIProvider(http.DefaultClient, "", "")
	if _, err := p.Fetch(context.Background(), weather.Query{City: "Recife"}, 1); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestWeatherAPIStatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"rate limited", http.StatusTooManyRequests, errRateLimited},
		{"server error", http.StatusBadGateway, errServerError},
		{"unauthorized", http.StatusUnauthorized, errUnexpected},
		{"unknown city", http.StatusBadRequest, weather.ErrLocationNotFound},
		{"not found", http.StatusNotFound, weather.ErrLocationNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			p := NewWeatherAPIProvider(srv.Client(), "k", "").WithBaseURL(srv.URL)
			_, err := p.Fetch(context.Background(), weather.Query{City: "x"}, 1)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestWeatherAPICircuitOpens(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewWeatherAPIProvider(srv.Client(), "k", "").WithBaseURL(srv.URL)
	for i := 0; i < 5; i++ {
		if _, err := p.Fetch(context.Background(), weather.Query{City: "x"}, 1); !errors.Is(err, errServerError) {
			t.Fatalf("attempt %d: expected server error, got %v", i, err)
		}
	}

	_, err := p.Fetch(context.Background(), weather.Query{City: "x"}, 1)
	if !errors.Is(err, errCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}
	if got := calls.Load(); got != 5 {
		t.Fatalf("expected 5 upstream calls, got %d", got)
	}
}

func TestWeatherAPIUnknownCityKeepsCircuitClosed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "Recife" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	p := NewWeatherAPIProvider(srv.Client(), "k", "").WithBaseURL(srv.URL)
	for i := 0; i < 6; i++ {
		if _, err := p.Fetch(context.Background(), weather.Query{City: "Recfie"}, 1); !errors.Is(err, weather.ErrLocationNotFound) {
			t.Fatalf("attempt %d: expected location not found, got %v", i, err)
		}
	}

	data, err := p.Fetch(context.Background(), weather.Query{City: "Recife"}, 1)
	if err != nil {
		t.Fatalf("expected closed circuit after unknown cities, got %v", err)
	}
	if data.Location.Name != "Recife" {
		t.Fatalf("unexpected payload: %+v", data.Location)
	}
}

func TestWeatherAPIHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	p := NewWeatherAPIProvider(srv.Client(), "k", "").WithBaseURL(srv.URL)
	if _, err := p.Fetch(ctx, weather.Query{City: "x"}, 1); err == nil {
		t.Fatal("expected context error")
	}
}

func TestGeocoderWithoutKey(t *testing.T) {
	g := NewGoogleGeocoder("")
	if _, _, err := g.Locate(context.Background(), "Recife", "Brazil"); !errors.Is(err, errNoGeocoderKey) {
		t.Fatalf("expected errNoGeocoderKey, got %v", err)
	}
}
