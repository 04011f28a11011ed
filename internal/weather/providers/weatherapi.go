package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-favorites/internal/weather"
)

const weatherAPIBaseURL = "https://api.weatherapi.com/v1/forecast.json"

// WeatherAPIProvider implements weather.Provider for WeatherAPI.com.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	lang    string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewWeatherAPIProvider returns a provider for WeatherAPI.com. lang is
// passed through as the provider's condition-text language (may be empty).
func NewWeatherAPIProvider(client *http.Client, apiKey, lang string) *WeatherAPIProvider {
	return &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		baseURL: weatherAPIBaseURL,
		lang:    lang,
		client:  client,
		circuit: newCircuitBreaker("weatherapi"),
	}
}

// WithBaseURL points the provider at another endpoint (tests, proxies).
func (p *WeatherAPIProvider) WithBaseURL(u string) *WeatherAPIProvider {
	p.baseURL = u
	return p
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

func (p *WeatherAPIProvider) Fetch(ctx context.Context, q weather.Query, days int) (weather.WeatherData, error) {
	if p.apiKey == "" {
		return weather.WeatherData{}, fmt.Errorf("weatherapi api key is not configured")
	}
	if days < 1 {
		days = 1
	}

	values := url.Values{}
	values.Set("key", p.apiKey)
	// WeatherAPI uses "q" for location; it accepts "city,country" or "lat,lon".
	values.Set("q", q.Key())
	values.Set("days", strconv.Itoa(days))
	values.Set("aqi", "yes")
	values.Set("alerts", "no")
	if p.lang != "" {
		values.Set("lang", p.lang)
	}

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s?%s", p.baseURL, values.Encode()), nil)
	if err != nil {
		return weather.WeatherData{}, err
	}

	resp, err := doRequest(ctx, p.name, p.client, p.circuit, req)
	if err != nil {
		return weather.WeatherData{}, err
	}
	defer resp.Body.Close()

	var payload weather.WeatherData
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.WeatherData{}, fmt.Errorf("decode weatherapi response: %w", err)
	}
	return payload, nil
}
