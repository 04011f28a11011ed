package weather

import (
	"fmt"
	"strings"
)

// Query identifies the place to fetch weather for. City is required unless
// both coordinates are given.
type Query struct {
	City    string   `json:"city"`
	Country string   `json:"country,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lon     *float64 `json:"lon,omitempty"`
}

// Key returns the provider "q" value: "lat,lon" when coordinates are set,
// otherwise "city" or "city,country".
func (q Query) Key() string {
	if q.Lat != nil && q.Lon != nil {
		return fmt.Sprintf("%f,%f", *q.Lat, *q.Lon)
	}
	if q.Country != "" {
		return q.City + "," + q.Country
	}
	return q.City
}

// Valid reports whether the query names a place.
func (q Query) Valid() bool {
	return strings.TrimSpace(q.City) != "" || (q.Lat != nil && q.Lon != nil)
}

// Condition is the provider's condition text and icon URL.
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// Location is the place the provider resolved the query to. Localtime is
// the place's wall-clock time when the payload was produced.
type Location struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Localtime string  `json:"localtime"`
}

// AirQuality carries the US EPA index (1..6) reported with aqi=yes.
type AirQuality struct {
	USEPAIndex int `json:"us-epa-index"`
}

// CurrentWeather mirrors the provider's "current" object.
type CurrentWeather struct {
	TempC       float64    `json:"temp_c"`
	FeelsLikeC  float64    `json:"feelslike_c"`
	LastUpdated string     `json:"last_updated"`
	Condition   Condition  `json:"condition"`
	WindKph     float64    `json:"wind_kph"`
	IsDay       int        `json:"is_day"`
	WindDir     string     `json:"wind_dir"`
	AirQuality  AirQuality `json:"air_quality"`
	Humidity    int        `json:"humidity"`
}

// ForecastHour is one hourly entry of a forecast day.
type ForecastHour struct {
	Time      string     `json:"time"`
	TempC     float64    `json:"temp_c"`
	Condition *Condition `json:"condition,omitempty"`
}

// DaySummary is the whole-day aggregate of a forecast day.
type DaySummary struct {
	AvgTempC  float64   `json:"avgtemp_c"`
	Condition Condition `json:"condition"`
}

// ForecastDay is one day of a forecast.
type ForecastDay struct {
	Date string         `json:"date"`
	Day  DaySummary     `json:"day"`
	Hour []ForecastHour `json:"hour"`
}

// Forecast holds the forecast days in ascending date order.
type Forecast struct {
	ForecastDay []ForecastDay `json:"forecastday"`
}

// WeatherData is the provider payload the display layer reads.
type WeatherData struct {
	Location Location       `json:"location"`
	Current  CurrentWeather `json:"current"`
	Forecast Forecast       `json:"forecast"`
}
