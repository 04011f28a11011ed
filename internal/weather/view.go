package weather

import (
	"github.com/i474232898/weather-favorites/internal/favorites"
	"github.com/i474232898/weather-favorites/internal/format"
	"github.com/i474232898/weather-favorites/internal/translate"
)

// CurrentView is the current conditions with every coded or raw field
// already rendered for display.
type CurrentView struct {
	City          string  `json:"city"`
	Region        string  `json:"region,omitempty"`
	Country       string  `json:"country,omitempty"`
	TempC         float64 `json:"tempC"`
	FeelsLikeC    float64 `json:"feelsLikeC"`
	Condition     string  `json:"condition"`
	Icon          string  `json:"icon,omitempty"`
	IsDay         bool    `json:"isDay"`
	WindKph       float64 `json:"windKph"`
	WindDirection string  `json:"windDirection"`
	Humidity      int     `json:"humidity"`
	AirQuality    string  `json:"airQuality"`
	LastUpdated   string  `json:"lastUpdated"`
	Favorite      bool    `json:"favorite"`
}

// HourView is one forecast hour.
type HourView struct {
	Hour      string  `json:"hour"`
	TempC     float64 `json:"tempC"`
	Condition string  `json:"condition,omitempty"`
	Icon      string  `json:"icon,omitempty"`
}

// DayView is one forecast day.
type DayView struct {
	Date      string     `json:"date"`
	Label     string     `json:"label"`
	AvgTempC  float64    `json:"avgTempC"`
	Condition string     `json:"condition"`
	Icon      string     `json:"icon,omitempty"`
	Hours     []HourView `json:"hours"`
}

// Presenter renders provider payloads with one locale's formatter and
// translator.
type Presenter struct {
	format    *format.Formatter
	translate *translate.Translator
}

// NewPresenter returns a Presenter.
func NewPresenter(f *format.Formatter, t *translate.Translator) *Presenter {
	return &Presenter{format: f, translate: t}
}

// Formatter returns the presenter's formatter.
func (p *Presenter) Formatter() *format.Formatter { return p.format }

// Translator returns the presenter's translator.
func (p *Presenter) Translator() *translate.Translator { return p.translate }

// Current renders the current conditions. The age of the reading is measured
// against the location's own local time when the provider sent it, since
// both timestamps share that zone; otherwise against the local clock.
func (p *Presenter) Current(data WeatherData) CurrentView {
	c := data.Current

	lastUpdated := p.format.LastUpdatedNow(c.LastUpdated)
	if data.Location.Localtime != "" {
		lastUpdated = p.format.LastUpdated(c.LastUpdated, data.Location.Localtime)
	}

	return CurrentView{
		City:          data.Location.Name,
		Region:        data.Location.Region,
		Country:       data.Location.Country,
		TempC:         c.TempC,
		FeelsLikeC:    c.FeelsLikeC,
		Condition:     c.Condition.Text,
		Icon:          c.Condition.Icon,
		IsDay:         c.IsDay == 1,
		WindKph:       c.WindKph,
		WindDirection: p.translate.WindDirection(c.WindDir),
		Humidity:      c.Humidity,
		AirQuality:    p.translate.AirQuality(c.AirQuality.USEPAIndex),
		LastUpdated:   lastUpdated,
	}
}

// Forecast renders every forecast day with its hours.
func (p *Presenter) Forecast(data WeatherData) []DayView {
	days := make([]DayView, 0, len(data.Forecast.ForecastDay))
	for _, d := range data.Forecast.ForecastDay {
		hours := make([]HourView, 0, len(d.Hour))
		for _, h := range d.Hour {
			hv := HourView{
				Hour:  p.format.Hour(h.Time),
				TempC: h.TempC,
			}
			if h.Condition != nil {
				hv.Condition = h.Condition.Text
				hv.Icon = h.Condition.Icon
			}
			hours = append(hours, hv)
		}
		days = append(days, DayView{
			Date:      d.Date,
			Label:     p.format.Date(d.Date),
			AvgTempC:  d.Day.AvgTempC,
			Condition: d.Day.Condition.Text,
			Icon:      d.Day.Condition.Icon,
			Hours:     hours,
		})
	}
	return days
}

// SnapshotFrom builds the favorites snapshot for a payload: the resolved
// place's identity plus its current temperature.
func SnapshotFrom(data WeatherData) favorites.FavoriteCitySnapshot {
	lat, lon, temp := data.Location.Lat, data.Location.Lon, data.Current.TempC
	return favorites.FavoriteCitySnapshot{
		City:    data.Location.Name,
		Region:  data.Location.Region,
		Country: data.Location.Country,
		Lat:     &lat,
		Lon:     &lon,
		TempC:   &temp,
	}
}
