// Package translate maps coded weather enumerations to localized labels.
package translate

import "github.com/i474232898/weather-favorites/internal/locale"

// Translator looks labels up in one locale's tables.
type Translator struct {
	loc *locale.Locale
}

// New returns a Translator for l.
func New(l *locale.Locale) *Translator {
	return &Translator{loc: l}
}

// AirQuality labels a US EPA index (1..6). Any other index gets the locale's
// "unknown" label.
func (t *Translator) AirQuality(index int) string {
	if label, ok := t.loc.AirQuality[index]; ok {
		return label
	}
	return t.loc.AirQualityUnknown
}

// WindDirection expands a 16-point compass code ("NNE"). Codes the locale
// does not know are returned unchanged.
func (t *Translator) WindDirection(code string) string {
	if name, ok := t.loc.WindDirections[code]; ok {
		return name
	}
	return code
}

var defaultTranslator = New(locale.PortugueseBR())

// TranslateAirQuality labels index with the default locale.
func TranslateAirQuality(index int) string {
	return defaultTranslator.AirQuality(index)
}

// TranslateWindDirection expands code with the default locale.
func TranslateWindDirection(code string) string {
	return defaultTranslator.WindDirection(code)
}
