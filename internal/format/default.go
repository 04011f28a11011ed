package format

import "github.com/i474232898/weather-favorites/internal/locale"

var defaultFormatter = New(locale.PortugueseBR())

// FormatDate formats a calendar date with the default locale.
func FormatDate(date string) string {
	return defaultFormatter.Date(date)
}

// FormatHour formats a timestamp's hour and minute with the default locale.
func FormatHour(timestamp string) string {
	return defaultFormatter.Hour(timestamp)
}

// FormatLastUpdated renders the elapsed time between lastUpdated and
// referenceTime with the default locale.
func FormatLastUpdated(lastUpdated, referenceTime string) string {
	return defaultFormatter.LastUpdated(lastUpdated, referenceTime)
}

// FormatLastUpdatedNow renders the elapsed time since lastUpdated.
func FormatLastUpdatedNow(lastUpdated string) string {
	return defaultFormatter.LastUpdatedNow(lastUpdated)
}
