// Package format turns raw WeatherAPI date and time fields into display
// strings. Inputs that do not parse are not reported as errors; the
// locale's "Invalid Date" text is returned in place of the formatted value.
package format

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/i474232898/weather-favorites/internal/locale"
)

// ErrUnparseable is returned by the Parse helpers for values in none of the
// accepted layouts.
var ErrUnparseable = errors.New("unparseable date/time")

// Local wall-clock layouts seen in WeatherAPI payloads and client requests.
var localLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Formatter renders dates and times for one locale.
type Formatter struct {
	loc *locale.Locale
	now func() time.Time
}

// New returns a Formatter for l.
func New(l *locale.Locale) *Formatter {
	return &Formatter{loc: l, now: time.Now}
}

// Locale returns the tables the formatter renders with.
func (f *Formatter) Locale() *locale.Locale {
	return f.loc
}

// Date renders a calendar date ("2024-06-12") as "Quarta-feira, 12 Jun".
// The date is pinned to local midnight so no implicit time component can
// shift the weekday.
func (f *Formatter) Date(raw string) string {
	d, err := ParseDate(raw)
	if err != nil {
		return f.loc.InvalidDate
	}
	weekday := f.loc.Capitalize(f.loc.Weekdays[d.Weekday()])
	month := f.loc.Capitalize(f.loc.Months[d.Month()-1])
	return fmt.Sprintf("%s, %d %s", weekday, d.Day(), month)
}

// Hour renders the local hour and minute of a timestamp as "9:05".
func (f *Formatter) Hour(raw string) string {
	t, err := ParseTimestamp(raw)
	if err != nil {
		return f.loc.InvalidDate
	}
	return fmt.Sprintf("%d:%02d", t.Hour(), t.Minute())
}

// LastUpdated describes how long before reference the lastUpdated timestamp
// was taken, in whole minutes. Unparseable input renders the locale's
// InvalidDate text, like Date and Hour, instead of a "NaN minutes" phrase.
func (f *Formatter) LastUpdated(lastUpdated, reference string) string {
	last, err := ParseTimestamp(lastUpdated)
	if err != nil {
		return f.loc.InvalidDate
	}
	ref, err := ParseTimestamp(reference)
	if err != nil {
		return f.loc.InvalidDate
	}
	return f.loc.Elapsed(ElapsedMinutes(last, ref))
}

// LastUpdatedNow is LastUpdated with the current wall-clock time as reference.
func (f *Formatter) LastUpdatedNow(lastUpdated string) string {
	last, err := ParseTimestamp(lastUpdated)
	if err != nil {
		return f.loc.InvalidDate
	}
	return f.loc.Elapsed(ElapsedMinutes(last, f.now()))
}

// ElapsedMinutes is floor((ref - last) / 1m). A last value after ref yields
// a negative count.
func ElapsedMinutes(last, ref time.Time) int {
	return int(math.Floor(ref.Sub(last).Minutes()))
}

// ParseDate parses a YYYY-MM-DD date at local midnight.
func ParseDate(raw string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, raw)
	}
	return d, nil
}

// ParseTimestamp accepts local wall-clock timestamps and RFC 3339 values.
// Zoned values are converted to local time.
func ParseTimestamp(raw string) (time.Time, error) {
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.In(time.Local), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, raw)
}
