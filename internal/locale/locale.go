// Package locale holds the phrase tables used to render weather values for
// display. Formatting and translation logic lives elsewhere; a Locale only
// answers "what is this called here".
package locale

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownLocale is returned when no registered locale matches a tag.
var ErrUnknownLocale = errors.New("unknown locale")

// Placeholder is replaced by the minute count in the "ago" templates.
const Placeholder = "{n}"

// Plural is the grammatical form selected for an elapsed-minute count.
type Plural int

const (
	// PluralNone means nothing elapsed; the "just now" phrase is used.
	PluralNone Plural = iota
	PluralOne
	PluralOther
)

// PluralFor selects the form for n. Only exactly 1 is singular; negative
// counts (timestamps in the future) take the plural form.
func PluralFor(n int) Plural {
	switch n {
	case 0:
		return PluralNone
	case 1:
		return PluralOne
	default:
		return PluralOther
	}
}

// Locale is the set of display strings for one language tag.
type Locale struct {
	Tag language.Tag

	// Weekdays are indexed by time.Weekday (Sunday first) and stored lowercase.
	Weekdays [7]string
	// Months are abbreviated names indexed by time.Month-1, lowercase.
	Months [12]string

	JustNow     string
	MinuteAgo   string // singular template, contains Placeholder
	MinutesAgo  string // plural template, contains Placeholder
	InvalidDate string

	AirQuality        map[int]string
	AirQualityUnknown string

	WindDirections map[string]string
}

// Capitalize upper-cases the first letter of s and lower-cases the rest using
// the locale's casing rules ("segunda-FEIRA" -> "Segunda-feira").
func (l *Locale) Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	head := cases.Upper(l.Tag).String(string(r))
	tail := cases.Lower(l.Tag).String(s[size:])
	return head + tail
}

// Elapsed renders an elapsed-minute count with the form PluralFor picks.
func (l *Locale) Elapsed(minutes int) string {
	n := strconv.Itoa(minutes)
	switch PluralFor(minutes) {
	case PluralNone:
		return l.JustNow
	case PluralOne:
		return strings.ReplaceAll(l.MinuteAgo, Placeholder, n)
	default:
		return strings.ReplaceAll(l.MinutesAgo, Placeholder, n)
	}
}

// clone returns a deep copy so overlays never mutate the built-in tables.
func (l *Locale) clone() *Locale {
	c := *l
	c.AirQuality = make(map[int]string, len(l.AirQuality))
	for k, v := range l.AirQuality {
		c.AirQuality[k] = v
	}
	c.WindDirections = make(map[string]string, len(l.WindDirections))
	for k, v := range l.WindDirections {
		c.WindDirections[k] = v
	}
	return &c
}
