package locale

import (
	"fmt"
	"os"
	"sort"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Registry resolves BCP-47 tags to locales using CLDR matching, so "pt",
// "pt-BR" and "en-GB" all land on a sensible table.
type Registry struct {
	locales []*Locale
	matcher language.Matcher
}

// NewRegistry builds a registry. The first locale is the fallback preference
// for the matcher, but unmatched tags are still reported as unknown.
func NewRegistry(locales ...*Locale) *Registry {
	tags := make([]language.Tag, 0, len(locales))
	for _, l := range locales {
		tags = append(tags, l.Tag)
	}
	return &Registry{
		locales: locales,
		matcher: language.NewMatcher(tags),
	}
}

// Builtin returns a registry with the compiled-in tables.
func Builtin() *Registry {
	return NewRegistry(PortugueseBR(), English())
}

// Lookup returns the locale best matching tag.
func (r *Registry) Lookup(tag string) (*Locale, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownLocale, tag, err)
	}
	if len(r.locales) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, tag)
	}
	_, idx, conf := r.matcher.Match(t)
	if conf == language.No {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, tag)
	}
	return r.locales[idx], nil
}

// Tags lists the registered tags in registration order.
func (r *Registry) Tags() []string {
	out := make([]string, 0, len(r.locales))
	for _, l := range r.locales {
		out = append(out, l.Tag.String())
	}
	return out
}

type fileLocale struct {
	Weekdays          []string          `yaml:"weekdays"`
	Months            []string          `yaml:"months"`
	JustNow           string            `yaml:"just_now"`
	MinuteAgo         string            `yaml:"minute_ago"`
	MinutesAgo        string            `yaml:"minutes_ago"`
	InvalidDate       string            `yaml:"invalid_date"`
	AirQuality        map[int]string    `yaml:"air_quality"`
	AirQualityUnknown string            `yaml:"air_quality_unknown"`
	WindDirections    map[string]string `yaml:"wind_directions"`
}

type localeFile struct {
	Locales map[string]fileLocale `yaml:"locales"`
}

// LoadFile overlays the YAML phrase tables at path onto r.
func (r *Registry) LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read locale file: %w", err)
	}
	return r.Overlay(data)
}

// Overlay returns a new registry where every locale in the YAML document
// either patches the registered locale with the same tag or, for a tag not
// registered yet, is added as a complete table.
func (r *Registry) Overlay(data []byte) (*Registry, error) {
	var doc localeFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse locale file: %w", err)
	}

	locales := make([]*Locale, len(r.locales))
	for i, l := range r.locales {
		locales[i] = l.clone()
	}

	keys := make([]string, 0, len(doc.Locales))
	for k := range doc.Locales {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		tag, err := language.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", key, err)
		}
		fl := doc.Locales[key]

		idx := -1
		for i, l := range locales {
			if l.Tag == tag {
				idx = i
				break
			}
		}

		if idx >= 0 {
			if err := apply(locales[idx], fl); err != nil {
				return nil, fmt.Errorf("locale %q: %w", key, err)
			}
			continue
		}

		l := &Locale{
			Tag:            tag,
			AirQuality:     map[int]string{},
			WindDirections: map[string]string{},
		}
		if err := apply(l, fl); err != nil {
			return nil, fmt.Errorf("locale %q: %w", key, err)
		}
		if err := complete(l); err != nil {
			return nil, fmt.Errorf("locale %q: %w", key, err)
		}
		locales = append(locales, l)
	}

	return NewRegistry(locales...), nil
}

func apply(l *Locale, fl fileLocale) error {
	if len(fl.Weekdays) > 0 {
		if len(fl.Weekdays) != len(l.Weekdays) {
			return fmt.Errorf("weekdays must have %d entries, got %d", len(l.Weekdays), len(fl.Weekdays))
		}
		copy(l.Weekdays[:], fl.Weekdays)
	}
	if len(fl.Months) > 0 {
		if len(fl.Months) != len(l.Months) {
			return fmt.Errorf("months must have %d entries, got %d", len(l.Months), len(fl.Months))
		}
		copy(l.Months[:], fl.Months)
	}
	setIf(&l.JustNow, fl.JustNow)
	setIf(&l.MinuteAgo, fl.MinuteAgo)
	setIf(&l.MinutesAgo, fl.MinutesAgo)
	setIf(&l.InvalidDate, fl.InvalidDate)
	setIf(&l.AirQualityUnknown, fl.AirQualityUnknown)
	for k, v := range fl.AirQuality {
		l.AirQuality[k] = v
	}
	for k, v := range fl.WindDirections {
		l.WindDirections[k] = v
	}
	return nil
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func complete(l *Locale) error {
	if l.Weekdays[0] == "" {
		return fmt.Errorf("weekdays are required")
	}
	if l.Months[0] == "" {
		return fmt.Errorf("months are required")
	}
	if l.JustNow == "" || l.MinuteAgo == "" || l.MinutesAgo == "" {
		return fmt.Errorf("just_now, minute_ago and minutes_ago are required")
	}
	if l.InvalidDate == "" {
		l.InvalidDate = "Invalid Date"
	}
	return nil
}
