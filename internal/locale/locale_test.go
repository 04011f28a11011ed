package locale

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
)

func TestPluralFor(t *testing.T) {
	tests := []struct {
		n    int
		want Plural
	}{
		{0, PluralNone},
		{1, PluralOne},
		{2, PluralOther},
		{59, PluralOther},
		{-1, PluralOther},
	}
	for _, tc := range tests {
		if got := PluralFor(tc.n); got != tc.want {
			t.Errorf("PluralFor(%d) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

func TestElapsed(t *testing.T) {
	pt := PortugueseBR()
	en := English()

	tests := []struct {
		name string
		l    *Locale
		n    int
		want string
	}{
		{"pt zero", pt, 0, "agora mesmo"},
		{"pt one", pt, 1, "1 minuto atrás"},
		{"pt many", pt, 5, "5 minutos atrás"},
		{"pt negative", pt, -3, "-3 minutos atrás"},
		{"en zero", en, 0, "just now"},
		{"en one", en, 1, "1 minute ago"},
		{"en many", en, 12, "12 minutes ago"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.l.Elapsed(tc.n); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	pt := PortugueseBR()
	tests := map[string]string{
		"segunda-feira": "Segunda-feira",
		"SÁBADO":        "Sábado",
		"jun":           "Jun",
		"":              "",
	}
	for in, want := range tests {
		if got := pt.Capitalize(in); got != want {
			t.Errorf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRegistryLookup(t *testing.T) {
	r := Builtin()

	tests := []struct {
		tag  string
		want language.Tag
	}{
		{"pt-BR", language.BrazilianPortuguese},
		{"pt", language.BrazilianPortuguese},
		{"en", language.English},
		{"en-GB", language.English},
	}
	for _, tc := range tests {
		l, err := r.Lookup(tc.tag)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tc.tag, err)
		}
		if l.Tag != tc.want {
			t.Errorf("Lookup(%q) = %v, want %v", tc.tag, l.Tag, tc.want)
		}
	}

	if _, err := r.Lookup("ja"); !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("expected ErrUnknownLocale for ja, got %v", err)
	}
	if _, err := r.Lookup("not a tag!"); !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("expected ErrUnknownLocale for malformed tag, got %v", err)
	}
}

func TestOverlayPatchesExistingLocale(t *testing.T) {
	base := Builtin()
	r, err := base.Overlay([]byte(`
locales:
  pt-BR:
    just_now: "neste instante"
    air_quality:
      1: "Ótima"
`))
	if err != nil {
		t.Fatalf("Overlay: %v", err)
	}

	l, err := r.Lookup("pt-BR")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if l.JustNow != "neste instante" {
		t.Errorf("expected patched just_now, got %q", l.JustNow)
	}
	if l.AirQuality[1] != "Ótima" || l.AirQuality[2] != "Moderada" {
		t.Errorf("unexpected air quality table: %v", l.AirQuality)
	}

	orig, _ := base.Lookup("pt-BR")
	if orig.JustNow != "agora mesmo" || orig.AirQuality[1] != "Boa" {
		t.Fatal("overlay mutated the base registry")
	}
}

func TestLoadFileAddsLocale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locales.yaml")
	doc := `
locales:
  es:
    weekdays: [domingo, lunes, martes, miércoles, jueves, viernes, sábado]
    months: [ene, feb, mar, abr, may, jun, jul, ago, sep, oct, nov, dic]
    just_now: "ahora mismo"
    minute_ago: "hace {n} minuto"
    minutes_ago: "hace {n} minutos"
    air_quality_unknown: "Desconocida"
    wind_directions:
      N: Norte
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	r, err := Builtin().LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	l, err := r.Lookup("es")
	if err != nil {
		t.Fatalf("Lookup(es): %v", err)
	}
	if got := l.Elapsed(2); got != "hace 2 minutos" {
		t.Errorf("expected %q, got %q", "hace 2 minutos", got)
	}
	if l.InvalidDate != "Invalid Date" {
		t.Errorf("expected default invalid date text, got %q", l.InvalidDate)
	}
	if len(r.Tags()) != 3 {
		t.Errorf("expected 3 tags, got %v", r.Tags())
	}
}

func TestOverlayRejectsIncompleteLocale(t *testing.T) {
	_, err := Builtin().Overlay([]byte(`
locales:
  fr:
    just_now: "à l'instant"
`))
	if err == nil {
		t.Fatal("expected error for incomplete locale")
	}

	_, err = Builtin().Overlay([]byte(`
locales:
  en:
    weekdays: [mon, tue]
`))
	if err == nil {
		t.Fatal("expected error for short weekday list")
	}
}
