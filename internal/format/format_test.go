package format

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/i474232898/weather-favorites/internal/locale"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-06-12", "Quarta-feira, 12 Jun"},
		{"2025-06-12", "Quinta-feira, 12 Jun"},
		{"2024-03-02", "Sábado, 2 Mar"},
		{"2024-12-01", "Domingo, 1 Dez"},
		{"12/06/2024", "Invalid Date"},
		{"", "Invalid Date"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := FormatDate(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestDateEnglish(t *testing.T) {
	f := New(locale.English())
	if got := f.Date("2024-06-12"); got != "Wednesday, 12 Jun" {
		t.Fatalf("expected %q, got %q", "Wednesday, 12 Jun", got)
	}
}

func TestFormatHour(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-01 09:05", "9:05"},
		{"2024-01-01T09:05:00", "9:05"},
		{"2024-01-01T23:59", "23:59"},
		{"2024-01-01 00:00", "0:00"},
		{"09:05", "Invalid Date"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := FormatHour(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFormatHourZonedUsesLocalTime(t *testing.T) {
	raw := "2024-01-01T09:05:00Z"
	local := time.Date(2024, 1, 1, 9, 5, 0, 0, time.UTC).In(time.Local)
	want := fmt.Sprintf("%d:%02d", local.Hour(), local.Minute())

	if got := FormatHour(raw); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatLastUpdated(t *testing.T) {
	tests := []struct {
		name      string
		last, ref string
		want      string
	}{
		{"same instant", "2024-01-01T10:00:00", "2024-01-01T10:00:00", "agora mesmo"},
		{"under a minute", "2024-01-01T10:00:00", "2024-01-01T10:00:59", "agora mesmo"},
		{"one minute", "2024-01-01T10:00:00", "2024-01-01T10:01:00", "1 minuto atrás"},
		{"five minutes", "2024-01-01T10:00:00", "2024-01-01T10:05:00", "5 minutos atrás"},
		{"provider layout", "2024-01-01 10:00", "2024-01-01 12:00", "120 minutos atrás"},
		{"future", "2024-01-01T10:05:00", "2024-01-01T10:00:00", "-5 minutos atrás"},
		{"future by seconds floors down", "2024-01-01T10:00:30", "2024-01-01T10:00:00", "-1 minutos atrás"},
		{"bad last", "yesterday", "2024-01-01T10:00:00", "Invalid Date"},
		{"bad reference", "2024-01-01T10:00:00", "", "Invalid Date"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatLastUpdated(tc.last, tc.ref); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestLastUpdatedNowUsesClock(t *testing.T) {
	f := New(locale.English())
	f.now = func() time.Time {
		return time.Date(2024, 1, 1, 10, 3, 0, 0, time.Local)
	}

	if got := f.LastUpdatedNow("2024-01-01 10:00"); got != "3 minutes ago" {
		t.Fatalf("expected %q, got %q", "3 minutes ago", got)
	}
	if got := f.LastUpdatedNow("2024-01-01 10:03"); got != "just now" {
		t.Fatalf("expected %q, got %q", "just now", got)
	}
	if got := f.LastUpdatedNow("garbage"); got != "Invalid Date" {
		t.Fatalf("expected %q, got %q", "Invalid Date", got)
	}
}

func TestElapsedMinutes(t *testing.T) {
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		ref  time.Time
		want int
	}{
		{base, 0},
		{base.Add(59 * time.Second), 0},
		{base.Add(time.Minute), 1},
		{base.Add(90 * time.Minute), 90},
		{base.Add(-time.Second), -1},
		{base.Add(-2 * time.Minute), -2},
	}
	for _, tc := range tests {
		if got := ElapsedMinutes(base, tc.ref); got != tc.want {
			t.Errorf("ElapsedMinutes(%v) = %d, want %d", tc.ref.Sub(base), got, tc.want)
		}
	}
}

func TestParseTimestampError(t *testing.T) {
	if _, err := ParseTimestamp("soon"); !errors.Is(err, ErrUnparseable) {
		t.Fatalf("expected ErrUnparseable, got %v", err)
	}
	if _, err := ParseDate("2024-13-01"); !errors.Is(err, ErrUnparseable) {
		t.Fatalf("expected ErrUnparseable, got %v", err)
	}
}
