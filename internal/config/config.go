package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/weather-favorites/internal/favorites"
)

type AppConfig struct {
	WeatherAPIKey string
	// HTTPTimeout bounds each outbound provider call.
	HTTPTimeout time.Duration

	// Locale is the BCP-47 tag display strings are rendered in; LocaleFile
	// optionally overlays YAML phrase tables.
	Locale     string
	LocaleFile string

	// DatabaseURL selects the persistence backend (sqlite: or postgres://).
	// Empty keeps favorites in memory only.
	DatabaseURL string
	// PersistInterval controls how often a changed favorites list is saved.
	PersistInterval time.Duration

	// ForecastDays is used when a forecast request gives no days parameter.
	ForecastDays int

	GeocoderAPIKey string

	// SeedFavorites populate an empty favorites list on first start.
	SeedFavorites []favorites.FavoriteCitySnapshot

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.WeatherAPIKey = os.Getenv("WEATHERAPI_API_KEY")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	timeout, err := getenvDuration("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	cfg.Locale = getenvDefault("LOCALE", "pt-BR")
	cfg.LocaleFile = os.Getenv("LOCALE_FILE")

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	interval, err := getenvDuration("PERSIST_INTERVAL", "1m")
	if err != nil {
		return nil, err
	}
	cfg.PersistInterval = interval

	cfg.ForecastDays = getenvInt("FORECAST_DAYS", 3)
	if cfg.ForecastDays < 1 || cfg.ForecastDays > 7 {
		return nil, fmt.Errorf("invalid FORECAST_DAYS: %d is outside 1..7", cfg.ForecastDays)
	}

	cfg.Port = getenvDefault("PORT", "8080")

	seeds, err := loadSeedFavorites()
	if err != nil {
		return nil, err
	}
	cfg.SeedFavorites = seeds

	return cfg, nil
}

// loadSeedFavorites reads FAVORITE_CITIES and the optional, positionally
// matching FAVORITE_COUNTRIES. Blank cities are skipped and a repeated city
// keeps its first entry.
func loadSeedFavorites() ([]favorites.FavoriteCitySnapshot, error) {
	city := os.Getenv("FAVORITE_CITIES")
	if strings.TrimSpace(city) == "" {
		return nil, nil
	}
	cities := strings.Split(city, ",")

	var countries []string
	if country := os.Getenv("FAVORITE_COUNTRIES"); country != "" {
		countries = strings.Split(country, ",")
		if len(cities) != len(countries) {
			return nil, fmt.Errorf("number of cities and countries must be the same")
		}
	}

	var seeds []favorites.FavoriteCitySnapshot
	seen := make(map[string]bool)
	for i := range cities {
		s := favorites.FavoriteCitySnapshot{City: strings.TrimSpace(cities[i])}
		if s.City == "" || seen[s.City] {
			continue
		}
		seen[s.City] = true
		if countries != nil {
			s.Country = strings.TrimSpace(countries[i])
		}
		seeds = append(seeds, s)
	}

	return seeds, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
