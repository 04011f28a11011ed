package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpapi "github.com/i474232898/weather-favorites/internal/api/http"
	"github.com/i474232898/weather-favorites/internal/config"
	"github.com/i474232898/weather-favorites/internal/favorites"
	"github.com/i474232898/weather-favorites/internal/format"
	"github.com/i474232898/weather-favorites/internal/locale"
	"github.com/i474232898/weather-favorites/internal/metrics"
	"github.com/i474232898/weather-favorites/internal/scheduler"
	"github.com/i474232898/weather-favorites/internal/store"
	"github.com/i474232898/weather-favorites/internal/translate"
	"github.com/i474232898/weather-favorites/internal/weather"
	"github.com/i474232898/weather-favorites/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	loc, err := loadLocale(cfg)
	if err != nil {
		log.Fatalf("failed to load locale: %v", err)
	}
	log.Printf("INFO: rendering display strings in %s", loc.Tag)

	metrics.Init()

	ctx := context.Background()

	// Favorites, seeded from the database when one is configured.
	favs, saver, closeStore, err := openFavorites(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open favorites: %v", err)
	}
	defer closeStore()
	metrics.SetFavorites(favs.Len())

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	var provider weather.Provider
	if cfg.WeatherAPIKey != "" {
		provider = providers.NewWeatherAPIProvider(httpClient, cfg.WeatherAPIKey, providerLang(loc))
	} else {
		log.Printf("INFO: WEATHERAPI_API_KEY not set; weather endpoints are disabled")
	}

	presenter := weather.NewPresenter(format.New(loc), translate.New(loc))
	service := weather.NewService(favs, provider, presenter)
	if cfg.GeocoderAPIKey != "" {
		service.WithGeocoder(providers.NewGoogleGeocoder(cfg.GeocoderAPIKey))
	}

	// Scheduler that periodically saves changed favorites.
	sched := scheduler.New(favs, saver, cfg.PersistInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := newApp()
	httpapi.RegisterRoutes(app, service, cfg.ForecastDays)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-sigCtx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
	if err := sched.Flush(shutdownCtx); err != nil {
		log.Printf("final favorites save failed: %v", err)
	}
}

// newApp builds the Fiber app with global middleware and the operational
// endpoints.
func newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "weather-favorites",
		DisableStartupMessage: true,
		Immutable:             true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-favorites",
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return app
}

// loadLocale resolves the configured locale, overlaying LOCALE_FILE first.
func loadLocale(cfg *config.AppConfig) (*locale.Locale, error) {
	registry := locale.Builtin()
	if cfg.LocaleFile != "" {
		var err error
		registry, err = registry.LoadFile(cfg.LocaleFile)
		if err != nil {
			return nil, err
		}
	}
	return registry.Lookup(cfg.Locale)
}

// providerLang is the language the provider writes condition texts in.
func providerLang(l *locale.Locale) string {
	base, _ := l.Tag.Base()
	return base.String()
}

// openFavorites creates the favorites store. Without DATABASE_URL the list
// lives in memory and the returned saver is nil. An empty database is seeded
// with the configured favorites.
func openFavorites(ctx context.Context, cfg *config.AppConfig) (*favorites.Store, scheduler.Saver, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Printf("INFO: DATABASE_URL not set; favorites are kept in memory")
		return favorites.NewStore(cfg.SeedFavorites...), nil, func() {}, nil
	}

	db, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, err
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Printf("close database: %v", err)
		}
	}

	if err := db.Migrate(ctx); err != nil {
		closeDB()
		return nil, nil, nil, err
	}
	cities, err := db.Load(ctx)
	if err != nil {
		closeDB()
		return nil, nil, nil, err
	}

	if len(cities) == 0 && len(cfg.SeedFavorites) > 0 {
		if err := db.Save(ctx, cfg.SeedFavorites); err != nil {
			closeDB()
			return nil, nil, nil, fmt.Errorf("seed favorites: %w", err)
		}
		cities = cfg.SeedFavorites
	}
	log.Printf("INFO: loaded %d favorite cities", len(cities))

	return favorites.NewStore(cities...), db, closeDB, nil
}
