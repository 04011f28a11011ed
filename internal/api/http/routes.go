package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/i474232898/weather-favorites/internal/favorites"
	"github.com/i474232898/weather-favorites/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app. forecastDays is
// used when a forecast request has no days parameter; zero makes it required.
func RegisterRoutes(app *fiber.App, service *weather.Service, forecastDays int) {
	v1 := app.Group("/api/v1")

	v1.Get("/favorites", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"favoriteCities": service.Favorites(),
		})
	})

	v1.Get("/favorites/check", func(c *fiber.Ctx) error {
		city := c.Query("city")
		return c.JSON(fiber.Map{
			"city":     city,
			"favorite": service.IsFavorite(city),
		})
	})

	v1.Post("/favorites/toggle", func(c *fiber.Ctx) error {
		var req toggleRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snap := req.toSnapshot()
		favorite := service.ToggleFavorite(c.UserContext(), snap)
		return c.JSON(fiber.Map{
			"city":      snap.City,
			"favorite":  favorite,
			"favorites": service.Favorites(),
		})
	})

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		q, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		view, err := service.Current(c.UserContext(), q)
		if err != nil {
			return weatherError(err)
		}
		return c.JSON(view)
	})

	v1.Get("/weather/forecast", func(c *fiber.Ctx) error {
		q, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		days := forecastDays
		if raw := c.Query("days"); raw != "" {
			days, err = strconv.Atoi(raw)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "days must be an integer")
			}
		}

		view, err := service.Forecast(c.UserContext(), q, days)
		if err != nil {
			return weatherError(err)
		}
		return c.JSON(fiber.Map{
			"query": q,
			"days":  view,
		})
	})

	f := service.Presenter().Formatter()
	tr := service.Presenter().Translator()

	v1.Get("/format/date", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"value": f.Date(c.Query("date"))})
	})

	v1.Get("/format/hour", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"value": f.Hour(c.Query("time"))})
	})

	v1.Get("/format/last-updated", func(c *fiber.Ctx) error {
		last := c.Query("last_updated")
		if ref := c.Query("reference"); ref != "" {
			return c.JSON(fiber.Map{"value": f.LastUpdated(last, ref)})
		}
		return c.JSON(fiber.Map{"value": f.LastUpdatedNow(last)})
	})

	v1.Get("/translate/air-quality", func(c *fiber.Ctx) error {
		index, err := strconv.Atoi(c.Query("index"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "index must be an integer")
		}
		return c.JSON(fiber.Map{"value": tr.AirQuality(index)})
	})

	v1.Get("/translate/wind-direction", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"value": tr.WindDirection(c.Query("code"))})
	})
}

// weatherError maps service errors to HTTP errors.
func weatherError(err error) error {
	switch {
	case errors.Is(err, weather.ErrInvalidQuery), errors.Is(err, weather.ErrInvalidDays):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, weather.ErrLocationNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, weather.ErrNoProvider):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	default:
		return fiber.NewError(fiber.StatusBadGateway, "failed to fetch weather data")
	}
}

// locationQuery holds query parameters for identifying a location.
type locationQuery struct {
	City    string
	Country string
	Lat     *float64 `validate:"omitempty,latitude"`
	Lon     *float64 `validate:"omitempty,longitude"`
}

func (l locationQuery) toQuery() weather.Query {
	return weather.Query{
		City:    l.City,
		Country: l.Country,
		Lat:     l.Lat,
		Lon:     l.Lon,
	}
}

func parseLocationQuery(c *fiber.Ctx) (weather.Query, error) {
	var q locationQuery

	q.City = c.Query("city")
	q.Country = c.Query("country")

	var err error
	if q.Lat, err = parseFloatQuery(c, "lat"); err != nil {
		return weather.Query{}, err
	}
	if q.Lon, err = parseFloatQuery(c, "lon"); err != nil {
		return weather.Query{}, err
	}

	if err := validate.Struct(q); err != nil {
		return weather.Query{}, err
	}

	return q.toQuery(), nil
}

func parseFloatQuery(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.New(key + " must be a number")
	}
	return &v, nil
}

// toggleRequest is the body of a favorites toggle, as JSON or form data.
type toggleRequest struct {
	City    string   `json:"city" form:"city" validate:"required"`
	Region  string   `json:"region" form:"region"`
	Country string   `json:"country" form:"country"`
	Lat     *float64 `json:"lat" form:"lat" validate:"omitempty,latitude"`
	Lon     *float64 `json:"lon" form:"lon" validate:"omitempty,longitude"`
	TempC   *float64 `json:"temp_c" form:"temp_c"`
}

// toSnapshot copies the strings out of the request buffer: the snapshot
// outlives the request and City is the store's identity key.
func (r toggleRequest) toSnapshot() favorites.FavoriteCitySnapshot {
	return favorites.FavoriteCitySnapshot{
		City:    utils.CopyString(r.City),
		Region:  utils.CopyString(r.Region),
		Country: utils.CopyString(r.Country),
		Lat:     r.Lat,
		Lon:     r.Lon,
		TempC:   r.TempC,
	}
}
