// Package metrics exposes Prometheus collectors for the favorites service.
// Helpers are no-ops until Init has been called, so packages can record
// unconditionally and tests need no registry.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "weather_favorites_"

	ResultSuccess = "success"
	ResultError   = "error"

	actionAdded   = "added"
	actionRemoved = "removed"
)

var (
	registerOnce sync.Once

	favoriteToggles *prometheus.CounterVec
	favoriteCount   prometheus.Gauge

	providerRequests *prometheus.CounterVec
	providerLatency  *prometheus.HistogramVec

	persistTotal   *prometheus.CounterVec
	persistLatency prometheus.Histogram
)

// Init registers the collectors with the default registry.
func Init() {
	registerOnce.Do(func() {
		favoriteToggles = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "toggles_total",
				Help: "Favorite toggles by resulting action",
			},
			[]string{"action"},
		)
		favoriteCount = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: metricPrefix + "cities",
				Help: "Number of favorite cities",
			},
		)
		providerRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "provider_requests_total",
				Help: "Weather provider requests by provider and result",
			},
			[]string{"provider", "result"},
		)
		providerLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "provider_latency_seconds",
				Help:    "Weather provider latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		)
		persistTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "persist_total",
				Help: "Favorites persistence runs by result",
			},
			[]string{"result"},
		)
		persistLatency = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "persist_latency_seconds",
				Help:    "Favorites persistence latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
		)

		prometheus.MustRegister(
			favoriteToggles,
			favoriteCount,
			providerRequests,
			providerLatency,
			persistTotal,
			persistLatency,
		)
	})
}

// ObserveToggle records a toggle and the resulting list size.
func ObserveToggle(added bool, count int) {
	action := actionRemoved
	if added {
		action = actionAdded
	}
	if favoriteToggles != nil {
		favoriteToggles.WithLabelValues(action).Inc()
	}
	SetFavorites(count)
}

// SetFavorites sets the favorite-city gauge.
func SetFavorites(count int) {
	if favoriteCount != nil {
		favoriteCount.Set(float64(count))
	}
}

// ObserveProvider records one provider call.
func ObserveProvider(provider, result string, duration time.Duration) {
	if result == "" {
		result = ResultSuccess
	}
	if providerRequests != nil {
		providerRequests.WithLabelValues(provider, result).Inc()
	}
	if providerLatency != nil {
		providerLatency.WithLabelValues(provider).Observe(duration.Seconds())
	}
}

// ObservePersist records one save of the favorites list.
func ObservePersist(result string, duration time.Duration) {
	if result == "" {
		result = ResultSuccess
	}
	if persistTotal != nil {
		persistTotal.WithLabelValues(result).Inc()
	}
	if persistLatency != nil {
		persistLatency.Observe(duration.Seconds())
	}
}
