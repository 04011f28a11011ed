package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-favorites/internal/metrics"
	"github.com/i474232898/weather-favorites/internal/weather"
)

var (
	errRateLimited  = errors.New("rate limited")
	errServerError  = errors.New("server error")
	errUnexpected   = errors.New("unexpected status code")
	errCircuitOpen  = errors.New("circuit breaker open")
	errNoHTTPClient = errors.New("http client not configured")
)

// newCircuitBreaker returns the breaker shared by every request of one
// provider. It opens after five consecutive failures and probes again after
// Timeout.
func newCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
}

// doRequest executes one attempt through the circuit breaker. Non-2xx
// responses have their bodies closed here. 400 and 404 replies reject the
// query, not the provider, so they pass the breaker as successes and come
// back as weather.ErrLocationNotFound.
func doRequest(
	ctx context.Context,
	provider string,
	client *http.Client,
	cb *gobreaker.CircuitBreaker,
	req *http.Request,
) (*http.Response, error) {
	if client == nil {
		return nil, errNoHTTPClient
	}

	start := time.Now()
	req = req.WithContext(ctx)

	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := client.Do(req)
		if execErr != nil {
			return nil, execErr
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			_ = resp.Body.Close()
			return nil, errRateLimited
		}
		if rejectsQuery(resp.StatusCode) {
			return resp, nil
		}
		if resp.StatusCode >= 500 {
			_ = resp.Body.Close()
			return nil, errServerError
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
		}

		return resp, nil
	})

	if err != nil {
		metrics.ObserveProvider(provider, metrics.ResultError, time.Since(start))
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}
		return nil, err
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	if rejectsQuery(resp.StatusCode) {
		_ = resp.Body.Close()
		metrics.ObserveProvider(provider, metrics.ResultError, time.Since(start))
		return nil, fmt.Errorf("%w: status %d", weather.ErrLocationNotFound, resp.StatusCode)
	}

	metrics.ObserveProvider(provider, metrics.ResultSuccess, time.Since(start))
	return resp, nil
}

func rejectsQuery(status int) bool {
	return status == http.StatusBadRequest || status == http.StatusNotFound
}
