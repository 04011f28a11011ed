package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/weather-favorites/internal/favorites"
	"github.com/i474232898/weather-favorites/internal/metrics"
)

// Source exposes the favorites list with the revision it belongs to.
type Source interface {
	Snapshot() ([]favorites.FavoriteCitySnapshot, uint64)
}

// Saver persists a complete favorites list.
type Saver interface {
	Save(ctx context.Context, cities []favorites.FavoriteCitySnapshot) error
}

// Scheduler periodically saves the favorites list when it has changed.
type Scheduler struct {
	scheduler *gocron.Scheduler
	source    Source
	saver     Saver
	interval  time.Duration

	mu            sync.Mutex
	savedRevision uint64
}

// New creates a Scheduler. The source's current revision is taken as already
// saved, since it was just loaded from the saver's backend.
func New(source Source, saver Saver, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	_, rev := source.Snapshot()
	return &Scheduler{
		scheduler:     s,
		source:        source,
		saver:         saver,
		interval:      interval,
		savedRevision: rev,
	}
}

// Start schedules the save job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.saver == nil {
		log.Println("scheduler: no persistence configured; nothing to schedule")
		return nil
	}

	interval := s.interval
	if interval <= 0 {
		interval = time.Minute
	}

	_, err := s.scheduler.Every(interval).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.Flush(ctx); err != nil {
			log.Printf("scheduler: save favorites failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule favorites save: %w", err)
	}

	s.scheduler.StartAsync()
	return nil
}

// Flush saves the list if its revision moved since the last successful save.
func (s *Scheduler) Flush(ctx context.Context) error {
	if s.saver == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cities, rev := s.source.Snapshot()
	if rev == s.savedRevision {
		return nil
	}

	start := time.Now()
	if err := s.saver.Save(ctx, cities); err != nil {
		metrics.ObservePersist(metrics.ResultError, time.Since(start))
		return err
	}
	metrics.ObservePersist(metrics.ResultSuccess, time.Since(start))

	s.savedRevision = rev
	log.Printf("scheduler: saved %d favorite cities (revision %d)", len(cities), rev)
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
