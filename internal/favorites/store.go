// Package favorites holds the user's ordered set of favorite cities.
package favorites

import "sync"

// Store is an order-preserving set of FavoriteCitySnapshot keyed by City
// (case-sensitive). It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	cities []FavoriteCitySnapshot

	// revision increments on every toggle; persistence uses it to skip
	// saving an unchanged list.
	revision uint64
}

// NewStore creates a store seeded with initial, copied as given. Duplicate
// cities in initial are kept until the next toggle of that city removes them.
func NewStore(initial ...FavoriteCitySnapshot) *Store {
	cities := make([]FavoriteCitySnapshot, 0, len(initial))
	for _, c := range initial {
		cities = append(cities, c.clone())
	}
	return &Store{cities: cities}
}

// ToggleFavoriteCity removes every entry whose City equals snapshot.City, or
// appends snapshot when there is none. It reports whether the city is a
// favorite afterwards.
func (s *Store) ToggleFavoriteCity(snapshot FavoriteCitySnapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]FavoriteCitySnapshot, 0, len(s.cities)+1)
	removed := false
	for _, c := range s.cities {
		if c.City == snapshot.City {
			removed = true
			continue
		}
		next = append(next, c)
	}
	if !removed {
		next = append(next, snapshot.clone())
	}

	s.cities = next
	s.revision++
	return !removed
}

// IsCityFavorite reports whether city is in the collection.
func (s *Store) IsCityFavorite(city string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.cities {
		if c.City == city {
			return true
		}
	}
	return false
}

// FavoriteCities returns a copy of the collection in insertion order.
func (s *Store) FavoriteCities() []FavoriteCitySnapshot {
	out, _ := s.Snapshot()
	return out
}

// State returns the collection in its serializable form.
func (s *Store) State() FavoritesState {
	return FavoritesState{FavoriteCities: s.FavoriteCities()}
}

// Snapshot returns the collection together with the revision it belongs to.
func (s *Store) Snapshot() ([]FavoriteCitySnapshot, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]FavoriteCitySnapshot, 0, len(s.cities))
	for _, c := range s.cities {
		out = append(out, c.clone())
	}
	return out, s.revision
}

// Len returns the number of favorites.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cities)
}
