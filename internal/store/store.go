// Package store holds the in-process listing store. Listings are read-shared
// across the attribute scorer and the semantic retriever during a run;
// replacement happens only between runs.
package store

import (
	"sync"

	"homematch/internal/model"
)

// Store is an in-memory listing store. All reads return copies so callers
// can never mutate stored listings.
type Store struct {
	mu       sync.RWMutex
	listings []model.Listing
	byID     map[string]model.Listing
}

// New creates an empty store.
func New() *Store {
	return &Store{byID: make(map[string]model.Listing)}
}

// NewSeeded creates a store populated with the built-in seed listings.
func NewSeeded() *Store {
	s := New()
	s.Replace(Seed())
	return s
}

// Replace swaps the full listing set and returns how many listings were
// kept. Listings failing validation are dropped silently; the caller is
// expected to have validated already.
func (s *Store) Replace(listings []model.Listing) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listings = make([]model.Listing, 0, len(listings))
	s.byID = make(map[string]model.Listing, len(listings))
	for _, l := range listings {
		if err := l.Validate(); err != nil {
			continue
		}
		s.listings = append(s.listings, l)
		s.byID[l.ID] = l
	}
	return len(s.listings)
}

// All returns a copy of every listing, in insertion order.
func (s *Store) All() []model.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Listing, len(s.listings))
	copy(out, s.listings)
	return out
}

// Get returns the listing with the given ID.
func (s *Store) Get(id string) (model.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.byID[id]
	return l, ok
}

// Len returns the number of stored listings.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listings)
}
