// Package cache is a small TTL cache placed in front of the
// aggregation pipeline. It only reduces how often the pure functions
// run; expiry never affects their output.
package cache

import (
	"sync"
	"time"
)

// Cache keys shared by the API handlers.
const (
	KeyMenuAnalytics = "menu-analytics"
	KeyVolumeData    = "volume-data"
	KeyTimelineData  = "timeline-data"
	KeyKitchenNotes  = "kitchen-notes"
)

// DefaultExpiration balances freshness against recomputation.
const DefaultExpiration = 5 * time.Minute

type entry struct {
	value     interface{}
	timestamp time.Time
}

// Store holds cached derived projections keyed by endpoint.
type Store struct {
	mu         sync.RWMutex
	entries    map[string]entry
	expiration time.Duration
	now        func() time.Time
}

// New creates a store with the given TTL. A non-positive TTL uses the
// default.
func New(expiration time.Duration) *Store {
	if expiration <= 0 {
		expiration = DefaultExpiration
	}
	return &Store{
		entries:    make(map[string]entry),
		expiration: expiration,
		now:        time.Now,
	}
}

// Get returns the cached value for a key if it exists and has not
// expired. Expired entries are dropped on access.
func (s *Store) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if s.now().Sub(e.timestamp) > s.expiration {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Set stores a value with the current timestamp.
func (s *Store) Set(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value, timestamp: s.now()}
}

// Clear removes one key, or every key when key is empty.
func (s *Store) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if key == "" {
		s.entries = make(map[string]entry)
		return
	}
	delete(s.entries, key)
}
