// Package memory holds activities in memory. It backs unit tests and keeps
// the aggregator independent of file I/O.
package memory

import (
	"context"
	"sync"

	"souhrn/internal/core"
)

type Store struct {
	mu    sync.Mutex
	items []core.Activity
}

func New(items ...core.Activity) *Store {
	return &Store{items: items}
}

// Append adds activities after those already stored.
func (s *Store) Append(items ...core.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, items...)
}

// ReadActivities implements source.ActivityReader.
func (s *Store) ReadActivities(_ context.Context) ([]core.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Activity(nil), s.items...), nil
}
