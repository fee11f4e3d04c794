package history

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore implements Store in memory. Used by tests and by commands
// that run without a database.
type MemoryStore struct {
	mu   sync.RWMutex
	runs []*Run
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Record stores one run.
func (s *MemoryStore) Record(_ context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *run
	s.runs = append(s.runs, &copied)
	return nil
}

// List returns runs matching the query, newest first.
func (s *MemoryStore) List(_ context.Context, query *Query) ([]*Run, error) {
	if query == nil {
		query = &Query{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*Run
	for _, run := range s.runs {
		if query.Schema != "" && run.Schema != query.Schema {
			continue
		}
		if query.File != "" && run.File != query.File {
			continue
		}
		if query.Since != nil && run.CreatedAt.Before(*query.Since) {
			continue
		}
		copied := *run
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if query.Limit > 0 && len(result) > query.Limit {
		result = result[:query.Limit]
	}

	return result, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
