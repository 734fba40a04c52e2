package testutil

import (
	"context"
	"sync"

	"github.com/cardinalkit/surveybuilder/internal/domain"
)

// MemoryStore is an in-memory draft store with injectable failures. It
// counts calls so tests can assert how often the store was touched.
type MemoryStore struct {
	mu       sync.Mutex
	Snapshot *domain.Draft

	LoadErr  error
	SaveErr  error
	ClearErr error

	Loads  int
	Saves  int
	Clears int
}

func (s *MemoryStore) Load(ctx context.Context) (*domain.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Loads++
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.Snapshot.Clone(), nil
}

func (s *MemoryStore) Save(ctx context.Context, d *domain.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Saves++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Snapshot = d.Clone()
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Clears++
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.Snapshot = nil
	return nil
}

// Stored returns a copy of the current snapshot.
func (s *MemoryStore) Stored() *domain.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Snapshot.Clone()
}
