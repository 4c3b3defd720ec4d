// Package memory provides an in-process document store used by tests and
// zero-configuration runs.
package memory

import (
	"context"
	"sync"

	"github.com/example/campus-scheduler/internal/persistence"
)

// Store keeps the campus document in process memory. Load hands out deep
// copies so callers can mutate freely before Save.
type Store struct {
	mu     sync.RWMutex
	campus *persistence.Campus
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{campus: persistence.NewCampus()}
}

// NewSeededStore returns a store initialised with a copy of the provided
// document.
func NewSeededStore(campus *persistence.Campus) (*Store, error) {
	clone, err := campus.Clone()
	if err != nil {
		return nil, err
	}
	return &Store{campus: clone}, nil
}

// Load returns a deep copy of the current document.
func (s *Store) Load(ctx context.Context) (*persistence.Campus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.campus.Clone()
}

// Save replaces the stored document with a deep copy of campus.
func (s *Store) Save(ctx context.Context, campus *persistence.Campus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	clone, err := campus.Clone()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.campus = clone
	s.mu.Unlock()
	return nil
}
