package application

import (
	"context"
	"sync"

	"github.com/example/campus-scheduler/internal/persistence"
)

// DocumentGuard serialises load-mutate-save cycles over a document store.
// The store contract is a full-document overwrite, so concurrent mutations
// would otherwise lose updates.
type DocumentGuard struct {
	mu    sync.Mutex
	store persistence.Store
}

// NewDocumentGuard wraps a store. All services sharing a store must share
// the guard.
func NewDocumentGuard(store persistence.Store) *DocumentGuard {
	return &DocumentGuard{store: store}
}

// Update loads the document, applies fn, and persists the result. When fn
// returns an error nothing is saved.
func (g *DocumentGuard) Update(ctx context.Context, fn func(campus *persistence.Campus) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	campus, err := g.store.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(campus); err != nil {
		return err
	}
	return g.store.Save(ctx, campus)
}

// View loads the document and applies fn without persisting changes.
func (g *DocumentGuard) View(ctx context.Context, fn func(campus *persistence.Campus) error) error {
	campus, err := g.store.Load(ctx)
	if err != nil {
		return err
	}
	return fn(campus)
}
