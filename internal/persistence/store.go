package persistence

import "context"

// Store is the full-document contract every storage backend implements:
// Load materialises the complete campus graph, Save overwrites it. There
// is no partial write; serialization of concurrent load-mutate-save
// cycles is the caller's responsibility.
type Store interface {
	Load(ctx context.Context) (*Campus, error)
	Save(ctx context.Context, campus *Campus) error
}
