package store

import (
	"context"
)

// Repository defines the store lookup operations the core consumes.
type Repository interface {
	// Create persists a new store.
	Create(ctx context.Context, s *Store) error

	// FindByID returns a store by its ID.
	FindByID(ctx context.Context, id string) (*Store, error)

	// FindByCode returns a store by its branch code.
	FindByCode(ctx context.Context, code string) (*Store, error)

	// Exists reports whether a store with the given ID exists.
	Exists(ctx context.Context, id string) (bool, error)

	// List returns a paginated store listing with the total row count.
	List(ctx context.Context, limit, offset int) ([]Store, int, error)
}
