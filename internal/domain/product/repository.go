package product

import (
	"context"
)

// Repository defines the catalog lookup operations the core consumes.
type Repository interface {
	// Create persists a new product.
	Create(ctx context.Context, p *Product) error

	// FindByID returns a product by its ID.
	FindByID(ctx context.Context, id string) (*Product, error)

	// Exists reports whether a product with the given ID exists.
	Exists(ctx context.Context, id string) (bool, error)

	// List returns a paginated product listing with the total row count.
	List(ctx context.Context, limit, offset int) ([]Product, int, error)
}
