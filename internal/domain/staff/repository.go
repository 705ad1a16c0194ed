package staff

import (
	"context"
)

// Repository defines the staff lookup operations the core consumes.
type Repository interface {
	// Create persists a new staff member.
	Create(ctx context.Context, s *Staff) error

	// FindByID returns a staff member by its ID.
	FindByID(ctx context.Context, id string) (*Staff, error)

	// FindByAccountID returns the staff member linked to an auth account.
	FindByAccountID(ctx context.Context, accountID string) (*Staff, error)

	// List returns a paginated staff listing with the total row count.
	List(ctx context.Context, limit, offset int) ([]Staff, int, error)
}
