package notification

import (
	"context"
)

// Repository defines the persistence operations for notifications.
type Repository interface {
	// Create persists a new notification.
	Create(ctx context.Context, n *Notification) error

	// ExistsUnread reports whether an unread notification of the given type
	// already exists for a (store, product) pair. Used to deduplicate
	// low-stock alerts between scans.
	ExistsUnread(ctx context.Context, t Type, storeID, productID string) (bool, error)

	// List returns notifications, newest first, with the total row count.
	List(ctx context.Context, limit, offset int) ([]Notification, int, error)

	// MarkRead flags a notification as read.
	MarkRead(ctx context.Context, id string) error
}
