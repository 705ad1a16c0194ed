package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/notification"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotificationNotFound reports a missing notification.
var ErrNotificationNotFound = errors.New("notification not found")

// PostgresNotificationRepository implements notification.Repository on
// PostgreSQL.
type PostgresNotificationRepository struct {
	db *pgxpool.Pool
}

// NewPostgresNotificationRepository creates a new PostgresNotificationRepository.
func NewPostgresNotificationRepository(db *pgxpool.Pool) notification.Repository {
	return &PostgresNotificationRepository{db: db}
}

// Create implements notification.Repository.Create.
func (r *PostgresNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO notifications (id, title, "desc", type, store_id, product_id, read, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		n.ID, n.Title, n.Desc, n.Type, n.StoreID, n.ProductID, n.Read, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating notification: %w", err)
	}
	return nil
}

// ExistsUnread implements notification.Repository.ExistsUnread.
func (r *PostgresNotificationRepository) ExistsUnread(ctx context.Context, t notification.Type, storeID, productID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM notifications
			WHERE type = $1 AND store_id = $2 AND product_id = $3 AND read = false
		)`,
		t, storeID, productID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking notification: %w", err)
	}
	return exists, nil
}

// List implements notification.Repository.List.
func (r *PostgresNotificationRepository) List(ctx context.Context, limit, offset int) ([]notification.Notification, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notifications`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting notifications: %w", err)
	}

	limit, offset = normalizePage(limit, offset)
	rows, err := r.db.Query(ctx,
		`SELECT id, title, "desc", type, store_id, product_id, read, created_at
		 FROM notifications ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var n notification.Notification
		err := rows.Scan(&n.ID, &n.Title, &n.Desc, &n.Type, &n.StoreID,
			&n.ProductID, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading notifications: %w", err)
	}
	return notifications, total, nil
}

// MarkRead implements notification.Repository.MarkRead.
func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE notifications SET read = true, read_at = $1 WHERE id = $2`,
		time.Now(), id)
	if err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
