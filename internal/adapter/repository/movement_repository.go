package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/movement"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const movementColumns = `id, type, quantity, previous_stock, new_stock, reference, notes,
	product_id, store_id, user_id, created_at`

// PostgresMovementRepository implements movement.Repository on PostgreSQL.
// The stock_movements table is append-only; this repository exposes no update
// or delete.
type PostgresMovementRepository struct {
	db *pgxpool.Pool
}

// NewPostgresMovementRepository creates a new PostgresMovementRepository.
func NewPostgresMovementRepository(db *pgxpool.Pool) movement.Repository {
	return &PostgresMovementRepository{db: db}
}

// Create implements movement.Repository.Create.
func (r *PostgresMovementRepository) Create(ctx context.Context, m *movement.Movement) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO stock_movements (`+movementColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		m.ID, m.Type, m.Quantity, m.PreviousStock, m.NewStock,
		m.Reference, m.Notes, m.ProductID, m.StoreID, m.UserID, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating stock movement: %w", err)
	}
	return nil
}

// List implements movement.Repository.List.
func (r *PostgresMovementRepository) List(ctx context.Context, filter movement.Filter) ([]movement.Movement, int, error) {
	where := []string{"1=1"}
	args := []interface{}{}

	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		where = append(where, fmt.Sprintf("product_id = $%d", len(args)))
	}
	if filter.StoreID != "" {
		args = append(args, filter.StoreID)
		where = append(where, fmt.Sprintf("store_id = $%d", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM stock_movements WHERE "+whereClause, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("counting stock movements: %w", err)
	}

	limit, offset := normalizePage(filter.Limit, filter.Offset)
	args = append(args, limit, offset)
	rows, err := r.db.Query(ctx,
		`SELECT `+movementColumns+` FROM stock_movements WHERE `+whereClause+
			fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing stock movements: %w", err)
	}
	defer rows.Close()

	var movements []movement.Movement
	for rows.Next() {
		var m movement.Movement
		err := rows.Scan(&m.ID, &m.Type, &m.Quantity, &m.PreviousStock,
			&m.NewStock, &m.Reference, &m.Notes, &m.ProductID, &m.StoreID,
			&m.UserID, &m.CreatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning stock movement: %w", err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading stock movements: %w", err)
	}

	return movements, total, nil
}

// insertMovementTx appends a ledger entry inside an open transaction so the
// entry commits atomically with the stock change it records.
func insertMovementTx(ctx context.Context, tx pgx.Tx, m *movement.Movement) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO stock_movements (`+movementColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		m.ID, m.Type, m.Quantity, m.PreviousStock, m.NewStock,
		m.Reference, m.Notes, m.ProductID, m.StoreID, m.UserID, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating stock movement: %w", err)
	}
	return nil
}
