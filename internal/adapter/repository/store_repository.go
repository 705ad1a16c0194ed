package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrStoreDuplicateCode reports a branch code collision.
var ErrStoreDuplicateCode = errors.New("store with the same code already exists")

const storeColumns = `id, store_code, name, address, phone, status, created_at, updated_at`

// PostgresStoreRepository implements store.Repository on PostgreSQL.
type PostgresStoreRepository struct {
	db *pgxpool.Pool
}

// NewPostgresStoreRepository creates a new PostgresStoreRepository.
func NewPostgresStoreRepository(db *pgxpool.Pool) store.Repository {
	return &PostgresStoreRepository{db: db}
}

// Create implements store.Repository.Create.
func (r *PostgresStoreRepository) Create(ctx context.Context, s *store.Store) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO stores (`+storeColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.StoreCode, s.Name, s.Address, s.Phone, s.Status,
		s.CreatedAt, s.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrStoreDuplicateCode
		}
		return fmt.Errorf("creating store: %w", err)
	}
	return nil
}

// FindByID implements store.Repository.FindByID.
func (r *PostgresStoreRepository) FindByID(ctx context.Context, id string) (*store.Store, error) {
	return r.findOne(ctx, `id = $1`, id)
}

// FindByCode implements store.Repository.FindByCode.
func (r *PostgresStoreRepository) FindByCode(ctx context.Context, code string) (*store.Store, error) {
	return r.findOne(ctx, `store_code = $1`, code)
}

func (r *PostgresStoreRepository) findOne(ctx context.Context, where string, arg interface{}) (*store.Store, error) {
	var s store.Store
	err := r.db.QueryRow(ctx,
		`SELECT `+storeColumns+` FROM stores WHERE `+where, arg).Scan(
		&s.ID, &s.StoreCode, &s.Name, &s.Address, &s.Phone, &s.Status,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("finding store: %w", err)
	}
	return &s, nil
}

// Exists implements store.Repository.Exists.
func (r *PostgresStoreRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM stores WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking store: %w", err)
	}
	return exists, nil
}

// List implements store.Repository.List.
func (r *PostgresStoreRepository) List(ctx context.Context, limit, offset int) ([]store.Store, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM stores`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting stores: %w", err)
	}

	limit, offset = normalizePage(limit, offset)
	rows, err := r.db.Query(ctx,
		`SELECT `+storeColumns+` FROM stores
		 ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listing stores: %w", err)
	}
	defer rows.Close()

	var stores []store.Store
	for rows.Next() {
		var s store.Store
		err := rows.Scan(&s.ID, &s.StoreCode, &s.Name, &s.Address, &s.Phone,
			&s.Status, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning store: %w", err)
		}
		stores = append(stores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading stores: %w", err)
	}
	return stores, total, nil
}
