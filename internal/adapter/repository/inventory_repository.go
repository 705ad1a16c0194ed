package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/inventory"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/movement"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/product"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Repository-level errors for inventory records.
var (
	ErrInventoryNotFound  = errors.New("inventory not found")
	ErrInventoryDuplicate = errors.New("inventory already exists for this product and store")
	ErrProductNotFound    = errors.New("product not found")
	ErrStoreNotFound      = errors.New("store not found")
)

const inventoryColumns = `id, product_id, store_id, stock, reserved_stock, available_stock,
	min_stock, max_stock, cost_price, average_cost_price, is_active, created_at, updated_at`

// PostgresInventoryRepository implements inventory.Repository on PostgreSQL.
//
// Every mutator runs in one transaction and locks the inventory row with
// SELECT ... FOR UPDATE before applying the domain transition, so concurrent
// operations on the same (product, store) pair serialize instead of losing
// updates. The matching ledger entry is inserted before the commit.
type PostgresInventoryRepository struct {
	db       *pgxpool.Pool
	products product.Repository
	stores   store.Repository
}

// NewPostgresInventoryRepository creates a new PostgresInventoryRepository.
func NewPostgresInventoryRepository(db *pgxpool.Pool, products product.Repository, stores store.Repository) inventory.Repository {
	return &PostgresInventoryRepository{
		db:       db,
		products: products,
		stores:   stores,
	}
}

// Create implements inventory.Repository.Create.
func (r *PostgresInventoryRepository) Create(ctx context.Context, rec *inventory.Record) error {
	exists, err := r.products.Exists(ctx, rec.ProductID)
	if err != nil {
		return fmt.Errorf("checking product: %w", err)
	}
	if !exists {
		return ErrProductNotFound
	}

	exists, err = r.stores.Exists(ctx, rec.StoreID)
	if err != nil {
		return fmt.Errorf("checking store: %w", err)
	}
	if !exists {
		return ErrStoreNotFound
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO inventories (`+inventoryColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		rec.ID, rec.ProductID, rec.StoreID, rec.Stock, rec.ReservedStock,
		rec.AvailableStock, rec.MinStock, rec.MaxStock, rec.CostPrice,
		rec.AverageCostPrice, rec.IsActive, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrInventoryDuplicate
		}
		return fmt.Errorf("creating inventory: %w", err)
	}

	m, err := movement.New(rec.ProductID, rec.StoreID, movement.TypePurchase,
		rec.Stock, 0, rec.Stock, "", "Initial stock creation", nil)
	if err != nil {
		return err
	}
	if err := insertMovementTx(ctx, tx, m); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// FindByProductAndStore implements inventory.Repository.FindByProductAndStore.
func (r *PostgresInventoryRepository) FindByProductAndStore(ctx context.Context, productID, storeID string) (*inventory.Record, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+inventoryColumns+` FROM inventories
		 WHERE product_id = $1 AND store_id = $2`,
		productID, storeID)

	rec, err := scanInventory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInventoryNotFound
		}
		return nil, fmt.Errorf("finding inventory: %w", err)
	}
	return rec, nil
}

// ApplyMovement implements inventory.Repository.ApplyMovement. ADJUSTMENT
// sets stock to qty absolutely, not as a delta; see inventory.Record.Apply.
func (r *PostgresInventoryRepository) ApplyMovement(ctx context.Context, productID, storeID string, t movement.Type, qty int, in inventory.MovementInput) (*inventory.Record, error) {
	var rec *inventory.Record

	err := r.withTx(ctx, func(tx pgx.Tx) error {
		var err error
		rec, err = lockInventoryTx(ctx, tx, productID, storeID)
		if err != nil {
			return err
		}

		previous, err := rec.Apply(t, qty)
		if err != nil {
			return err
		}

		if err := saveInventoryStockTx(ctx, tx, rec); err != nil {
			return err
		}

		m, err := movement.New(productID, storeID, t, qty, previous, rec.Stock, in.Reference, in.Notes, in.UserID)
		if err != nil {
			return err
		}
		return insertMovementTx(ctx, tx, m)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Reserve implements inventory.Repository.Reserve. Reservations split stock
// into reserved and available; no ledger entry is written.
func (r *PostgresInventoryRepository) Reserve(ctx context.Context, productID, storeID string, qty int) (*inventory.Record, error) {
	var rec *inventory.Record

	err := r.withTx(ctx, func(tx pgx.Tx) error {
		var err error
		rec, err = lockInventoryTx(ctx, tx, productID, storeID)
		if err != nil {
			return err
		}
		if err := rec.ReserveStock(qty); err != nil {
			return err
		}
		return saveInventoryStockTx(ctx, tx, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Release implements inventory.Repository.Release.
func (r *PostgresInventoryRepository) Release(ctx context.Context, productID, storeID string, qty int) (*inventory.Record, error) {
	var rec *inventory.Record

	err := r.withTx(ctx, func(tx pgx.Tx) error {
		var err error
		rec, err = lockInventoryTx(ctx, tx, productID, storeID)
		if err != nil {
			return err
		}
		if err := rec.ReleaseStock(qty); err != nil {
			return err
		}
		return saveInventoryStockTx(ctx, tx, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// CheckAvailability implements inventory.Repository.CheckAvailability.
func (r *PostgresInventoryRepository) CheckAvailability(ctx context.Context, productID, storeID string, qty int) (bool, error) {
	rec, err := r.FindByProductAndStore(ctx, productID, storeID)
	if err != nil {
		return false, err
	}
	return rec.HasAvailable(qty), nil
}

// List implements inventory.Repository.List.
func (r *PostgresInventoryRepository) List(ctx context.Context, filter inventory.Filter) ([]inventory.Record, int, error) {
	where := []string{"is_active = true"}
	args := []interface{}{}

	if filter.StoreID != "" {
		args = append(args, filter.StoreID)
		where = append(where, fmt.Sprintf("store_id = $%d", len(args)))
	}
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		where = append(where, fmt.Sprintf("product_id = $%d", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM inventories WHERE "+whereClause, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("counting inventories: %w", err)
	}

	limit, offset := normalizePage(filter.Limit, filter.Offset)
	args = append(args, limit, offset)
	rows, err := r.db.Query(ctx,
		`SELECT `+inventoryColumns+` FROM inventories WHERE `+whereClause+
			fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing inventories: %w", err)
	}
	defer rows.Close()

	records, err := collectInventories(rows)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// ListByProduct implements inventory.Repository.ListByProduct.
func (r *PostgresInventoryRepository) ListByProduct(ctx context.Context, productID string) ([]inventory.Record, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+inventoryColumns+` FROM inventories
		 WHERE product_id = $1 AND is_active = true
		 ORDER BY created_at DESC`,
		productID)
	if err != nil {
		return nil, fmt.Errorf("listing inventories by product: %w", err)
	}
	defer rows.Close()

	return collectInventories(rows)
}

// ListLowStock implements inventory.Repository.ListLowStock.
func (r *PostgresInventoryRepository) ListLowStock(ctx context.Context, storeID string) ([]inventory.Record, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventories
		 WHERE is_active = true AND stock <= min_stock`
	args := []interface{}{}

	if storeID != "" {
		query += " AND store_id = $1"
		args = append(args, storeID)
	}
	query += " ORDER BY stock ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing low stock inventories: %w", err)
	}
	defer rows.Close()

	return collectInventories(rows)
}

// UpdateCost implements inventory.Repository.UpdateCost.
func (r *PostgresInventoryRepository) UpdateCost(ctx context.Context, productID, storeID string, costPrice, averageCostPrice decimal.Decimal) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE inventories SET cost_price = $1, average_cost_price = $2, updated_at = $3
		 WHERE product_id = $4 AND store_id = $5`,
		costPrice, averageCostPrice, time.Now(), productID, storeID)
	if err != nil {
		return fmt.Errorf("updating inventory cost: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrInventoryNotFound
	}
	return nil
}

// Deactivate implements inventory.Repository.Deactivate.
func (r *PostgresInventoryRepository) Deactivate(ctx context.Context, productID, storeID string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE inventories SET is_active = false, updated_at = $1
		 WHERE product_id = $2 AND store_id = $3`,
		time.Now(), productID, storeID)
	if err != nil {
		return fmt.Errorf("deactivating inventory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrInventoryNotFound
	}
	return nil
}

// withTx runs fn in a transaction, committing on success.
func (r *PostgresInventoryRepository) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// lockInventoryTx fetches and row-locks the record for a (product, store)
// pair inside tx. The lock is held until the transaction ends.
func lockInventoryTx(ctx context.Context, tx pgx.Tx, productID, storeID string) (*inventory.Record, error) {
	row := tx.QueryRow(ctx,
		`SELECT `+inventoryColumns+` FROM inventories
		 WHERE product_id = $1 AND store_id = $2
		 FOR UPDATE`,
		productID, storeID)

	rec, err := scanInventory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInventoryNotFound
		}
		return nil, fmt.Errorf("locking inventory: %w", err)
	}
	return rec, nil
}

// saveInventoryStockTx persists the stock counters of a locked record.
func saveInventoryStockTx(ctx context.Context, tx pgx.Tx, rec *inventory.Record) error {
	_, err := tx.Exec(ctx,
		`UPDATE inventories
		 SET stock = $1, reserved_stock = $2, available_stock = $3, updated_at = $4
		 WHERE id = $5`,
		rec.Stock, rec.ReservedStock, rec.AvailableStock, rec.UpdatedAt, rec.ID)
	if err != nil {
		return fmt.Errorf("saving inventory: %w", err)
	}
	return nil
}

// insertInventoryTx persists a brand new record inside tx. Used by Transfer
// to lazily create the destination side.
func insertInventoryTx(ctx context.Context, tx pgx.Tx, rec *inventory.Record) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO inventories (`+inventoryColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		rec.ID, rec.ProductID, rec.StoreID, rec.Stock, rec.ReservedStock,
		rec.AvailableStock, rec.MinStock, rec.MaxStock, rec.CostPrice,
		rec.AverageCostPrice, rec.IsActive, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating inventory: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInventory(row rowScanner) (*inventory.Record, error) {
	var rec inventory.Record
	err := row.Scan(
		&rec.ID, &rec.ProductID, &rec.StoreID, &rec.Stock, &rec.ReservedStock,
		&rec.AvailableStock, &rec.MinStock, &rec.MaxStock, &rec.CostPrice,
		&rec.AverageCostPrice, &rec.IsActive, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func collectInventories(rows pgx.Rows) ([]inventory.Record, error) {
	var records []inventory.Record
	for rows.Next() {
		rec, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning inventory: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading inventories: %w", err)
	}
	return records, nil
}

// normalizePage applies the default page size and caps.
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
