package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/product"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrProductDuplicateSKU reports a catalog SKU collision.
var ErrProductDuplicateSKU = errors.New("product with the same sku already exists")

const productColumns = `id, sku, name, purchase_price, selling_price, status, created_at, updated_at`

// PostgresProductRepository implements product.Repository on PostgreSQL.
type PostgresProductRepository struct {
	db *pgxpool.Pool
}

// NewPostgresProductRepository creates a new PostgresProductRepository.
func NewPostgresProductRepository(db *pgxpool.Pool) product.Repository {
	return &PostgresProductRepository{db: db}
}

// Create implements product.Repository.Create.
func (r *PostgresProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (`+productColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.SKU, p.Name, p.PurchasePrice, p.SellingPrice, p.Status,
		p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateSKU
		}
		return fmt.Errorf("creating product: %w", err)
	}
	return nil
}

// FindByID implements product.Repository.FindByID.
func (r *PostgresProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	var p product.Product
	err := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id).Scan(
		&p.ID, &p.SKU, &p.Name, &p.PurchasePrice, &p.SellingPrice, &p.Status,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("finding product: %w", err)
	}
	return &p, nil
}

// Exists implements product.Repository.Exists.
func (r *PostgresProductRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking product: %w", err)
	}
	return exists, nil
}

// List implements product.Repository.List.
func (r *PostgresProductRepository) List(ctx context.Context, limit, offset int) ([]product.Product, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting products: %w", err)
	}

	limit, offset = normalizePage(limit, offset)
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products
		 ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []product.Product
	for rows.Next() {
		var p product.Product
		err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.PurchasePrice,
			&p.SellingPrice, &p.Status, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading products: %w", err)
	}
	return products, total, nil
}
