package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/price"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PostgresPriceRepository implements price.Repository on PostgreSQL.
type PostgresPriceRepository struct {
	db *pgxpool.Pool
}

// NewPostgresPriceRepository creates a new PostgresPriceRepository.
func NewPostgresPriceRepository(db *pgxpool.Pool) price.Repository {
	return &PostgresPriceRepository{db: db}
}

// Upsert implements price.Repository.Upsert.
func (r *PostgresPriceRepository) Upsert(ctx context.Context, p *price.ProductPrice) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO product_prices (id, product_id, price_group_id, price, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (product_id, price_group_id)
		 DO UPDATE SET price = EXCLUDED.price, updated_at = EXCLUDED.updated_at`,
		p.ID, p.ProductID, p.PriceGroupID, p.Price, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting product price: %w", err)
	}
	return nil
}

// GetPrice implements price.Repository.GetPrice.
func (r *PostgresPriceRepository) GetPrice(ctx context.Context, productID, priceGroupID string) (decimal.Decimal, error) {
	var p decimal.Decimal
	err := r.db.QueryRow(ctx,
		`SELECT price FROM product_prices WHERE product_id = $1 AND price_group_id = $2`,
		productID, priceGroupID).Scan(&p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, price.ErrPriceNotFound
		}
		return decimal.Zero, fmt.Errorf("finding product price: %w", err)
	}
	return p, nil
}
