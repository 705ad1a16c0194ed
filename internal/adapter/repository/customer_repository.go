package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/customer"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Repository-level errors for customers.
var ErrCustomerNotFound = errors.New("customer not found")

const customerColumns = `id, name, phone, address, total_due, total_purchases, created_at, updated_at`

// PostgresCustomerRepository implements customer.Repository on PostgreSQL.
type PostgresCustomerRepository struct {
	db *pgxpool.Pool
}

// NewPostgresCustomerRepository creates a new PostgresCustomerRepository.
func NewPostgresCustomerRepository(db *pgxpool.Pool) customer.Repository {
	return &PostgresCustomerRepository{db: db}
}

// Create implements customer.Repository.Create.
func (r *PostgresCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO customers (`+customerColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Name, c.Phone, c.Address, c.TotalDue, c.TotalPurchases,
		c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating customer: %w", err)
	}
	return nil
}

// FindByID implements customer.Repository.FindByID.
func (r *PostgresCustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	var c customer.Customer
	err := r.db.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id).Scan(
		&c.ID, &c.Name, &c.Phone, &c.Address, &c.TotalDue, &c.TotalPurchases,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("finding customer: %w", err)
	}
	return &c, nil
}

// UpdateDueAndPurchase implements customer.Repository.UpdateDueAndPurchase.
func (r *PostgresCustomerRepository) UpdateDueAndPurchase(ctx context.Context, customerID string, dueAmount, totalBillAmount decimal.Decimal) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE customers
		 SET total_due = $1, total_purchases = total_purchases + $2, updated_at = $3
		 WHERE id = $4`,
		dueAmount, totalBillAmount, time.Now(), customerID)
	if err != nil {
		return fmt.Errorf("updating customer totals: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// List implements customer.Repository.List.
func (r *PostgresCustomerRepository) List(ctx context.Context, limit, offset int) ([]customer.Customer, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting customers: %w", err)
	}

	limit, offset = normalizePage(limit, offset)
	rows, err := r.db.Query(ctx,
		`SELECT `+customerColumns+` FROM customers
		 ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	var customers []customer.Customer
	for rows.Next() {
		var c customer.Customer
		err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.TotalDue,
			&c.TotalPurchases, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading customers: %w", err)
	}
	return customers, total, nil
}
