package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/staff"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrStaffNotFound reports a missing staff record.
var ErrStaffNotFound = errors.New("staff not found")

const staffColumns = `id, account_id, name, phone, store_id, created_at, updated_at`

// PostgresStaffRepository implements staff.Repository on PostgreSQL.
type PostgresStaffRepository struct {
	db *pgxpool.Pool
}

// NewPostgresStaffRepository creates a new PostgresStaffRepository.
func NewPostgresStaffRepository(db *pgxpool.Pool) staff.Repository {
	return &PostgresStaffRepository{db: db}
}

// Create implements staff.Repository.Create.
func (r *PostgresStaffRepository) Create(ctx context.Context, s *staff.Staff) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO staff_details (`+staffColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.AccountID, s.Name, s.Phone, s.StoreID, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating staff: %w", err)
	}
	return nil
}

// FindByID implements staff.Repository.FindByID.
func (r *PostgresStaffRepository) FindByID(ctx context.Context, id string) (*staff.Staff, error) {
	return r.findOne(ctx, `id = $1`, id)
}

// FindByAccountID implements staff.Repository.FindByAccountID.
func (r *PostgresStaffRepository) FindByAccountID(ctx context.Context, accountID string) (*staff.Staff, error) {
	return r.findOne(ctx, `account_id = $1`, accountID)
}

func (r *PostgresStaffRepository) findOne(ctx context.Context, where string, arg interface{}) (*staff.Staff, error) {
	var s staff.Staff
	err := r.db.QueryRow(ctx,
		`SELECT `+staffColumns+` FROM staff_details WHERE `+where, arg).Scan(
		&s.ID, &s.AccountID, &s.Name, &s.Phone, &s.StoreID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("finding staff: %w", err)
	}
	return &s, nil
}

// List implements staff.Repository.List.
func (r *PostgresStaffRepository) List(ctx context.Context, limit, offset int) ([]staff.Staff, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM staff_details`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting staff: %w", err)
	}

	limit, offset = normalizePage(limit, offset)
	rows, err := r.db.Query(ctx,
		`SELECT `+staffColumns+` FROM staff_details
		 ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listing staff: %w", err)
	}
	defer rows.Close()

	var staffs []staff.Staff
	for rows.Next() {
		var s staff.Staff
		err := rows.Scan(&s.ID, &s.AccountID, &s.Name, &s.Phone, &s.StoreID,
			&s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning staff: %w", err)
		}
		staffs = append(staffs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading staff: %w", err)
	}
	return staffs, total, nil
}
