package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/bill"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/movement"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/pkg/billnumber"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Repository-level errors for bills.
var (
	ErrBillNotFound        = errors.New("bill not found")
	ErrBillDuplicateNumber = errors.New("bill number already exists")
)

const billColumns = `b.id, b.bill_number, b.subtotal, b.tax_amount, b.discount_amount,
	b.discount_percent, b.total, b.paid_amount, b.due_amount, b.prev_due_paid_amount,
	b.previous_due, b.total_bill_amount, b.status, b.note, b.payment_method,
	b.customer_id, b.store_id, b.staff_id, b.price_group_id, b.created_at, b.updated_at`

// PostgresBillRepository implements bill.Repository on PostgreSQL.
//
// Each settlement operation runs in one transaction: bill rows, per-item
// inventory mutations with their ledger entries, and the customer due update
// all commit or roll back together. Inventory rows are serialized through the
// same FOR UPDATE locks the inventory repository uses.
type PostgresBillRepository struct {
	db *pgxpool.Pool
}

// NewPostgresBillRepository creates a new PostgresBillRepository.
func NewPostgresBillRepository(db *pgxpool.Pool) bill.Repository {
	return &PostgresBillRepository{db: db}
}

// CreateSettled implements bill.Repository.CreateSettled.
func (r *PostgresBillRepository) CreateSettled(ctx context.Context, b *bill.Bill) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		number, err := allocateBillNumberTx(ctx, tx, b.StoreID, b.CreatedAt)
		if err != nil {
			return err
		}
		b.BillNumber = number

		if err := insertBillTx(ctx, tx, b); err != nil {
			return err
		}

		for i := range b.Items {
			if err := sellItemTx(ctx, tx, b, &b.Items[i]); err != nil {
				return err
			}
		}

		if err := insertBillChildrenTx(ctx, tx, b); err != nil {
			return err
		}

		if b.CustomerID != nil {
			return updateCustomerTotalsTx(ctx, tx, *b.CustomerID, b.DueAmount, b.TotalBillAmount)
		}
		return nil
	})
}

// CreateHold implements bill.Repository.CreateHold.
func (r *PostgresBillRepository) CreateHold(ctx context.Context, b *bill.Bill) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		number, err := allocateBillNumberTx(ctx, tx, b.StoreID, b.CreatedAt)
		if err != nil {
			return err
		}
		b.BillNumber = number

		if err := insertBillTx(ctx, tx, b); err != nil {
			return err
		}

		for i := range b.Items {
			item := &b.Items[i]
			rec, err := lockInventoryTx(ctx, tx, item.ProductID, b.StoreID)
			if err != nil {
				return err
			}
			if err := rec.ReserveStock(item.Quantity); err != nil {
				return err
			}
			if err := saveInventoryStockTx(ctx, tx, rec); err != nil {
				return err
			}
		}

		return insertBillChildrenTx(ctx, tx, b)
	})
}

// SettleHold implements bill.Repository.SettleHold. For every item the
// reservation is released before the SALE is applied, so the quantity is
// never counted as both reserved and sold.
func (r *PostgresBillRepository) SettleHold(ctx context.Context, billID string, paidAmount decimal.Decimal, method bill.PaymentMethod) (*bill.Bill, error) {
	var settled *bill.Bill

	err := r.withTx(ctx, func(tx pgx.Tx) error {
		b, err := lockBillTx(ctx, tx, billID)
		if err != nil {
			return err
		}
		if !b.IsHold() {
			return bill.ErrNotHold
		}

		b.PaidAmount = paidAmount
		b.DueAmount = bill.ComputeDue(b.Total, paidAmount, decimal.Zero)
		b.Status = bill.StatusForDue(b.DueAmount)
		b.PaymentMethod = method
		b.UpdatedAt = time.Now()

		_, err = tx.Exec(ctx,
			`UPDATE bills
			 SET paid_amount = $1, due_amount = $2, status = $3, payment_method = $4, updated_at = $5
			 WHERE id = $6`,
			b.PaidAmount, b.DueAmount, b.Status, b.PaymentMethod, b.UpdatedAt, b.ID)
		if err != nil {
			return fmt.Errorf("updating bill: %w", err)
		}

		items, err := loadBillItemsTx(ctx, tx, b.ID)
		if err != nil {
			return err
		}
		b.Items = items

		for i := range b.Items {
			item := &b.Items[i]
			rec, err := lockInventoryTx(ctx, tx, item.ProductID, b.StoreID)
			if err != nil {
				return err
			}
			if err := rec.ReleaseStock(item.Quantity); err != nil {
				return err
			}
			if err := saveInventoryStockTx(ctx, tx, rec); err != nil {
				return err
			}

			if err := sellItemTx(ctx, tx, b, item); err != nil {
				return err
			}
		}

		if b.CustomerID != nil {
			if err := updateCustomerTotalsTx(ctx, tx, *b.CustomerID, b.DueAmount, b.TotalBillAmount); err != nil {
				return err
			}
		}

		settled = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return settled, nil
}

// CancelHold implements bill.Repository.CancelHold.
func (r *PostgresBillRepository) CancelHold(ctx context.Context, billID string) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		b, err := lockBillTx(ctx, tx, billID)
		if err != nil {
			return err
		}
		if !b.IsHold() {
			return bill.ErrNotHold
		}

		items, err := loadBillItemsTx(ctx, tx, b.ID)
		if err != nil {
			return err
		}

		for i := range items {
			rec, err := lockInventoryTx(ctx, tx, items[i].ProductID, b.StoreID)
			if err != nil {
				return err
			}
			if err := rec.ReleaseStock(items[i].Quantity); err != nil {
				return err
			}
			if err := saveInventoryStockTx(ctx, tx, rec); err != nil {
				return err
			}
		}

		// Items and taxes go with the bill by ON DELETE CASCADE.
		if _, err := tx.Exec(ctx, `DELETE FROM bills WHERE id = $1`, b.ID); err != nil {
			return fmt.Errorf("deleting bill: %w", err)
		}
		return nil
	})
}

// FindByID implements bill.Repository.FindByID.
func (r *PostgresBillRepository) FindByID(ctx context.Context, id string) (*bill.Detail, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+billColumns+`,
			COALESCE(c.name, ''), COALESCE(c.phone, ''), COALESCE(c.address, ''),
			COALESCE(s.name, ''), COALESCE(s.address, ''), COALESCE(s.phone, ''),
			COALESCE(sd.name, '')
		 FROM bills b
		 LEFT JOIN customers c ON c.id = b.customer_id
		 LEFT JOIN stores s ON s.id = b.store_id
		 LEFT JOIN staff_details sd ON sd.account_id = b.staff_id
		 WHERE b.id = $1`,
		id)

	var d bill.Detail
	err := row.Scan(
		&d.ID, &d.BillNumber, &d.Subtotal, &d.TaxAmount, &d.DiscountAmount,
		&d.DiscountPercent, &d.Total, &d.PaidAmount, &d.DueAmount,
		&d.PrevDuePaidAmount, &d.PreviousDue, &d.TotalBillAmount, &d.Status,
		&d.Note, &d.PaymentMethod, &d.CustomerID, &d.StoreID, &d.StaffID,
		&d.PriceGroupID, &d.CreatedAt, &d.UpdatedAt,
		&d.CustomerName, &d.CustomerPhone, &d.CustomerAddress,
		&d.StoreName, &d.StoreAddress, &d.StorePhone, &d.StaffName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBillNotFound
		}
		return nil, fmt.Errorf("finding bill: %w", err)
	}

	items, err := r.loadItems(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	d.Items = items

	taxes, err := r.loadTaxes(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	d.Taxes = taxes

	return &d, nil
}

// List implements bill.Repository.List.
func (r *PostgresBillRepository) List(ctx context.Context, filter bill.Filter) ([]bill.Detail, int, error) {
	where := []string{"1=1"}
	args := []interface{}{}

	if filter.StoreID != "" {
		args = append(args, filter.StoreID)
		where = append(where, fmt.Sprintf("b.store_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("b.status = $%d", len(args)))
	}
	if filter.Keyword != "" {
		args = append(args, "%"+filter.Keyword+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(
			`(b.bill_number ILIKE $%d OR b.status ILIKE $%d OR b.id::text ILIKE $%d
			  OR COALESCE(c.name, '') ILIKE $%d OR COALESCE(s.name, '') ILIKE $%d)`,
			n, n, n, n, n))
	}
	if filter.Date != nil {
		start := time.Date(filter.Date.Year(), filter.Date.Month(), filter.Date.Day(), 0, 0, 0, 0, filter.Date.Location())
		args = append(args, start)
		where = append(where, fmt.Sprintf("b.created_at >= $%d", len(args)))
		args = append(args, start.AddDate(0, 0, 1))
		where = append(where, fmt.Sprintf("b.created_at < $%d", len(args)))
	}

	whereClause := strings.Join(where, " AND ")
	joins := ` FROM bills b
		 LEFT JOIN customers c ON c.id = b.customer_id
		 LEFT JOIN stores s ON s.id = b.store_id
		 LEFT JOIN staff_details sd ON sd.account_id = b.staff_id `

	var total int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*)"+joins+"WHERE "+whereClause, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("counting bills: %w", err)
	}

	limit, offset := normalizePage(filter.Limit, filter.Offset)
	args = append(args, limit, offset)
	rows, err := r.db.Query(ctx,
		`SELECT `+billColumns+`,
			COALESCE(c.name, ''), COALESCE(c.phone, ''), COALESCE(c.address, ''),
			COALESCE(s.name, ''), COALESCE(s.address, ''), COALESCE(s.phone, ''),
			COALESCE(sd.name, '')`+joins+`WHERE `+whereClause+
			fmt.Sprintf(" ORDER BY b.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing bills: %w", err)
	}
	defer rows.Close()

	var details []bill.Detail
	for rows.Next() {
		var d bill.Detail
		err := rows.Scan(
			&d.ID, &d.BillNumber, &d.Subtotal, &d.TaxAmount, &d.DiscountAmount,
			&d.DiscountPercent, &d.Total, &d.PaidAmount, &d.DueAmount,
			&d.PrevDuePaidAmount, &d.PreviousDue, &d.TotalBillAmount, &d.Status,
			&d.Note, &d.PaymentMethod, &d.CustomerID, &d.StoreID, &d.StaffID,
			&d.PriceGroupID, &d.CreatedAt, &d.UpdatedAt,
			&d.CustomerName, &d.CustomerPhone, &d.CustomerAddress,
			&d.StoreName, &d.StoreAddress, &d.StorePhone, &d.StaffName)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning bill: %w", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading bills: %w", err)
	}

	for i := range details {
		items, err := r.loadItems(ctx, details[i].ID)
		if err != nil {
			return nil, 0, err
		}
		details[i].Items = items
	}

	return details, total, nil
}

func (r *PostgresBillRepository) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
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

func (r *PostgresBillRepository) loadItems(ctx context.Context, billID string) ([]bill.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT i.id, i.bill_id, i.product_id, i.quantity, i.unit_price, i.subtotal, i.total,
			COALESCE(p.name, '')
		 FROM bill_items i
		 LEFT JOIN products p ON p.id = i.product_id
		 WHERE i.bill_id = $1
		 ORDER BY i.id`,
		billID)
	if err != nil {
		return nil, fmt.Errorf("listing bill items: %w", err)
	}
	defer rows.Close()

	var items []bill.Item
	for rows.Next() {
		var it bill.Item
		err := rows.Scan(&it.ID, &it.BillID, &it.ProductID, &it.Quantity,
			&it.UnitPrice, &it.Subtotal, &it.Total, &it.ProductName)
		if err != nil {
			return nil, fmt.Errorf("scanning bill item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PostgresBillRepository) loadTaxes(ctx context.Context, billID string) ([]bill.Tax, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, bill_id, tax_rate_id, tax_name, tax_percent, tax_amount
		 FROM bill_taxes WHERE bill_id = $1 ORDER BY id`,
		billID)
	if err != nil {
		return nil, fmt.Errorf("listing bill taxes: %w", err)
	}
	defer rows.Close()

	var taxes []bill.Tax
	for rows.Next() {
		var t bill.Tax
		err := rows.Scan(&t.ID, &t.BillID, &t.TaxRateID, &t.TaxName, &t.TaxPercent, &t.TaxAmount)
		if err != nil {
			return nil, fmt.Errorf("scanning bill tax: %w", err)
		}
		taxes = append(taxes, t)
	}
	return taxes, rows.Err()
}

// allocateBillNumberTx issues the next store-scoped bill number for the day
// from the bill_number_serials table. The upsert is atomic, so two concurrent
// checkouts in the same store get distinct serials.
func allocateBillNumberTx(ctx context.Context, tx pgx.Tx, storeID string, at time.Time) (string, error) {
	var branchCode string
	err := tx.QueryRow(ctx, `SELECT store_code FROM stores WHERE id = $1`, storeID).Scan(&branchCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrStoreNotFound
		}
		return "", fmt.Errorf("finding store code: %w", err)
	}

	var serial int
	err = tx.QueryRow(ctx,
		`INSERT INTO bill_number_serials (store_id, serial_date, last_serial)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (store_id, serial_date)
		 DO UPDATE SET last_serial = bill_number_serials.last_serial + 1
		 RETURNING last_serial`,
		storeID, at.Format("2006-01-02"), billnumber.InitialSerial).Scan(&serial)
	if err != nil {
		return "", fmt.Errorf("allocating bill serial: %w", err)
	}

	return billnumber.Format(branchCode, at, serial), nil
}

func insertBillTx(ctx context.Context, tx pgx.Tx, b *bill.Bill) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO bills (
			id, bill_number, subtotal, tax_amount, discount_amount, discount_percent,
			total, paid_amount, due_amount, prev_due_paid_amount, previous_due,
			total_bill_amount, status, note, payment_method, customer_id, store_id,
			staff_id, price_group_id, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, $21
		)`,
		b.ID, b.BillNumber, b.Subtotal, b.TaxAmount, b.DiscountAmount,
		b.DiscountPercent, b.Total, b.PaidAmount, b.DueAmount,
		b.PrevDuePaidAmount, b.PreviousDue, b.TotalBillAmount, b.Status,
		b.Note, b.PaymentMethod, b.CustomerID, b.StoreID, b.StaffID,
		b.PriceGroupID, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrBillDuplicateNumber
		}
		return fmt.Errorf("creating bill: %w", err)
	}
	return nil
}

func insertBillChildrenTx(ctx context.Context, tx pgx.Tx, b *bill.Bill) error {
	for i := range b.Items {
		it := &b.Items[i]
		_, err := tx.Exec(ctx,
			`INSERT INTO bill_items (id, bill_id, product_id, quantity, unit_price, subtotal, total)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			it.ID, b.ID, it.ProductID, it.Quantity, it.UnitPrice, it.Subtotal, it.Total)
		if err != nil {
			return fmt.Errorf("creating bill item: %w", err)
		}
	}

	for i := range b.Taxes {
		t := &b.Taxes[i]
		_, err := tx.Exec(ctx,
			`INSERT INTO bill_taxes (id, bill_id, tax_rate_id, tax_name, tax_percent, tax_amount)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			t.ID, b.ID, t.TaxRateID, t.TaxName, t.TaxPercent, t.TaxAmount)
		if err != nil {
			return fmt.Errorf("creating bill tax: %w", err)
		}
	}

	return nil
}

// sellItemTx locks the item's inventory row, applies the SALE and appends the
// ledger entry. Insufficient stock aborts the surrounding transaction.
func sellItemTx(ctx context.Context, tx pgx.Tx, b *bill.Bill, it *bill.Item) error {
	rec, err := lockInventoryTx(ctx, tx, it.ProductID, b.StoreID)
	if err != nil {
		return err
	}

	previous, err := rec.Apply(movement.TypeSale, it.Quantity)
	if err != nil {
		return err
	}
	if err := saveInventoryStockTx(ctx, tx, rec); err != nil {
		return err
	}

	m, err := movement.New(it.ProductID, b.StoreID, movement.TypeSale,
		it.Quantity, previous, rec.Stock, b.BillNumber, "Stock sale", &b.StaffID)
	if err != nil {
		return err
	}
	return insertMovementTx(ctx, tx, m)
}

// lockBillTx fetches and row-locks a bill header inside tx.
func lockBillTx(ctx context.Context, tx pgx.Tx, billID string) (*bill.Bill, error) {
	row := tx.QueryRow(ctx,
		`SELECT `+billColumns+` FROM bills b WHERE b.id = $1 FOR UPDATE`,
		billID)

	var b bill.Bill
	err := row.Scan(
		&b.ID, &b.BillNumber, &b.Subtotal, &b.TaxAmount, &b.DiscountAmount,
		&b.DiscountPercent, &b.Total, &b.PaidAmount, &b.DueAmount,
		&b.PrevDuePaidAmount, &b.PreviousDue, &b.TotalBillAmount, &b.Status,
		&b.Note, &b.PaymentMethod, &b.CustomerID, &b.StoreID, &b.StaffID,
		&b.PriceGroupID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBillNotFound
		}
		return nil, fmt.Errorf("locking bill: %w", err)
	}
	return &b, nil
}

func loadBillItemsTx(ctx context.Context, tx pgx.Tx, billID string) ([]bill.Item, error) {
	rows, err := tx.Query(ctx,
		`SELECT id, bill_id, product_id, quantity, unit_price, subtotal, total
		 FROM bill_items WHERE bill_id = $1 ORDER BY id`,
		billID)
	if err != nil {
		return nil, fmt.Errorf("listing bill items: %w", err)
	}
	defer rows.Close()

	var items []bill.Item
	for rows.Next() {
		var it bill.Item
		err := rows.Scan(&it.ID, &it.BillID, &it.ProductID, &it.Quantity,
			&it.UnitPrice, &it.Subtotal, &it.Total)
		if err != nil {
			return nil, fmt.Errorf("scanning bill item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// updateCustomerTotalsTx applies the customer ledger side of a settlement:
// the due balance becomes the bill's due amount and the bill total is added
// to lifetime purchases.
func updateCustomerTotalsTx(ctx context.Context, tx pgx.Tx, customerID string, dueAmount, totalBillAmount decimal.Decimal) error {
	tag, err := tx.Exec(ctx,
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
