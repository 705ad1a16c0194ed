package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/inventory"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/movement"
	"github.com/jackc/pgx/v5"
)

// Transfer implements inventory.Repository.Transfer: both inventory rows and
// both TRANSFER ledger entries commit or roll back together. The destination
// record is created lazily with zeroed stock and the source's cost prices.
func (r *PostgresInventoryRepository) Transfer(ctx context.Context, productID, fromStoreID, toStoreID string, qty int, in inventory.MovementInput) (*inventory.TransferResult, error) {
	if qty <= 0 {
		return nil, inventory.ErrInvalidQuantity
	}
	if fromStoreID == toStoreID {
		return nil, fmt.Errorf("%w: source and destination store are the same", inventory.ErrInvalidMovement)
	}

	var result *inventory.TransferResult

	err := r.withTx(ctx, func(tx pgx.Tx) error {
		// Lock both rows in a fixed order so two opposite transfers
		// cannot deadlock.
		first, second := fromStoreID, toStoreID
		if second < first {
			first, second = second, first
		}

		locked := make(map[string]*inventory.Record, 2)
		for _, storeID := range []string{first, second} {
			rec, err := lockInventoryTx(ctx, tx, productID, storeID)
			if err != nil {
				if errors.Is(err, ErrInventoryNotFound) && storeID == toStoreID {
					continue // created below
				}
				if storeID == fromStoreID {
					return fmt.Errorf("source inventory: %w", err)
				}
				return err
			}
			locked[storeID] = rec
		}

		source := locked[fromStoreID]

		dest, ok := locked[toStoreID]
		if !ok {
			created, err := inventory.NewRecord(productID, toStoreID, 0, source.CostPrice, 0)
			if err != nil {
				return err
			}
			created.AverageCostPrice = source.AverageCostPrice
			if err := insertInventoryTx(ctx, tx, created); err != nil {
				return err
			}
			dest = created
		}

		sourcePrevious, destPrevious, err := inventory.TransferStock(source, dest, qty)
		if err != nil {
			return err
		}

		if err := saveInventoryStockTx(ctx, tx, source); err != nil {
			return err
		}
		if err := saveInventoryStockTx(ctx, tx, dest); err != nil {
			return err
		}

		out, err := movement.New(productID, fromStoreID, movement.TypeTransfer,
			-qty, sourcePrevious, source.Stock, in.Reference,
			fmt.Sprintf("Transfer out to store: %s", toStoreID), in.UserID)
		if err != nil {
			return err
		}
		if err := insertMovementTx(ctx, tx, out); err != nil {
			return err
		}

		inMove, err := movement.New(productID, toStoreID, movement.TypeTransfer,
			qty, destPrevious, dest.Stock, in.Reference,
			fmt.Sprintf("Transfer in from store: %s", fromStoreID), in.UserID)
		if err != nil {
			return err
		}
		if err := insertMovementTx(ctx, tx, inMove); err != nil {
			return err
		}

		result = &inventory.TransferResult{
			ProductID:        productID,
			FromStoreID:      fromStoreID,
			ToStoreID:        toStoreID,
			Quantity:         qty,
			SourceStock:      source.Stock,
			DestinationStock: dest.Stock,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
