package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/movement"
)

func newTestRecord(t *testing.T, stock int) *Record {
	t.Helper()
	rec, err := NewRecord("prod-1", "store-1", stock, decimal.NewFromInt(10), 5)
	require.NoError(t, err)
	return rec
}

func TestNewRecord(t *testing.T) {
	rec, err := NewRecord("prod-1", "store-1", 100, decimal.NewFromInt(25), 10)
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, 100, rec.Stock)
	assert.Equal(t, 0, rec.ReservedStock)
	assert.Equal(t, 100, rec.AvailableStock)
	assert.Equal(t, 10, rec.MinStock)
	assert.True(t, rec.CostPrice.Equal(decimal.NewFromInt(25)))
	assert.True(t, rec.AverageCostPrice.Equal(decimal.NewFromInt(25)))
	assert.True(t, rec.IsActive)
	assert.NoError(t, rec.CheckInvariant())
}

func TestNewRecordValidation(t *testing.T) {
	_, err := NewRecord("", "store-1", 10, decimal.Zero, 0)
	assert.ErrorIs(t, err, ErrEmptyProductID)

	_, err = NewRecord("prod-1", "", 10, decimal.Zero, 0)
	assert.ErrorIs(t, err, ErrEmptyStoreID)

	_, err = NewRecord("prod-1", "store-1", -1, decimal.Zero, 0)
	assert.ErrorIs(t, err, ErrNegativeQuantity)
}

func TestApplyPurchaseAndReturn(t *testing.T) {
	rec := newTestRecord(t, 10)

	prev, err := rec.Apply(movement.TypePurchase, 15)
	require.NoError(t, err)
	assert.Equal(t, 10, prev)
	assert.Equal(t, 25, rec.Stock)
	assert.Equal(t, 25, rec.AvailableStock)

	prev, err = rec.Apply(movement.TypeReturn, 5)
	require.NoError(t, err)
	assert.Equal(t, 25, prev)
	assert.Equal(t, 30, rec.Stock)
	assert.NoError(t, rec.CheckInvariant())
}

func TestApplySale(t *testing.T) {
	rec := newTestRecord(t, 10)

	prev, err := rec.Apply(movement.TypeSale, 4)
	require.NoError(t, err)
	assert.Equal(t, 10, prev)
	assert.Equal(t, 6, rec.Stock)
	assert.Equal(t, 6, rec.AvailableStock)
}

func TestApplySaleInsufficientLeavesStateUnchanged(t *testing.T) {
	rec := newTestRecord(t, 3)

	_, err := rec.Apply(movement.TypeSale, 5)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 3, rec.Stock)
	assert.Equal(t, 3, rec.AvailableStock)
	assert.NoError(t, rec.CheckInvariant())
}

func TestApplySaleChecksAvailableNotOnHand(t *testing.T) {
	rec := newTestRecord(t, 10)
	require.NoError(t, rec.ReserveStock(8))

	// 10 on hand but only 2 available.
	_, err := rec.Apply(movement.TypeSale, 5)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	_, err = rec.Apply(movement.TypeSale, 2)
	assert.NoError(t, err)
	assert.Equal(t, 8, rec.Stock)
	assert.Equal(t, 0, rec.AvailableStock)
	assert.NoError(t, rec.CheckInvariant())
}

func TestApplyAdjustmentIsAbsolute(t *testing.T) {
	rec := newTestRecord(t, 50)

	prev, err := rec.Apply(movement.TypeAdjustment, 7)
	require.NoError(t, err)
	assert.Equal(t, 50, prev)
	assert.Equal(t, 7, rec.Stock)
	assert.Equal(t, 7, rec.AvailableStock)

	// Zero is a legal target.
	_, err = rec.Apply(movement.TypeAdjustment, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Stock)
}

func TestApplyAdjustmentBelowReserved(t *testing.T) {
	rec := newTestRecord(t, 20)
	require.NoError(t, rec.ReserveStock(10))

	_, err := rec.Apply(movement.TypeAdjustment, 5)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 20, rec.Stock)

	_, err = rec.Apply(movement.TypeAdjustment, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, rec.Stock)
	assert.Equal(t, 0, rec.AvailableStock)
	assert.NoError(t, rec.CheckInvariant())
}

func TestApplyValidation(t *testing.T) {
	rec := newTestRecord(t, 10)

	_, err := rec.Apply(movement.TypePurchase, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = rec.Apply(movement.TypeSale, -2)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = rec.Apply(movement.TypeAdjustment, -1)
	assert.ErrorIs(t, err, ErrNegativeQuantity)

	_, err = rec.Apply(movement.Type("BOGUS"), 1)
	assert.ErrorIs(t, err, ErrInvalidMovement)
}

func TestReserveAndRelease(t *testing.T) {
	rec := newTestRecord(t, 10)

	require.NoError(t, rec.ReserveStock(6))
	assert.Equal(t, 10, rec.Stock)
	assert.Equal(t, 6, rec.ReservedStock)
	assert.Equal(t, 4, rec.AvailableStock)

	require.NoError(t, rec.ReleaseStock(6))
	assert.Equal(t, 0, rec.ReservedStock)
	assert.Equal(t, 10, rec.AvailableStock)
	assert.NoError(t, rec.CheckInvariant())
}

func TestReserveInsufficient(t *testing.T) {
	rec := newTestRecord(t, 10)
	require.NoError(t, rec.ReserveStock(7))

	err := rec.ReserveStock(4)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 7, rec.ReservedStock)
}

func TestReleaseClampsAtZero(t *testing.T) {
	rec := newTestRecord(t, 10)
	require.NoError(t, rec.ReserveStock(3))

	require.NoError(t, rec.ReleaseStock(5))
	assert.Equal(t, 0, rec.ReservedStock)
	assert.Equal(t, 10, rec.AvailableStock)
	assert.NoError(t, rec.CheckInvariant())
}

func TestReserveFailThenFullRelease(t *testing.T) {
	rec := newTestRecord(t, 10)

	require.NoError(t, rec.ReserveStock(10))
	assert.ErrorIs(t, rec.ReserveStock(1), ErrInsufficientStock)

	require.NoError(t, rec.ReleaseStock(10))
	assert.Equal(t, 0, rec.ReservedStock)
	assert.Equal(t, 10, rec.AvailableStock)
}

func TestHasAvailable(t *testing.T) {
	rec := newTestRecord(t, 5)
	assert.True(t, rec.HasAvailable(5))
	assert.False(t, rec.HasAvailable(6))
}

func TestIsLowStock(t *testing.T) {
	rec := newTestRecord(t, 10) // min stock 5
	assert.False(t, rec.IsLowStock())

	_, err := rec.Apply(movement.TypeAdjustment, 5)
	require.NoError(t, err)
	assert.True(t, rec.IsLowStock())

	_, err = rec.Apply(movement.TypeAdjustment, 0)
	require.NoError(t, err)
	assert.True(t, rec.IsLowStock())
}

func TestTransferStockConservesTotal(t *testing.T) {
	source := newTestRecord(t, 10)
	dest := newTestRecord(t, 3)

	sourcePrev, destPrev, err := TransferStock(source, dest, 4)
	require.NoError(t, err)

	assert.Equal(t, 10, sourcePrev)
	assert.Equal(t, 3, destPrev)
	assert.Equal(t, 6, source.Stock)
	assert.Equal(t, 7, dest.Stock)
	assert.Equal(t, 13, source.Stock+dest.Stock)
	assert.NoError(t, source.CheckInvariant())
	assert.NoError(t, dest.CheckInvariant())
}

func TestTransferStockChecksAvailableNotOnHand(t *testing.T) {
	source := newTestRecord(t, 10)
	dest := newTestRecord(t, 0)
	require.NoError(t, source.ReserveStock(8))

	// 10 on hand but only 2 available: moving 5 must fail and leave both
	// records exactly as they were.
	_, _, err := TransferStock(source, dest, 5)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 10, source.Stock)
	assert.Equal(t, 8, source.ReservedStock)
	assert.Equal(t, 2, source.AvailableStock)
	assert.Equal(t, 0, dest.Stock)

	sourcePrev, destPrev, err := TransferStock(source, dest, 2)
	require.NoError(t, err)
	assert.Equal(t, 10, sourcePrev)
	assert.Equal(t, 0, destPrev)
	assert.Equal(t, 8, source.Stock)
	assert.Equal(t, 8, source.ReservedStock)
	assert.Equal(t, 0, source.AvailableStock)
	assert.Equal(t, 2, dest.Stock)
	assert.NoError(t, source.CheckInvariant())
	assert.NoError(t, dest.CheckInvariant())
}

func TestTransferStockRejectsNonPositiveQuantity(t *testing.T) {
	source := newTestRecord(t, 10)
	dest := newTestRecord(t, 0)

	_, _, err := TransferStock(source, dest, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, _, err = TransferStock(source, dest, -3)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	assert.Equal(t, 10, source.Stock)
	assert.Equal(t, 0, dest.Stock)
}

func TestCheckInvariantDetectsCorruption(t *testing.T) {
	rec := newTestRecord(t, 10)

	rec.AvailableStock = 99
	assert.ErrorIs(t, rec.CheckInvariant(), ErrInvariantBroken)

	rec = newTestRecord(t, 10)
	rec.ReservedStock = 11
	assert.ErrorIs(t, rec.CheckInvariant(), ErrInvariantBroken)
}
