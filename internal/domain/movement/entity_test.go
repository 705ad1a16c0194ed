package movement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	_, err := New("", "store-1", TypeSale, 1, 10, 9, "", "", nil)
	assert.ErrorIs(t, err, ErrEmptyProductID)

	_, err = New("prod-1", "", TypeSale, 1, 10, 9, "", "", nil)
	assert.ErrorIs(t, err, ErrEmptyStoreID)

	_, err = New("prod-1", "store-1", Type("BOGUS"), 1, 10, 9, "", "", nil)
	assert.ErrorIs(t, err, ErrInvalidType)

	m, err := New("prod-1", "store-1", TypePurchase, 5, 0, 5, "ref", "note", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, TypePurchase, m.Type)
	assert.Equal(t, 5, m.Quantity)
	assert.Equal(t, 0, m.PreviousStock)
	assert.Equal(t, 5, m.NewStock)
}

func TestReplay(t *testing.T) {
	ledger := []Movement{
		{Type: TypePurchase, Quantity: 100, PreviousStock: 0, NewStock: 100},
		{Type: TypeSale, Quantity: 30, PreviousStock: 100, NewStock: 70},
		{Type: TypeReturn, Quantity: 5, PreviousStock: 70, NewStock: 75},
		{Type: TypeTransfer, Quantity: -20, PreviousStock: 75, NewStock: 55},
		{Type: TypeAdjustment, Quantity: 50, PreviousStock: 55, NewStock: 50},
		{Type: TypeSale, Quantity: 10, PreviousStock: 50, NewStock: 40},
	}

	assert.Equal(t, 40, Replay(0, ledger))
}

func TestReplayTransferIncoming(t *testing.T) {
	ledger := []Movement{
		{Type: TypeTransfer, Quantity: 20, PreviousStock: 0, NewStock: 20},
	}
	assert.Equal(t, 20, Replay(0, ledger))
}

func TestReplayEmptyLedger(t *testing.T) {
	assert.Equal(t, 7, Replay(7, nil))
}

func TestVerifyChainIntact(t *testing.T) {
	ledger := []Movement{
		{Type: TypePurchase, Quantity: 10, PreviousStock: 0, NewStock: 10},
		{Type: TypeSale, Quantity: 4, PreviousStock: 10, NewStock: 6},
		{Type: TypeAdjustment, Quantity: 20, PreviousStock: 6, NewStock: 20},
	}

	assert.Equal(t, -1, VerifyChain(0, ledger))
}

func TestVerifyChainBroken(t *testing.T) {
	ledger := []Movement{
		{Type: TypePurchase, Quantity: 10, PreviousStock: 0, NewStock: 10},
		// Gap: previous stock should be 10.
		{Type: TypeSale, Quantity: 2, PreviousStock: 12, NewStock: 10},
	}

	assert.Equal(t, 1, VerifyChain(0, ledger))
}
