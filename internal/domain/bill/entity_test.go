package bill

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestComputeDue(t *testing.T) {
	tests := []struct {
		name        string
		total       string
		paid        string
		prevDuePaid string
		want        string
	}{
		{"fully paid", "100.00", "100.00", "0", "0"},
		{"partially paid", "100.00", "60.00", "0", "40.00"},
		{"nothing paid", "250.50", "0", "0", "250.50"},
		{"overpaid floors at zero", "100.00", "150.00", "0", "0"},
		{"prev due payment counts", "100.00", "80.00", "20.00", "0"},
		{"prev due partial", "100.00", "50.00", "25.00", "25.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDue(d(tt.total), d(tt.paid), d(tt.prevDuePaid))
			assert.True(t, got.Equal(d(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestStatusForDue(t *testing.T) {
	assert.Equal(t, StatusPaid, StatusForDue(decimal.Zero))
	assert.Equal(t, StatusDue, StatusForDue(d("0.01")))
	assert.Equal(t, StatusPaid, StatusForDue(d("-5")))
}

func TestNewItem(t *testing.T) {
	item, err := NewItem("prod-1", 3, d("12.50"))
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, 3, item.Quantity)
	assert.True(t, item.Subtotal.Equal(d("37.50")))
	assert.True(t, item.Total.Equal(d("37.50")))
}

func TestNewItemRejectsNonPositiveQuantity(t *testing.T) {
	_, err := NewItem("prod-1", 0, d("10"))
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewItem("prod-1", -1, d("10"))
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestIsHold(t *testing.T) {
	b := &Bill{Status: StatusHold}
	assert.True(t, b.IsHold())

	b.Status = StatusPaid
	assert.False(t, b.IsHold())
}
