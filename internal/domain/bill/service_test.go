package bill

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/customer"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/price"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/product"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/staff"
)

var errNotFound = errors.New("not found")

type fakeBillRepo struct {
	bills       map[string]*Bill
	settled     []*Bill
	held        []*Bill
	cancelled   []string
	settleErr   error
	lastFilter  Filter
	listResults []Detail
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: map[string]*Bill{}}
}

func (r *fakeBillRepo) CreateSettled(_ context.Context, b *Bill) error {
	b.BillNumber = "INV/S1/20250101/001000"
	r.bills[b.ID] = b
	r.settled = append(r.settled, b)
	return nil
}

func (r *fakeBillRepo) CreateHold(_ context.Context, b *Bill) error {
	b.BillNumber = "INV/S1/20250101/001001"
	r.bills[b.ID] = b
	r.held = append(r.held, b)
	return nil
}

func (r *fakeBillRepo) SettleHold(_ context.Context, billID string, paidAmount decimal.Decimal, method PaymentMethod) (*Bill, error) {
	if r.settleErr != nil {
		return nil, r.settleErr
	}
	b, ok := r.bills[billID]
	if !ok {
		return nil, errNotFound
	}
	if !b.IsHold() {
		return nil, ErrNotHold
	}
	due := ComputeDue(b.Total, paidAmount, decimal.Zero)
	b.PaidAmount = paidAmount
	b.DueAmount = due
	b.Status = StatusForDue(due)
	b.PaymentMethod = method
	return b, nil
}

func (r *fakeBillRepo) CancelHold(_ context.Context, billID string) error {
	b, ok := r.bills[billID]
	if !ok {
		return errNotFound
	}
	if !b.IsHold() {
		return ErrNotHold
	}
	delete(r.bills, billID)
	r.cancelled = append(r.cancelled, billID)
	return nil
}

func (r *fakeBillRepo) FindByID(_ context.Context, id string) (*Detail, error) {
	b, ok := r.bills[id]
	if !ok {
		return nil, errNotFound
	}
	return &Detail{Bill: *b, StoreName: "Main Store"}, nil
}

func (r *fakeBillRepo) List(_ context.Context, filter Filter) ([]Detail, int, error) {
	r.lastFilter = filter
	return r.listResults, len(r.listResults), nil
}

type fakeStaffRepo struct {
	byAccount map[string]*staff.Staff
}

func (r *fakeStaffRepo) Create(context.Context, *staff.Staff) error { return nil }
func (r *fakeStaffRepo) FindByID(context.Context, string) (*staff.Staff, error) {
	return nil, errNotFound
}
func (r *fakeStaffRepo) FindByAccountID(_ context.Context, accountID string) (*staff.Staff, error) {
	s, ok := r.byAccount[accountID]
	if !ok {
		return nil, errNotFound
	}
	return s, nil
}
func (r *fakeStaffRepo) List(context.Context, int, int) ([]staff.Staff, int, error) {
	return nil, 0, nil
}

type fakeCustomerRepo struct {
	byID map[string]*customer.Customer
}

func (r *fakeCustomerRepo) Create(context.Context, *customer.Customer) error { return nil }
func (r *fakeCustomerRepo) FindByID(_ context.Context, id string) (*customer.Customer, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}
func (r *fakeCustomerRepo) UpdateDueAndPurchase(context.Context, string, decimal.Decimal, decimal.Decimal) error {
	return nil
}
func (r *fakeCustomerRepo) List(context.Context, int, int) ([]customer.Customer, int, error) {
	return nil, 0, nil
}

type fakeProductRepo struct {
	byID map[string]*product.Product
}

func (r *fakeProductRepo) Create(context.Context, *product.Product) error { return nil }
func (r *fakeProductRepo) FindByID(_ context.Context, id string) (*product.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}
func (r *fakeProductRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}
func (r *fakeProductRepo) List(context.Context, int, int) ([]product.Product, int, error) {
	return nil, 0, nil
}

type fakePriceRepo struct {
	prices map[string]decimal.Decimal // productID + "/" + priceGroupID
	err    error
}

func (r *fakePriceRepo) Upsert(context.Context, *price.ProductPrice) error { return nil }
func (r *fakePriceRepo) GetPrice(_ context.Context, productID, priceGroupID string) (decimal.Decimal, error) {
	if r.err != nil {
		return decimal.Zero, r.err
	}
	p, ok := r.prices[productID+"/"+priceGroupID]
	if !ok {
		return decimal.Zero, price.ErrPriceNotFound
	}
	return p, nil
}

type serviceFixture struct {
	service   *Service
	bills     *fakeBillRepo
	staffs    *fakeStaffRepo
	customers *fakeCustomerRepo
	products  *fakeProductRepo
	prices    *fakePriceRepo
}

func newServiceFixture() *serviceFixture {
	bills := newFakeBillRepo()
	staffs := &fakeStaffRepo{byAccount: map[string]*staff.Staff{
		"acc-1": {ID: "staff-1", AccountID: "acc-1", Name: "Asha", StoreID: "store-1"},
	}}
	customers := &fakeCustomerRepo{byID: map[string]*customer.Customer{
		"cust-1": {ID: "cust-1", Name: "Ravi"},
	}}
	products := &fakeProductRepo{byID: map[string]*product.Product{
		"prod-1": {ID: "prod-1", Name: "Soap", SellingPrice: decimal.RequireFromString("20.00")},
	}}
	prices := &fakePriceRepo{prices: map[string]decimal.Decimal{}}

	return &serviceFixture{
		service:   NewService(bills, staffs, customers, products, prices),
		bills:     bills,
		staffs:    staffs,
		customers: customers,
		products:  products,
		prices:    prices,
	}
}

func basicInput() CreateInput {
	return CreateInput{
		Subtotal:        decimal.RequireFromString("100.00"),
		Total:           decimal.RequireFromString("100.00"),
		PaidAmount:      decimal.RequireFromString("100.00"),
		TotalBillAmount: decimal.RequireFromString("100.00"),
		PaymentMethod:   PaymentCash,
		Items: []ItemInput{
			{ProductID: "prod-1", Quantity: 5, UnitPrice: decimal.RequireFromString("20.00")},
		},
	}
}

func TestCreateSettlesPaidBill(t *testing.T) {
	f := newServiceFixture()

	detail, err := f.service.Create(context.Background(), "acc-1", basicInput())
	require.NoError(t, err)

	require.Len(t, f.bills.settled, 1)
	b := f.bills.settled[0]
	assert.Equal(t, StatusPaid, b.Status)
	assert.True(t, b.DueAmount.IsZero())
	assert.Equal(t, "store-1", b.StoreID)
	assert.Equal(t, "acc-1", b.StaffID)
	require.Len(t, b.Items, 1)
	assert.True(t, b.Items[0].Subtotal.Equal(decimal.RequireFromString("100.00")))

	assert.Equal(t, b.BillNumber, detail.BillNumber)
	assert.Equal(t, "Main Store", detail.StoreName)
}

func TestCreatePartialPaymentIsDue(t *testing.T) {
	f := newServiceFixture()

	in := basicInput()
	in.PaidAmount = decimal.RequireFromString("60.00")

	detail, err := f.service.Create(context.Background(), "acc-1", in)
	require.NoError(t, err)

	assert.Equal(t, StatusDue, detail.Status)
	assert.True(t, detail.DueAmount.Equal(decimal.RequireFromString("40.00")))
}

func TestCreateUnknownStaff(t *testing.T) {
	f := newServiceFixture()

	_, err := f.service.Create(context.Background(), "acc-missing", basicInput())
	assert.ErrorIs(t, err, errNotFound)
	assert.Empty(t, f.bills.settled)
}

func TestCreateUnknownCustomer(t *testing.T) {
	f := newServiceFixture()

	in := basicInput()
	missing := "cust-missing"
	in.CustomerID = &missing

	_, err := f.service.Create(context.Background(), "acc-1", in)
	assert.ErrorIs(t, err, errNotFound)
	assert.Empty(t, f.bills.settled)
}

func TestCreateNoItems(t *testing.T) {
	f := newServiceFixture()

	in := basicInput()
	in.Items = nil

	_, err := f.service.Create(context.Background(), "acc-1", in)
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestCreateResolvesPriceGroupPrice(t *testing.T) {
	f := newServiceFixture()
	f.prices.prices["prod-1/group-1"] = decimal.RequireFromString("18.00")

	in := basicInput()
	group := "group-1"
	in.PriceGroupID = &group
	in.Items = []ItemInput{{ProductID: "prod-1", Quantity: 2}}

	_, err := f.service.Create(context.Background(), "acc-1", in)
	require.NoError(t, err)

	b := f.bills.settled[0]
	assert.True(t, b.Items[0].UnitPrice.Equal(decimal.RequireFromString("18.00")))
}

func TestCreateFallsBackToSellingPrice(t *testing.T) {
	f := newServiceFixture()

	in := basicInput()
	in.Items = []ItemInput{{ProductID: "prod-1", Quantity: 2}}

	_, err := f.service.Create(context.Background(), "acc-1", in)
	require.NoError(t, err)

	b := f.bills.settled[0]
	assert.True(t, b.Items[0].UnitPrice.Equal(decimal.RequireFromString("20.00")))
}

func TestCreatePropagatesPriceLookupFailure(t *testing.T) {
	f := newServiceFixture()
	f.prices.err = errors.New("connection reset")

	in := basicInput()
	group := "group-1"
	in.PriceGroupID = &group
	in.Items = []ItemInput{{ProductID: "prod-1", Quantity: 2}}

	_, err := f.service.Create(context.Background(), "acc-1", in)
	assert.ErrorIs(t, err, f.prices.err)
	assert.Empty(t, f.bills.settled)
}

func TestCreateHoldZeroesPayment(t *testing.T) {
	f := newServiceFixture()

	in := basicInput()
	in.PaidAmount = decimal.RequireFromString("100.00")

	detail, err := f.service.CreateHold(context.Background(), "acc-1", in)
	require.NoError(t, err)

	require.Len(t, f.bills.held, 1)
	assert.Equal(t, StatusHold, detail.Status)
	assert.True(t, detail.PaidAmount.IsZero())
	assert.True(t, detail.DueAmount.IsZero())
	assert.Empty(t, f.bills.settled)
}

func TestPayHoldRejectsNegativeAmount(t *testing.T) {
	f := newServiceFixture()

	_, err := f.service.PayHold(context.Background(), "bill-1", decimal.RequireFromString("-1"), PaymentCash)
	assert.ErrorIs(t, err, ErrNegativePaidAmount)
}

func TestPayHoldSettles(t *testing.T) {
	f := newServiceFixture()

	hold, err := f.service.CreateHold(context.Background(), "acc-1", basicInput())
	require.NoError(t, err)

	detail, err := f.service.PayHold(context.Background(), hold.ID, decimal.RequireFromString("100.00"), PaymentUPI)
	require.NoError(t, err)

	assert.Equal(t, StatusPaid, detail.Status)
	assert.Equal(t, PaymentUPI, detail.PaymentMethod)
	assert.True(t, detail.DueAmount.IsZero())
}

func TestPayHoldOnSettledBill(t *testing.T) {
	f := newServiceFixture()

	settled, err := f.service.Create(context.Background(), "acc-1", basicInput())
	require.NoError(t, err)

	_, err = f.service.PayHold(context.Background(), settled.ID, decimal.RequireFromString("100.00"), PaymentCash)
	assert.ErrorIs(t, err, ErrNotHold)
}

func TestCancelHold(t *testing.T) {
	f := newServiceFixture()

	hold, err := f.service.CreateHold(context.Background(), "acc-1", basicInput())
	require.NoError(t, err)

	require.NoError(t, f.service.CancelHold(context.Background(), hold.ID))
	assert.Equal(t, []string{hold.ID}, f.bills.cancelled)

	_, err = f.service.Get(context.Background(), hold.ID)
	assert.ErrorIs(t, err, errNotFound)
}

func TestListByStoreScopesFilter(t *testing.T) {
	f := newServiceFixture()

	_, _, err := f.service.ListByStore(context.Background(), "acc-1", Filter{Status: StatusPaid})
	require.NoError(t, err)

	assert.Equal(t, "store-1", f.bills.lastFilter.StoreID)
	assert.Equal(t, StatusPaid, f.bills.lastFilter.Status)
}
