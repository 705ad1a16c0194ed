package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/inventory"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/movement"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/notification"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/pkg/logger"
)

var errUnsupported = errors.New("not supported in this fake")

type fakeInventoryRepo struct {
	lowStock []inventory.Record
}

func (r *fakeInventoryRepo) Create(context.Context, *inventory.Record) error { return errUnsupported }
func (r *fakeInventoryRepo) FindByProductAndStore(context.Context, string, string) (*inventory.Record, error) {
	return nil, errUnsupported
}
func (r *fakeInventoryRepo) ApplyMovement(context.Context, string, string, movement.Type, int, inventory.MovementInput) (*inventory.Record, error) {
	return nil, errUnsupported
}
func (r *fakeInventoryRepo) Reserve(context.Context, string, string, int) (*inventory.Record, error) {
	return nil, errUnsupported
}
func (r *fakeInventoryRepo) Release(context.Context, string, string, int) (*inventory.Record, error) {
	return nil, errUnsupported
}
func (r *fakeInventoryRepo) Transfer(context.Context, string, string, string, int, inventory.MovementInput) (*inventory.TransferResult, error) {
	return nil, errUnsupported
}
func (r *fakeInventoryRepo) CheckAvailability(context.Context, string, string, int) (bool, error) {
	return false, errUnsupported
}
func (r *fakeInventoryRepo) List(context.Context, inventory.Filter) ([]inventory.Record, int, error) {
	return nil, 0, errUnsupported
}
func (r *fakeInventoryRepo) ListByProduct(context.Context, string) ([]inventory.Record, error) {
	return nil, errUnsupported
}
func (r *fakeInventoryRepo) ListLowStock(context.Context, string) ([]inventory.Record, error) {
	return r.lowStock, nil
}
func (r *fakeInventoryRepo) UpdateCost(context.Context, string, string, decimal.Decimal, decimal.Decimal) error {
	return errUnsupported
}
func (r *fakeInventoryRepo) Deactivate(context.Context, string, string) error {
	return errUnsupported
}

type fakeNotificationRepo struct {
	created []notification.Notification
	unread  map[string]bool // type + "/" + storeID + "/" + productID
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{unread: map[string]bool{}}
}

func (r *fakeNotificationRepo) key(t notification.Type, storeID, productID string) string {
	return string(t) + "/" + storeID + "/" + productID
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *notification.Notification) error {
	r.created = append(r.created, *n)
	r.unread[r.key(n.Type, n.StoreID, n.ProductID)] = true
	return nil
}

func (r *fakeNotificationRepo) ExistsUnread(_ context.Context, t notification.Type, storeID, productID string) (bool, error) {
	return r.unread[r.key(t, storeID, productID)], nil
}

func (r *fakeNotificationRepo) List(context.Context, int, int) ([]notification.Notification, int, error) {
	return nil, 0, nil
}

func (r *fakeNotificationRepo) MarkRead(context.Context, string) error { return nil }

func TestScanRaisesLowStockAlert(t *testing.T) {
	inventories := &fakeInventoryRepo{lowStock: []inventory.Record{
		{ProductID: "prod-1", StoreID: "store-1", Stock: 3, MinStock: 5},
	}}
	notifications := newFakeNotificationRepo()

	m := NewLowStockMonitor(inventories, notifications, logger.NewLogger())
	require.NoError(t, m.Scan(context.Background()))

	require.Len(t, notifications.created, 1)
	n := notifications.created[0]
	assert.Equal(t, notification.TypeLowStock, n.Type)
	assert.Equal(t, "Low Stock Alert", n.Title)
	assert.Equal(t, "store-1", n.StoreID)
	assert.Equal(t, "prod-1", n.ProductID)
	assert.False(t, n.Read)
}

func TestScanRaisesOutOfStockAlert(t *testing.T) {
	inventories := &fakeInventoryRepo{lowStock: []inventory.Record{
		{ProductID: "prod-1", StoreID: "store-1", Stock: 0, MinStock: 5},
	}}
	notifications := newFakeNotificationRepo()

	m := NewLowStockMonitor(inventories, notifications, logger.NewLogger())
	require.NoError(t, m.Scan(context.Background()))

	require.Len(t, notifications.created, 1)
	assert.Equal(t, notification.TypeOutOfStock, notifications.created[0].Type)
	assert.Equal(t, "Out of Stock Alert", notifications.created[0].Title)
}

func TestScanDeduplicatesUnreadAlerts(t *testing.T) {
	inventories := &fakeInventoryRepo{lowStock: []inventory.Record{
		{ProductID: "prod-1", StoreID: "store-1", Stock: 3, MinStock: 5},
	}}
	notifications := newFakeNotificationRepo()

	m := NewLowStockMonitor(inventories, notifications, logger.NewLogger())
	require.NoError(t, m.Scan(context.Background()))
	require.NoError(t, m.Scan(context.Background()))

	assert.Len(t, notifications.created, 1)
}

func TestScanSeparatesAlertTypes(t *testing.T) {
	inventories := &fakeInventoryRepo{lowStock: []inventory.Record{
		{ProductID: "prod-1", StoreID: "store-1", Stock: 3, MinStock: 5},
	}}
	notifications := newFakeNotificationRepo()

	m := NewLowStockMonitor(inventories, notifications, logger.NewLogger())
	require.NoError(t, m.Scan(context.Background()))

	// The record runs out entirely: a new OUT_OF_STOCK alert is due even
	// though the LOW_STOCK one is still unread.
	inventories.lowStock[0].Stock = 0
	require.NoError(t, m.Scan(context.Background()))

	require.Len(t, notifications.created, 2)
	assert.Equal(t, notification.TypeLowStock, notifications.created[0].Type)
	assert.Equal(t, notification.TypeOutOfStock, notifications.created[1].Type)
}
