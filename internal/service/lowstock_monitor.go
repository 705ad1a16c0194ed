package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/inventory"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/notification"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/pkg/logger"
)

// LowStockMonitor periodically scans inventory for records at or below their
// minimum stock and raises one unread notification per affected record. It is
// purely advisory and never mutates stock quantities.
type LowStockMonitor struct {
	inventories   inventory.Repository
	notifications notification.Repository
	log           logger.Logger
	interval      time.Duration
}

// NewLowStockMonitor creates a monitor. The scan interval comes from
// LOW_STOCK_SCAN_INTERVAL (a Go duration, default 1h).
func NewLowStockMonitor(inventories inventory.Repository, notifications notification.Repository, log logger.Logger) *LowStockMonitor {
	interval := time.Hour
	if v := os.Getenv("LOW_STOCK_SCAN_INTERVAL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			interval = parsed
		}
	}

	return &LowStockMonitor{
		inventories:   inventories,
		notifications: notifications,
		log:           log,
		interval:      interval,
	}
}

// Start runs the scan loop until ctx is cancelled. It performs one immediate
// scan on startup and then one per interval.
func (m *LowStockMonitor) Start(ctx context.Context) {
	m.log.Info("low stock monitor started", "interval", m.interval)

	if err := m.Scan(ctx); err != nil {
		m.log.Error("low stock scan failed", "error", err)
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.log.Info("low stock monitor stopped")
			return
		case <-ticker.C:
			if err := m.Scan(ctx); err != nil {
				m.log.Error("low stock scan failed", "error", err)
			}
		}
	}
}

// Scan performs one pass over the active inventory records. Records with an
// unread alert from a previous pass are skipped.
func (m *LowStockMonitor) Scan(ctx context.Context) error {
	records, err := m.inventories.ListLowStock(ctx, "")
	if err != nil {
		return fmt.Errorf("listing low stock records: %w", err)
	}

	for i := range records {
		rec := &records[i]

		alertType := notification.TypeLowStock
		title := "Low Stock Alert"
		if rec.Stock == 0 {
			alertType = notification.TypeOutOfStock
			title = "Out of Stock Alert"
		}

		exists, err := m.notifications.ExistsUnread(ctx, alertType, rec.StoreID, rec.ProductID)
		if err != nil {
			return fmt.Errorf("checking existing alert: %w", err)
		}
		if exists {
			continue
		}

		desc := fmt.Sprintf("Product %s in store %s is down to %d units (minimum %d)",
			rec.ProductID, rec.StoreID, rec.Stock, rec.MinStock)
		n := notification.New(title, desc, alertType, rec.StoreID, rec.ProductID)

		if err := m.notifications.Create(ctx, n); err != nil {
			return fmt.Errorf("creating alert: %w", err)
		}
		m.log.Warn("stock below minimum", "product_id", rec.ProductID, "store_id", rec.StoreID, "stock", rec.Stock)
	}

	return nil
}
