package serviceimpl

import (
	"context"
	"sync"
	"time"

	"elfateh-admin/domain/repositories"
	"elfateh-admin/domain/services"
	"elfateh-admin/pkg/logger"
)

// StockMonitor สแกนสินค้าที่สต็อกต่ำเป็นรอบ ๆ แล้วยิง notification
// แจ้งซ้ำต่อสินค้าไม่เกินหนึ่งครั้งต่อช่วง cooldown
type StockMonitor struct {
	products      repositories.ProductRepository
	notifications services.NotificationService

	mu           sync.Mutex
	lastNotified map[string]time.Time
	cooldown     time.Duration
}

func NewStockMonitor(products repositories.ProductRepository, notifications services.NotificationService) *StockMonitor {
	return &StockMonitor{
		products:      products,
		notifications: notifications,
		lastNotified:  make(map[string]time.Time),
		cooldown:      24 * time.Hour,
	}
}

// Scan ดึงสินค้าทั้งหมดแล้วแจ้งตัวที่สต็อกต่ำกว่าเกณฑ์
func (m *StockMonitor) Scan(ctx context.Context) {
	products, _, err := m.products.List(ctx, repositories.ProductFilters{Page: 1, Limit: dashboardFetchLimit})
	if err != nil {
		logger.WarnContext(ctx, "Stock scan failed", "error", err)
		return
	}

	now := time.Now()
	notified := 0

	for i := range products {
		p := &products[i]
		if !p.IsActive || !p.IsLowStock() {
			continue
		}

		m.mu.Lock()
		last, seen := m.lastNotified[p.ID]
		if seen && now.Sub(last) < m.cooldown {
			m.mu.Unlock()
			continue
		}
		m.lastNotified[p.ID] = now
		m.mu.Unlock()

		m.notifications.NotifyLowStock(ctx, p.ID, p.Name, p.Stock)
		notified++
	}

	logger.DebugContext(ctx, "Stock scan completed", "products", len(products), "notified", notified)
}
