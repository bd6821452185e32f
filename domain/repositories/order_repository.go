package repositories

import (
	"context"

	"elfateh-admin/domain/models"
	"elfateh-admin/pkg/pagination"
)

// OrderRepository gateway ไปยัง orders ของ upstream
// สถานะเป็น server-authoritative — แค่ขอเปลี่ยนแล้วดูผล
type OrderRepository interface {
	List(ctx context.Context, filters OrderFilters) ([]models.Order, pagination.Info, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)

	// UpdateStatus ขอเปลี่ยนสถานะ order (PATCH /orders/:id/status)
	UpdateStatus(ctx context.Context, id, status string) (bool, error)

	// UpdatePayment ขอเปลี่ยนสถานะการชำระเงิน (PATCH /orders/:id/payment)
	UpdatePayment(ctx context.Context, id, paymentStatus string) (bool, error)
}
