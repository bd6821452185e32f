package services

import (
	"context"

	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
)

// OrderService จัดการคำสั่งซื้อ — สถานะเป็นของ server ฝั่งนี้แค่ขอเปลี่ยน
type OrderService interface {
	List(ctx context.Context, query *dto.OrderListQuery) (*dto.OrderPage, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)

	// UpdateStatus ขอเปลี่ยนสถานะ สำเร็จแล้วยิง notification เข้า feed
	UpdateStatus(ctx context.Context, id string, status string) (bool, error)

	// UpdatePayment ขอเปลี่ยนสถานะการชำระเงิน
	UpdatePayment(ctx context.Context, id string, paymentStatus string) (bool, error)
}
