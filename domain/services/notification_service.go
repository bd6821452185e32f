package services

import (
	"context"

	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
)

// NotificationService จัดการ feed แจ้งเตือนของ dashboard
//
// feed ในหน่วยความจำเป็น authoritative สำหรับ session นี้เสมอ —
// persist พังแค่ log ไว้ mutation ทุกตัวเป็น replace-on-write แล้ว
// คำนวณ unread count ใหม่
type NotificationService interface {
	// Add เพิ่ม notification เข้า feed (ใหม่สุดอยู่หน้าสุด ตัดที่ 100)
	Add(ctx context.Context, req *dto.CreateNotificationRequest) (*models.Notification, error)

	// List ดึง feed ตาม filter
	List(ctx context.Context, query *dto.NotificationListQuery) *dto.NotificationListResponse

	UnreadCount(ctx context.Context) int

	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error

	// === Typed producers (ตามเหตุการณ์ของร้าน) ===

	NotifyNewOrder(ctx context.Context, orderID, customerName string, total float64)
	NotifyLowStock(ctx context.Context, productID, productName string, currentStock int)
	NotifyOrderConfirmed(ctx context.Context, orderID, customerName string)
	NotifyOrderShipped(ctx context.Context, orderID, customerName, trackingNumber string)
	NotifyOrderDelivered(ctx context.Context, orderID, customerName string)
	NotifyOrderCancelled(ctx context.Context, orderID, customerName, reason string)
	NotifySystem(ctx context.Context, message, priority string)
	NotifyPromotion(ctx context.Context, title, message string)
}
