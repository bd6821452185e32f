package models

import "time"

// ประเภท notification
const (
	NotificationTypeOrder     = "order"
	NotificationTypeProduct   = "product"
	NotificationTypeSystem    = "system"
	NotificationTypePromotion = "promotion"
)

// ระดับความสำคัญ
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// MaxNotifications เก็บ notification ล่าสุดไม่เกิน 100 รายการ
// เกินแล้วตัวเก่าสุดถูกเขี่ยออกก่อน
const MaxNotifications = 100

// Notification รายการแจ้งเตือนใน feed ของ dashboard
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // order, product, system, promotion
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	OrderID   string    `json:"orderId,omitempty"`
	ProductID string    `json:"productId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"isRead"`
	Priority  string    `json:"priority"` // low, medium, high
}
