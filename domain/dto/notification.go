package dto

import "elfateh-admin/domain/models"

// === Requests ===

// CreateNotificationRequest สร้าง notification เข้า feed ตรง ๆ
// (นอกเหนือจาก typed producers เช่น order/new)
type CreateNotificationRequest struct {
	Type     string `json:"type" validate:"required,oneof=order product system promotion"`
	Title    string `json:"title" validate:"required,min=1,max=200"`
	Message  string `json:"message" validate:"required,min=1,max=1000"`
	Priority string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// NotificationListQuery filter ของ feed
type NotificationListQuery struct {
	Type       string `query:"type"`       // order, product, system, promotion
	UnreadOnly bool   `query:"unreadOnly"`
}

// === Responses ===

type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
}
