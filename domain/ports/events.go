package ports

import (
	"context"

	"elfateh-admin/domain/models"
)

// NotificationHandler callback เมื่อมี notification ใหม่เข้า feed
type NotificationHandler func(notification *models.Notification)

// NotificationPublisherPort ส่ง notification ใหม่ออก event bus
// เพื่อ fan-out ไปยัง dashboard ที่ต่อ websocket อยู่
// (เทียบเท่า browser notification เดิม — ยิงแล้วลืม ไม่มี retry)
type NotificationPublisherPort interface {
	Publish(ctx context.Context, notification *models.Notification) error
}

// NotificationSubscriberPort รับ notification จาก event bus
type NotificationSubscriberPort interface {
	// Subscribe ลงทะเบียน handler — เรียกได้ครั้งเดียวต่อ subscriber
	Subscribe(ctx context.Context, handler NotificationHandler) error

	// Unsubscribe หยุดรับ
	Unsubscribe() error
}
