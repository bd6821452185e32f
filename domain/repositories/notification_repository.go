package repositories

import (
	"context"

	"elfateh-admin/domain/models"
)

// NotificationRepository เก็บ feed ทั้งก้อนเป็น JSON array ใต้ key เดียว
// (เทียบเท่า localStorage key "notifications") — replace-on-write ทั้งก้อน
// สอง writer เขียนพร้อมกันจะทับกัน (accepted)
type NotificationRepository interface {
	// Load อ่าน feed ทั้งหมด คืน slice ว่างถ้ายังไม่เคยเก็บ
	Load(ctx context.Context) ([]models.Notification, error)

	// Save เขียน feed ทั้งก้อนทับของเดิม
	Save(ctx context.Context, notifications []models.Notification) error
}
