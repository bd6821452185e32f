package repositories

import (
	"context"

	"elfateh-admin/domain/models"
)

// SettingRepository เก็บ settings เป็น JSON blob ใต้ key "app_settings"
type SettingRepository interface {
	// Load อ่าน settings ที่เก็บไว้ คืน nil ถ้ายังไม่เคยบันทึก
	Load(ctx context.Context) (*models.Settings, error)

	// Save เขียน settings ทับของเดิม
	Save(ctx context.Context, settings models.Settings) error
}
