package repositories

import (
	"context"

	"elfateh-admin/domain/models"
)

// AuthRepository gateway ไปยัง auth endpoints ของ upstream
// สอง endpoint นี้ได้รับยกเว้นจาก 401 handling กลาง
// เพื่อให้หน้า login แสดง error เองได้
type AuthRepository interface {
	// Login แลก username/password เป็น admin + upstream token
	Login(ctx context.Context, username, password string) (*models.AdminUser, string, error)

	// CreateAdmin สมัคร admin ใหม่
	CreateAdmin(ctx context.Context, username, email, password string) error
}
