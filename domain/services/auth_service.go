package services

import (
	"context"

	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
)

// AuthService จัดการ login/logout และ session ของ dashboard
type AuthService interface {
	// Login ส่ง credentials ไป upstream สำเร็จแล้วเก็บ token + admin
	// ลง session store และออก gateway token ให้ dashboard
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)

	// Logout ลบ adminUser + authToken ออกจาก session store
	Logout(ctx context.Context) error

	// IsAuthenticated จริงก็ต่อเมื่อมีทั้ง token และ admin ใน store
	IsAuthenticated(ctx context.Context) bool

	// CurrentUser ดึง admin ที่ล็อกอินอยู่ (nil ถ้าไม่มี)
	CurrentUser(ctx context.Context) *models.AdminUser

	// RegisterAdmin สมัคร admin ใหม่ผ่าน upstream
	RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) error

	// RememberedUsername username ที่จำไว้จากการติ๊ก remember me
	RememberedUsername(ctx context.Context) string
}
