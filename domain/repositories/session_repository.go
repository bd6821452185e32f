package repositories

import (
	"context"

	"elfateh-admin/domain/models"
)

// SessionRepository เก็บ auth state ของ dashboard ใน key-value store
// (เทียบเท่า localStorage เดิม: authToken, adminUser, rememberedUsername,
// rememberMe) — อ่านตอน startup ไม่มี cross-instance consistency
type SessionRepository interface {
	Token(ctx context.Context) (string, error)
	SaveToken(ctx context.Context, token string) error

	Admin(ctx context.Context) (*models.AdminUser, error)
	SaveAdmin(ctx context.Context, admin *models.AdminUser) error

	// ClearAuth ลบเฉพาะ authToken + adminUser
	// (rememberedUsername/rememberMe คงอยู่)
	ClearAuth(ctx context.Context) error

	RememberedUsername(ctx context.Context) (string, error)
	SaveRememberedUsername(ctx context.Context, username string) error
	ClearRememberedUsername(ctx context.Context) error

	RememberMe(ctx context.Context) (bool, error)
	SetRememberMe(ctx context.Context, remember bool) error
}
