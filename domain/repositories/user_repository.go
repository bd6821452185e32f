package repositories

import (
	"context"

	"elfateh-admin/domain/models"
)

// UserRepository gateway ไปยัง users ของ upstream
type UserRepository interface {
	List(ctx context.Context) ([]models.StoreUser, error)
	GetByID(ctx context.Context, id string) (*models.StoreUser, error)
	Create(ctx context.Context, user *models.StoreUser, password string) (*models.StoreUser, error)
	Update(ctx context.Context, id string, user *models.StoreUser) (*models.StoreUser, error)
	Delete(ctx context.Context, id string) error

	// SetAvatar อัปเดต avatar URL ของ user (หลังอัปโหลดรูปขึ้น storage แล้ว)
	SetAvatar(ctx context.Context, id, avatarURL string) (*models.StoreUser, error)
}
