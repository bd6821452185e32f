package services

import (
	"context"
	"io"

	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
)

// UserService จัดการผู้ใช้ของร้าน
type UserService interface {
	List(ctx context.Context) ([]models.StoreUser, error)
	GetByID(ctx context.Context, id string) (*models.StoreUser, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*models.StoreUser, error)
	Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*models.StoreUser, error)
	Delete(ctx context.Context, id string) error

	// UploadAvatar เก็บรูปขึ้น storage แล้วอัปเดต URL ไปที่ upstream
	UploadAvatar(ctx context.Context, id, filename, contentType string, file io.Reader) (*models.StoreUser, error)
}
