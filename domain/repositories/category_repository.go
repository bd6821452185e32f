package repositories

import (
	"context"

	"elfateh-admin/domain/models"
)

// CategoryRepository gateway ไปยัง categories ของ upstream commerce API
type CategoryRepository interface {
	// List ดึง categories จาก public endpoint
	List(ctx context.Context) ([]models.Category, error)

	// ListAdmin ดึง categories จาก admin endpoint (ต้องมี token)
	ListAdmin(ctx context.Context) ([]models.Category, error)

	// ListByParent ดึง subcategories ของ parent ที่กำหนด
	// (request แยกต่อ parent — ใช้ทั้งตอน prefetch และ lazy expand)
	ListByParent(ctx context.Context, parentID string) ([]models.Category, error)

	// GetByID ดึง category เดี่ยว
	GetByID(ctx context.Context, id string) (*models.Category, error)

	Create(ctx context.Context, category *models.Category) (*models.Category, error)
	Update(ctx context.Context, id string, category *models.Category) (*models.Category, error)

	// Delete ลบ category — upstream cascade subcategories ให้เอง
	Delete(ctx context.Context, id string) error
}
