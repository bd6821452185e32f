package repositories

import (
	"context"

	"elfateh-admin/domain/models"
	"elfateh-admin/pkg/pagination"
)

// ProductRepository gateway ไปยัง products ของ upstream (server-side pagination)
type ProductRepository interface {
	// List ดึงจาก /products/admin พร้อม filters
	List(ctx context.Context, filters ProductFilters) ([]models.Product, pagination.Info, error)

	// ListBySubcategory ดึงสินค้าใน subcategory
	ListBySubcategory(ctx context.Context, subcategoryID string, filters ProductFilters) ([]models.Product, pagination.Info, error)

	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Update(ctx context.Context, id string, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}
