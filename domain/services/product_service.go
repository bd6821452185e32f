package services

import (
	"context"

	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
)

// ProductService จัดการสินค้า — pagination เป็นหน้าที่ของ upstream
type ProductService interface {
	// List ดึงสินค้าตาม filters — transport พังคืนหน้าว่าง
	List(ctx context.Context, query *dto.ProductListQuery) (*dto.ProductPage, error)

	// ListBySubcategory ดึงสินค้าใน subcategory
	ListBySubcategory(ctx context.Context, subcategoryID string, query *dto.ProductListQuery) (*dto.ProductPage, error)

	// GetByID คืน nil ถ้าไม่พบ
	GetByID(ctx context.Context, id string) (*models.Product, error)

	Create(ctx context.Context, req *dto.CreateProductRequest) (*models.Product, error)
	Update(ctx context.Context, id string, req *dto.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}
