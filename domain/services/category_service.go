package services

import (
	"context"

	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
)

// CategoryService ประกอบ category tree สองระดับสำหรับหน้า categories
//
// ดึง categories มาทั้งหมดแล้วแบ่งหน้าในหน่วยความจำ (ต่างจาก resource
// อื่นที่ให้ upstream แบ่งหน้าให้) subcategories ของแต่ละ main โหลดด้วย
// request แยก และ cache ไว้ — ไม่ refetch ถ้า list ไม่ว่าง
type CategoryService interface {
	// List ดึง main categories ที่ filter + แบ่งหน้าแล้ว
	// พร้อม subcategories ที่ prefetch มา
	List(ctx context.Context, query *dto.CategoryListQuery) (*dto.CategoryListResponse, error)

	// Expand โหลด subcategories ของ main category (lazy load ตอนกดขยาย)
	// ข้ามถ้า cache มีของอยู่แล้ว
	Expand(ctx context.Context, id string) ([]models.Category, error)

	// GetByID ดึง category เดี่ยว — คืน nil ถ้าไม่พบหรือ transport พัง
	GetByID(ctx context.Context, id string) (*models.Category, error)

	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error)
	Update(ctx context.Context, id string, req *dto.UpdateCategoryRequest) (*models.Category, error)

	// Delete ลบ category (upstream cascade subcategories)
	Delete(ctx context.Context, id string) error
}
