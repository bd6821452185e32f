package dto

import (
	"elfateh-admin/domain/models"
	"elfateh-admin/pkg/pagination"
)

// === Requests ===

// CreateCategoryRequest ฟอร์มสร้าง category — ฝั่งร้านใช้ชื่อ/คำอธิบาย
// ภาษาอาหรับเป็นข้อมูลหลัก field default เป็น optional fallback
type CreateCategoryRequest struct {
	NameAr        string  `json:"nameAr" validate:"required,min=1,max=100"`
	Name          string  `json:"name" validate:"omitempty,max=100"`
	DescriptionAr string  `json:"descriptionAr" validate:"omitempty,max=500"`
	Description   string  `json:"description" validate:"omitempty,max=500"`
	Image         string  `json:"image" validate:"omitempty,url"`
	ParentID      *string `json:"parentId"`
	IsActive      *bool   `json:"isActive"`
}

type UpdateCategoryRequest struct {
	NameAr        *string `json:"nameAr" validate:"omitempty,min=1,max=100"`
	Name          *string `json:"name" validate:"omitempty,max=100"`
	DescriptionAr *string `json:"descriptionAr" validate:"omitempty,max=500"`
	Description   *string `json:"description" validate:"omitempty,max=500"`
	Image         *string `json:"image" validate:"omitempty,url"`
	ParentID      *string `json:"parentId"`
	IsActive      *bool   `json:"isActive"`
}

// CategoryListQuery query ของหน้า categories (client-side pagination)
type CategoryListQuery struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
}

// === Responses ===

type CategoryListResponse struct {
	Categories []models.Category `json:"categories"`
	Pagination pagination.Info   `json:"pagination"`
}

type SubCategoryListResponse struct {
	SubCategories []models.Category `json:"subCategories"`
}
