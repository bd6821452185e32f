package dto

import "elfateh-admin/domain/models"

// === Requests ===

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Category    string   `json:"category" validate:"required"`
	Subcategory string   `json:"subcategory"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
	ProductType string   `json:"productType" validate:"omitempty,oneof=normal featured bestSeller specialOffer"`
	Discount    float64  `json:"discount" validate:"omitempty,gte=0"`
	IsActive    *bool    `json:"isActive"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	Category    *string  `json:"category"`
	Subcategory *string  `json:"subcategory"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
	ProductType *string  `json:"productType" validate:"omitempty,oneof=normal featured bestSeller specialOffer"`
	Discount    *float64 `json:"discount" validate:"omitempty,gte=0"`
	IsActive    *bool    `json:"isActive"`
}

// ProductListQuery filters ของหน้า products (server-side pagination)
type ProductListQuery struct {
	Page        int    `query:"page"`
	Limit       int    `query:"limit"`
	Search      string `query:"search"`
	Subcategory string `query:"subcategory"`
	ProductType string `query:"productType"`
}

// === Responses ===

type ProductPage = Page[models.Product]
