package models

import "time"

// ProductCategoryRef ข้อมูล category แบบย่อที่ฝังใน product
type ProductCategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Product สินค้า
type Product struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       float64            `json:"price"`
	Stock       int                `json:"stock"`
	Category    ProductCategoryRef `json:"category"`
	Subcategory string             `json:"subcategory,omitempty"`
	Images      []string           `json:"images"`
	ProductType string             `json:"productType"` // normal, featured, bestSeller, specialOffer
	Discount    float64            `json:"discount,omitempty"`
	IsActive    bool               `json:"isActive"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// LowStockThreshold เกณฑ์สินค้าใกล้หมด (ตาม dashboard เดิม)
const LowStockThreshold = 10

// IsLowStock ตรวจสอบว่าสต็อกต่ำกว่าเกณฑ์
func (p *Product) IsLowStock() bool {
	return p.Stock < LowStockThreshold
}

// IsOutOfStock ตรวจสอบว่าสินค้าหมด
func (p *Product) IsOutOfStock() bool {
	return p.Stock == 0
}
