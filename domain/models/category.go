package models

import (
	"strings"
	"time"
)

// Category หมวดหมู่สินค้าแบบสองระดับ (main -> sub)
// main category คือ category ที่ไม่มี parent
type Category struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	NameAr        string     `json:"nameAr"`
	Description   string     `json:"description"`
	DescriptionAr string     `json:"descriptionAr"`
	Icon          string     `json:"icon"`
	Image         string     `json:"image"`
	ParentID      *string    `json:"parentId"`
	SubCategories []Category `json:"subCategories"`
	ProductCount  int        `json:"productCount"`
	IsActive      bool       `json:"isActive"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// IsMain ตรวจสอบว่าเป็น main category (ไม่มี parent)
func (c *Category) IsMain() bool {
	return c.ParentID == nil || *c.ParentID == ""
}

// HasParent ตรวจสอบว่าเป็น subcategory ของ parent ที่กำหนด
func (c *Category) HasParent(parentID string) bool {
	return c.ParentID != nil && *c.ParentID == parentID
}

// Matches ตรวจสอบว่า field ของ category เอง match กับคำค้นหรือไม่
// (ชื่อ/คำอธิบาย ทั้ง localized และ default)
func (c *Category) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}

	for _, field := range []string{c.NameAr, c.Name, c.DescriptionAr, c.Description} {
		if field != "" && strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// MatchesWithSubs ตามกติกาค้นหาของหน้า categories:
// match ที่ตัว main เอง หรือที่ subcategory ที่โหลดมาแล้วตัวใดตัวหนึ่ง
// subcategory ที่ยังไม่ถูกโหลดจะมองไม่เห็นจากการค้นหา
func (c *Category) MatchesWithSubs(term string) bool {
	if c.Matches(term) {
		return true
	}
	for i := range c.SubCategories {
		if c.SubCategories[i].Matches(term) {
			return true
		}
	}
	return false
}
