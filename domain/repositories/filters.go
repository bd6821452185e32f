package repositories

// ProductFilters ส่งต่อให้ upstream เป็น query string ตรง ๆ
type ProductFilters struct {
	Page        int
	Limit       int
	Search      string
	Subcategory string
	ProductType string
}

// OrderFilters filters ของ orders list
type OrderFilters struct {
	Page      int
	Limit     int
	Status    string
	Search    string
	StartDate string
	EndDate   string
	Sort      string
}

// CouponFilters filters ของ coupons list
type CouponFilters struct {
	Page         int
	Limit        int
	Search       string
	Status       string
	DiscountType string
}
