package dto

import "elfateh-admin/domain/models"

// DashboardStats ตัวเลขสรุปบนหน้า dashboard
type DashboardStats struct {
	TotalProducts    int     `json:"totalProducts"`
	TotalCategories  int     `json:"totalCategories"`
	TotalOrders      int     `json:"totalOrders"`
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalCoupons     int     `json:"totalCoupons"`
	TotalUsers       int     `json:"totalUsers"`
	ActiveProducts   int     `json:"activeProducts"`
	LowStockProducts int     `json:"lowStockProducts"`
	PendingOrders    int     `json:"pendingOrders"`
	DeliveredOrders  int     `json:"deliveredOrders"`
}

// DashboardResponse stats พร้อมข้อมูลดิบสำหรับ widget ต่าง ๆ
type DashboardResponse struct {
	Stats      DashboardStats    `json:"stats"`
	Products   []models.Product  `json:"products"`
	Categories []models.Category `json:"categories"`
	Orders     []models.Order    `json:"orders"`
	Coupons    []models.Coupon   `json:"coupons"`
	Users      []models.StoreUser `json:"users"`
}

// ProductAnalytics breakdown ของหน้า reports
type ProductAnalytics struct {
	TotalProducts      int `json:"totalProducts"`
	ActiveProducts     int `json:"activeProducts"`
	FeaturedProducts   int `json:"featuredProducts"`
	LowStockProducts   int `json:"lowStockProducts"`
	OutOfStockProducts int `json:"outOfStockProducts"`
}

// OrderAnalytics breakdown ยอดขายตามสถานะ
type OrderAnalytics struct {
	TotalOrders     int            `json:"totalOrders"`
	TotalRevenue    float64        `json:"totalRevenue"`
	StatusCounts    map[string]int `json:"statusCounts"`
	PendingOrders   int            `json:"pendingOrders"`
	ConfirmedOrders int            `json:"confirmedOrders"`
	DeliveredOrders int            `json:"deliveredOrders"`
}
