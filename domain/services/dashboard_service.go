package services

import (
	"context"

	"elfateh-admin/domain/dto"
)

// DashboardService รวมข้อมูลจากทุก resource มาเป็นสถิติหน้า dashboard
// แต่ละ source พังแยกกันได้ — source ที่พังนับเป็นศูนย์
type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardResponse, error)
	ProductAnalytics(ctx context.Context) (*dto.ProductAnalytics, error)
	OrderAnalytics(ctx context.Context) (*dto.OrderAnalytics, error)
}
