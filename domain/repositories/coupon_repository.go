package repositories

import (
	"context"

	"elfateh-admin/domain/models"
	"elfateh-admin/pkg/pagination"
)

// CouponRepository gateway ไปยัง discount codes ของ upstream
type CouponRepository interface {
	List(ctx context.Context, filters CouponFilters) ([]models.Coupon, pagination.Info, error)
	GetByID(ctx context.Context, id string) (*models.Coupon, error)
	Create(ctx context.Context, coupon *models.Coupon) (*models.Coupon, error)
	Update(ctx context.Context, id string, coupon *models.Coupon) (*models.Coupon, error)
	Delete(ctx context.Context, id string) error

	// Toggle เปิด/ปิดคูปอง (PATCH isActive)
	Toggle(ctx context.Context, id string, isActive bool) (*models.Coupon, error)
}
