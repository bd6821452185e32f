package services

import (
	"context"

	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
)

// CouponService จัดการคูปองส่วนลด
type CouponService interface {
	List(ctx context.Context, query *dto.CouponListQuery) (*dto.CouponPage, error)
	GetByID(ctx context.Context, id string) (*models.Coupon, error)
	Create(ctx context.Context, req *dto.CreateCouponRequest) (*models.Coupon, error)
	Update(ctx context.Context, id string, req *dto.UpdateCouponRequest) (*models.Coupon, error)
	Delete(ctx context.Context, id string) error

	// Toggle เปิด/ปิดคูปอง
	Toggle(ctx context.Context, id string, isActive bool) (*models.Coupon, error)
}
