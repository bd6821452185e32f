package dto

import "elfateh-admin/domain/models"

// === Requests ===

type CreateCouponRequest struct {
	Code           string  `json:"code" validate:"required,min=3,max=20"`
	Discount       float64 `json:"discount" validate:"required,gt=0"`
	DiscountType   string  `json:"discountType" validate:"omitempty,oneof=percentage fixed"`
	MinOrderAmount float64 `json:"minOrderAmount" validate:"omitempty,gte=0"`
	MaxDiscount    float64 `json:"maxDiscount" validate:"omitempty,gte=0"`
	UsageLimit     int     `json:"usageLimit" validate:"omitempty,gt=0"`
	ExpiresAt      string  `json:"expiresAt" validate:"required"`
	Description    string  `json:"description" validate:"omitempty,max=500"`
	IsActive       *bool   `json:"isActive"`
}

type UpdateCouponRequest struct {
	Code           *string  `json:"code" validate:"omitempty,min=3,max=20"`
	Discount       *float64 `json:"discount" validate:"omitempty,gt=0"`
	DiscountType   *string  `json:"discountType" validate:"omitempty,oneof=percentage fixed"`
	MinOrderAmount *float64 `json:"minOrderAmount" validate:"omitempty,gte=0"`
	MaxDiscount    *float64 `json:"maxDiscount" validate:"omitempty,gte=0"`
	UsageLimit     *int     `json:"usageLimit" validate:"omitempty,gt=0"`
	ExpiresAt      *string  `json:"expiresAt"`
	Description    *string  `json:"description" validate:"omitempty,max=500"`
	IsActive       *bool    `json:"isActive"`
}

type ToggleCouponRequest struct {
	IsActive bool `json:"isActive"`
}

// CouponListQuery filters ของหน้า coupons
type CouponListQuery struct {
	Page         int    `query:"page"`
	Limit        int    `query:"limit"`
	Search       string `query:"search"`
	Status       string `query:"status"`
	DiscountType string `query:"discountType"`
}

// === Responses ===

type CouponPage = Page[CouponResponse]

// CouponResponse คูปองพร้อมข้อความส่วนลดที่ format แล้ว
type CouponResponse struct {
	models.Coupon
	DiscountDisplay string `json:"discountDisplay"`
}

// CouponToResponse แปลง coupon พร้อม format ส่วนลดตามสกุลเงินของร้าน
func CouponToResponse(coupon models.Coupon, currency string) CouponResponse {
	return CouponResponse{
		Coupon:          coupon,
		DiscountDisplay: coupon.FormatDiscount(currency),
	}
}

// CouponsToResponses แปลงทั้ง slice
func CouponsToResponses(coupons []models.Coupon, currency string) []CouponResponse {
	responses := make([]CouponResponse, len(coupons))
	for i, coupon := range coupons {
		responses[i] = CouponToResponse(coupon, currency)
	}
	return responses
}
