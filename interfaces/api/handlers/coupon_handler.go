package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"elfateh-admin/application/serviceimpl"
	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/services"
	"elfateh-admin/pkg/logger"
	"elfateh-admin/pkg/pagination"
	"elfateh-admin/pkg/utils"
)

type CouponHandler struct {
	couponService services.CouponService
}

func NewCouponHandler(couponService services.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService}
}

// List คูปองพร้อมข้อความส่วนลดที่ format แล้ว
// GET /api/v1/coupons
func (h *CouponHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var query dto.CouponListQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	page, err := h.couponService.List(ctx, &query)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrCouponsLoad) {
			empty := &dto.CouponPage{
				Items: []dto.CouponResponse{},
				Info:  pagination.Compute(query.Page, query.Limit, 0),
			}
			return utils.SuccessWithMessage(c, empty, err.Error())
		}
		return upstreamOrInternal(c, err)
	}

	return utils.SuccessResponse(c, page)
}

// GetByID ดึงคูปองเดี่ยว
// GET /api/v1/coupons/:id
func (h *CouponHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	coupon, err := h.couponService.GetByID(ctx, id)
	if err != nil {
		return upstreamOrInternal(c, err)
	}
	if coupon == nil {
		return utils.NotFoundResponse(c, "Coupon not found")
	}
	return utils.SuccessResponse(c, coupon)
}

// Create สร้างคูปองใหม่
// POST /api/v1/coupons
func (h *CouponHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	coupon, err := h.couponService.Create(ctx, &req)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "Coupon created", "code", coupon.Code)
	return utils.CreatedResponse(c, coupon)
}

// Update อัปเดตคูปอง
// PUT /api/v1/coupons/:id
func (h *CouponHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	var req dto.UpdateCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	coupon, err := h.couponService.Update(ctx, id, &req)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, coupon)
}

// Delete ลบคูปอง
// DELETE /api/v1/coupons/:id
func (h *CouponHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	if err := h.couponService.Delete(ctx, id); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "Coupon deleted", "coupon_id", id)
	return utils.SuccessResponse(c, fiber.Map{"deleted": true})
}

// Toggle เปิด/ปิดคูปอง
// PATCH /api/v1/coupons/:id/toggle
func (h *CouponHandler) Toggle(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	var req dto.ToggleCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	coupon, err := h.couponService.Toggle(ctx, id, req.IsActive)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, coupon)
}
