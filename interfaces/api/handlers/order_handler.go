package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"elfateh-admin/application/serviceimpl"
	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
	"elfateh-admin/domain/services"
	"elfateh-admin/pkg/logger"
	"elfateh-admin/pkg/pagination"
	"elfateh-admin/pkg/utils"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List คำสั่งซื้อแบบแบ่งหน้า
// GET /api/v1/orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var query dto.OrderListQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	page, err := h.orderService.List(ctx, &query)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrOrdersLoad) {
			empty := &dto.OrderPage{
				Items: []models.Order{},
				Info:  pagination.Compute(query.Page, query.Limit, 0),
			}
			return utils.SuccessWithMessage(c, empty, err.Error())
		}
		return upstreamOrInternal(c, err)
	}

	return utils.SuccessResponse(c, page)
}

// GetByID ดึง order เดี่ยว
// GET /api/v1/orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	order, err := h.orderService.GetByID(ctx, id)
	if err != nil {
		return upstreamOrInternal(c, err)
	}
	if order == nil {
		return utils.NotFoundResponse(c, "Order not found")
	}
	return utils.SuccessResponse(c, order)
}

// UpdateStatus ขอเปลี่ยนสถานะ order — server เป็นคนตัดสิน
// PATCH /api/v1/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	var req dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	updated, err := h.orderService.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "Order status update requested", "order_id", id, "status", req.Status, "updated", updated)
	return utils.SuccessResponse(c, dto.OrderStatusResponse{Updated: updated, Status: req.Status})
}

// UpdatePayment ขอเปลี่ยนสถานะการชำระเงิน
// PATCH /api/v1/orders/:id/payment
func (h *OrderHandler) UpdatePayment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	var req dto.UpdatePaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	updated, err := h.orderService.UpdatePayment(ctx, id, req.PaymentStatus)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, dto.OrderStatusResponse{Updated: updated, Status: req.PaymentStatus})
}
