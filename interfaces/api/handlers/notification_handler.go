package handlers

import (
	"github.com/gofiber/fiber/v2"

	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/services"
	"elfateh-admin/pkg/utils"
)

type NotificationHandler struct {
	notificationService services.NotificationService
}

func NewNotificationHandler(notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List feed ทั้งหมด (ใหม่สุดก่อน) + unread count
// GET /api/v1/notifications
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var query dto.NotificationListQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	return utils.SuccessResponse(c, h.notificationService.List(ctx, &query))
}

// Create เพิ่ม notification เข้า feed ตรง ๆ
// POST /api/v1/notifications
func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	notification, err := h.notificationService.Add(ctx, &req)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}
	return utils.CreatedResponse(c, notification)
}

// UnreadCount จำนวนที่ยังไม่อ่าน (สำหรับ badge)
// GET /api/v1/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	ctx := c.UserContext()
	return utils.SuccessResponse(c, fiber.Map{"unreadCount": h.notificationService.UnreadCount(ctx)})
}

// MarkAsRead ติ๊กอ่านรายการเดียว
// PATCH /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if err := h.notificationService.MarkAsRead(ctx, c.Params("id")); err != nil {
		return utils.InternalServerErrorResponse(c)
	}
	return utils.SuccessResponse(c, fiber.Map{"read": true})
}

// MarkAllAsRead ติ๊กอ่านทั้ง feed
// PATCH /api/v1/notifications/read-all
func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if err := h.notificationService.MarkAllAsRead(ctx); err != nil {
		return utils.InternalServerErrorResponse(c)
	}
	return utils.SuccessResponse(c, fiber.Map{"read": true})
}

// Delete ลบรายการเดียว
// DELETE /api/v1/notifications/:id
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if err := h.notificationService.Delete(ctx, c.Params("id")); err != nil {
		return utils.InternalServerErrorResponse(c)
	}
	return utils.SuccessResponse(c, fiber.Map{"deleted": true})
}

// ClearAll ล้างทั้ง feed
// DELETE /api/v1/notifications
func (h *NotificationHandler) ClearAll(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if err := h.notificationService.ClearAll(ctx); err != nil {
		return utils.InternalServerErrorResponse(c)
	}
	return utils.SuccessResponse(c, fiber.Map{"cleared": true})
}
