package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/services"
	"elfateh-admin/pkg/logger"
	"elfateh-admin/pkg/utils"
)

type SettingHandler struct {
	settingsService services.SettingsService
}

func NewSettingHandler(settingsService services.SettingsService) *SettingHandler {
	return &SettingHandler{settingsService: settingsService}
}

// Get การตั้งค่าปัจจุบันของร้าน
// GET /api/v1/settings
func (h *SettingHandler) Get(c *fiber.Ctx) error {
	ctx := c.UserContext()
	return utils.SuccessResponse(c, h.settingsService.Get(ctx))
}

// Update partial update — field ที่ไม่ส่งมาไม่ถูกแตะ
// PUT /api/v1/settings
func (h *SettingHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	settings, err := h.settingsService.Update(ctx, &req)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "Settings updated")
	return utils.SuccessResponse(c, settings)
}

// Reset กลับเป็นค่า default ทั้งหมด
// POST /api/v1/settings/reset
func (h *SettingHandler) Reset(c *fiber.Ctx) error {
	ctx := c.UserContext()

	settings, err := h.settingsService.Reset(ctx)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "Settings reset to defaults")
	return utils.SuccessResponse(c, settings)
}

// Quote คำนวณค่าส่ง + ภาษีของยอดที่กำหนด (ให้ UI แสดง preview)
// GET /api/v1/settings/quote?total=650
func (h *SettingHandler) Quote(c *fiber.Ctx) error {
	ctx := c.UserContext()

	total, err := strconv.ParseFloat(c.Query("total", "0"), 64)
	if err != nil || total < 0 {
		return utils.BadRequestResponse(c, "Invalid total")
	}

	shipping := h.settingsService.CalculateShippingCost(ctx, total)
	tax := h.settingsService.CalculateTax(ctx, total)

	return utils.SuccessResponse(c, fiber.Map{
		"orderTotal":   total,
		"shippingCost": shipping,
		"tax":          tax,
		"grandTotal":   total + shipping + tax,
		"display":      h.settingsService.FormatPrice(ctx, total+shipping+tax),
	})
}
