package handlers

import (
	"github.com/gofiber/fiber/v2"

	"elfateh-admin/domain/services"
	"elfateh-admin/pkg/logger"
	"elfateh-admin/pkg/utils"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats ตัวเลขสรุป + ข้อมูลดิบของทุก widget
// GET /api/v1/dashboard
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	ctx := c.UserContext()

	resp, err := h.dashboardService.Stats(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to build dashboard stats", "error", err)
		return utils.InternalServerErrorResponse(c)
	}
	return utils.SuccessResponse(c, resp)
}

// ProductAnalytics breakdown ของหน้า reports
// GET /api/v1/dashboard/products
func (h *DashboardHandler) ProductAnalytics(c *fiber.Ctx) error {
	ctx := c.UserContext()

	analytics, err := h.dashboardService.ProductAnalytics(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to build product analytics", "error", err)
		return utils.InternalServerErrorResponse(c)
	}
	return utils.SuccessResponse(c, analytics)
}

// OrderAnalytics ยอดขายตามสถานะ
// GET /api/v1/dashboard/orders
func (h *DashboardHandler) OrderAnalytics(c *fiber.Ctx) error {
	ctx := c.UserContext()

	analytics, err := h.dashboardService.OrderAnalytics(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to build order analytics", "error", err)
		return utils.InternalServerErrorResponse(c)
	}
	return utils.SuccessResponse(c, analytics)
}
