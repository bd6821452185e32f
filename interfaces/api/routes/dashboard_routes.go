package routes

import (
	"github.com/gofiber/fiber/v2"

	"elfateh-admin/interfaces/api/handlers"
	"elfateh-admin/interfaces/api/middleware"
)

func SetupDashboardRoutes(api fiber.Router, h *handlers.Handlers) {
	dashboard := api.Group("/dashboard", middleware.Protected())

	dashboard.Get("/", h.DashboardHandler.Stats)
	dashboard.Get("/products", h.DashboardHandler.ProductAnalytics)
	dashboard.Get("/orders", h.DashboardHandler.OrderAnalytics)
}
