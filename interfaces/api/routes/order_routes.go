package routes

import (
	"github.com/gofiber/fiber/v2"

	"elfateh-admin/interfaces/api/handlers"
	"elfateh-admin/interfaces/api/middleware"
)

func SetupOrderRoutes(api fiber.Router, h *handlers.Handlers) {
	orders := api.Group("/orders", middleware.Protected())

	orders.Get("/", h.OrderHandler.List)
	orders.Get("/:id", h.OrderHandler.GetByID)
	orders.Patch("/:id/status", h.OrderHandler.UpdateStatus)
	orders.Patch("/:id/payment", h.OrderHandler.UpdatePayment)
}
