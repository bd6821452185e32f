package routes

import (
	"github.com/gofiber/fiber/v2"

	"elfateh-admin/interfaces/api/handlers"
	"elfateh-admin/interfaces/api/middleware"
)

func SetupCouponRoutes(api fiber.Router, h *handlers.Handlers) {
	coupons := api.Group("/coupons", middleware.Protected())

	coupons.Get("/", h.CouponHandler.List)
	coupons.Get("/:id", h.CouponHandler.GetByID)
	coupons.Post("/", h.CouponHandler.Create)
	coupons.Put("/:id", h.CouponHandler.Update)
	coupons.Patch("/:id/toggle", h.CouponHandler.Toggle)
	coupons.Delete("/:id", h.CouponHandler.Delete)
}
