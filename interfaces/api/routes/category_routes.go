package routes

import (
	"github.com/gofiber/fiber/v2"

	"elfateh-admin/interfaces/api/handlers"
	"elfateh-admin/interfaces/api/middleware"
)

// SetupCategoryRoutes หมวดหมู่หลัก + หมวดหมู่ย่อย (โครงสร้าง tree)
func SetupCategoryRoutes(api fiber.Router, h *handlers.Handlers) {
	categories := api.Group("/categories", middleware.Protected())

	categories.Get("/", h.CategoryHandler.List)
	categories.Get("/:id", h.CategoryHandler.GetByID)
	categories.Get("/:id/subcategories", h.CategoryHandler.Subcategories)
	categories.Post("/", h.CategoryHandler.Create)
	categories.Put("/:id", h.CategoryHandler.Update)
	categories.Delete("/:id", h.CategoryHandler.Delete)
}
