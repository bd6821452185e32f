package routes

import (
	"github.com/gofiber/fiber/v2"

	"elfateh-admin/interfaces/api/handlers"
	"elfateh-admin/interfaces/api/middleware"
)

func SetupProductRoutes(api fiber.Router, h *handlers.Handlers) {
	products := api.Group("/products", middleware.Protected())

	products.Get("/", h.ProductHandler.List)
	products.Get("/subcategory/:id", h.ProductHandler.ListBySubcategory)
	products.Get("/:id", h.ProductHandler.GetByID)
	products.Post("/", h.ProductHandler.Create)
	products.Put("/:id", h.ProductHandler.Update)
	products.Delete("/:id", h.ProductHandler.Delete)
}
