package routes

import (
	"github.com/gofiber/fiber/v2"

	"elfateh-admin/interfaces/api/handlers"
	"elfateh-admin/interfaces/api/middleware"
)

func SetupUploadRoutes(api fiber.Router, h *handlers.Handlers) {
	uploads := api.Group("/uploads", middleware.Protected())

	uploads.Post("/:kind", h.MediaHandler.UploadImage)
}
