package routes

import (
	"github.com/gofiber/fiber/v2"

	"elfateh-admin/interfaces/api/handlers"
	"elfateh-admin/interfaces/api/middleware"
)

func SetupUserRoutes(api fiber.Router, h *handlers.Handlers) {
	users := api.Group("/users", middleware.Protected())

	users.Get("/", h.UserHandler.List)
	users.Get("/:id", h.UserHandler.GetByID)
	users.Post("/", h.UserHandler.Create)
	users.Put("/:id", h.UserHandler.Update)
	users.Post("/:id/avatar", h.UserHandler.UploadAvatar)
	users.Delete("/:id", h.UserHandler.Delete)
}
