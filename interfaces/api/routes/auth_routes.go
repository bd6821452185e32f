package routes

import (
	"github.com/gofiber/fiber/v2"

	"elfateh-admin/interfaces/api/handlers"
	"elfateh-admin/interfaces/api/middleware"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers) {
	auth := api.Group("/auth")

	auth.Post("/login", h.AuthHandler.Login)
	auth.Get("/session", h.AuthHandler.Session)

	// Protected routes - require authentication
	auth.Post("/logout", middleware.Protected(), h.AuthHandler.Logout)
	auth.Post("/create-admin", middleware.Protected(), h.AuthHandler.RegisterAdmin)
}
