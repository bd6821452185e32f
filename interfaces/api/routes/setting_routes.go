package routes

import (
	"github.com/gofiber/fiber/v2"

	"elfateh-admin/interfaces/api/handlers"
	"elfateh-admin/interfaces/api/middleware"
)

// SetupSettingRoutes การตั้งค่าร้าน (ค่าส่ง ภาษี สกุลเงิน ฯลฯ)
func SetupSettingRoutes(api fiber.Router, h *handlers.Handlers) {
	settings := api.Group("/settings", middleware.Protected())

	settings.Get("/", h.SettingHandler.Get)
	settings.Get("/quote", h.SettingHandler.Quote)
	settings.Put("/", h.SettingHandler.Update)
	settings.Post("/reset", h.SettingHandler.Reset)
}
