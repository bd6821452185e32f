package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"elfateh-admin/pkg/logger"
	"elfateh-admin/pkg/utils"
)

// LoggerMiddleware structured logging สำหรับทุก request
// แนบ username ของ admin ที่ล็อกอินด้วย ไว้ไล่ audit trail
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		logger.InfoContext(c.UserContext(), "Request started",
			"method", c.Method(),
			"path", c.Path(),
			"ip", c.IP(),
			"user_agent", c.Get("User-Agent"),
		)

		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()

		fields := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", latency.String(),
			"bytes", len(c.Response().Body()),
		}
		// Protected() ใส่ user ใน locals ก่อนถึง handler — หลัง c.Next() อ่านได้เลย
		if user, uerr := utils.GetUserFromContext(c); uerr == nil {
			fields = append(fields, "admin", user.Username)
		}

		logFunc := logger.InfoContext
		if status >= 500 {
			logFunc = logger.ErrorContext
		} else if status >= 400 {
			logFunc = logger.WarnContext
		}
		logFunc(c.UserContext(), "Request completed", fields...)

		return err
	}
}
