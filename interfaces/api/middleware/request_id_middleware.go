package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"elfateh-admin/pkg/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware แปะ request ID ให้ทุก request
// dashboard ส่ง ID มาเองได้ ถ้าไม่ส่งก็ gen ให้ แล้วตอบกลับใน header
// เดิมให้ client เอาไปอ้างตอนแจ้งปัญหา ID ไหลเข้า logger context
// ทำให้ log ทุกบรรทัดของ request เดียวกันผูกกันได้
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDHeader, requestID)
		c.SetUserContext(logger.ContextWithRequestID(c.Context(), requestID))
		c.Locals("request_id", requestID)

		return c.Next()
	}
}

// GetRequestIDFromContext ดึง request ID จาก fiber locals
func GetRequestIDFromContext(c *fiber.Ctx) string {
	if requestID, ok := c.Locals("request_id").(string); ok {
		return requestID
	}
	return ""
}
