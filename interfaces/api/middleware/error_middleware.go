package middleware

import (
	"github.com/gofiber/fiber/v2"

	"elfateh-admin/pkg/logger"
	"elfateh-admin/pkg/utils"
)

// ErrorHandler ดัก error ที่หลุดจาก handler มาตอบเป็น envelope มาตรฐาน
// error ฝั่ง business ถูกแปลงใน handler แล้ว ที่มาถึงตรงนี้คือของไม่คาดคิด
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := utils.ErrCodeInternalError
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
			switch code {
			case fiber.StatusBadRequest:
				errCode = utils.ErrCodeBadRequest
			case fiber.StatusUnauthorized:
				errCode = utils.ErrCodeUnauthorized
			case fiber.StatusForbidden:
				errCode = utils.ErrCodeForbidden
			case fiber.StatusNotFound:
				errCode = utils.ErrCodeNotFound
			case fiber.StatusConflict:
				errCode = utils.ErrCodeConflict
			}
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error",
			"method", c.Method(),
			"path", c.Path(),
			"status", code,
			"error", err,
		)

		return utils.ErrorResponse(c, code, errCode, message, nil)
	}
}
