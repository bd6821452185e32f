package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"elfateh-admin/infrastructure/upstream"
	"elfateh-admin/pkg/utils"
)

// upstreamOrInternal map error ฝั่ง read ที่ไม่ใช่ fallback:
// รูป envelope เพี้ยนตอบ 502 ที่เหลือ 500
func upstreamOrInternal(c *fiber.Ctx, err error) error {
	var envErr *upstream.UnexpectedEnvelopeError
	if errors.As(err, &envErr) {
		return utils.UpstreamErrorResponse(c, envErr.Error())
	}
	return utils.InternalServerErrorResponse(c)
}
