package handlers

import (
	"github.com/gofiber/fiber/v2"

	"elfateh-admin/application/serviceimpl"
	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/services"
	"elfateh-admin/pkg/logger"
	"elfateh-admin/pkg/utils"
)

// kind ของรูปที่รับอัปโหลด — แยก directory บน storage
var allowedImageKinds = map[string]bool{
	"products":   true,
	"categories": true,
	"avatars":    true,
}

type MediaHandler struct {
	mediaService  services.MediaService
	maxUploadSize int64
}

func NewMediaHandler(mediaService services.MediaService, maxUploadSize int64) *MediaHandler {
	return &MediaHandler{mediaService: mediaService, maxUploadSize: maxUploadSize}
}

// UploadImage อัปโหลดรูปขึ้น storage แล้วคืน URL ให้ฟอร์มใช้
// POST /api/v1/uploads/:kind (multipart field: image)
func (h *MediaHandler) UploadImage(c *fiber.Ctx) error {
	ctx := c.UserContext()

	kind := c.Params("kind")
	if !allowedImageKinds[kind] {
		return utils.BadRequestResponse(c, "Unknown upload kind")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.BadRequestResponse(c, "Image file is required")
	}
	if fileHeader.Size > h.maxUploadSize {
		return utils.BadRequestResponse(c, serviceimpl.ErrUploadTooBig.Error())
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "Unable to read uploaded file")
	}
	defer file.Close()

	url, err := h.mediaService.UploadImage(ctx, kind, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "Image uploaded", "kind", kind)
	return utils.CreatedResponse(c, dto.AvatarResponse{URL: url})
}
