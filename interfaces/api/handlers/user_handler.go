package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"elfateh-admin/application/serviceimpl"
	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
	"elfateh-admin/domain/services"
	"elfateh-admin/pkg/logger"
	"elfateh-admin/pkg/utils"
)

type UserHandler struct {
	userService   services.UserService
	maxUploadSize int64
}

func NewUserHandler(userService services.UserService, maxUploadSize int64) *UserHandler {
	return &UserHandler{userService: userService, maxUploadSize: maxUploadSize}
}

// List ผู้ใช้ทั้งหมดของร้าน
// GET /api/v1/users
func (h *UserHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	users, err := h.userService.List(ctx)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrUsersLoad) {
			return utils.SuccessWithMessage(c, dto.UserListResponse{Users: []models.StoreUser{}}, err.Error())
		}
		return upstreamOrInternal(c, err)
	}

	return utils.SuccessResponse(c, dto.UserListResponse{Users: users})
}

// GetByID ดึงผู้ใช้เดี่ยว
// GET /api/v1/users/:id
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	user, err := h.userService.GetByID(ctx, id)
	if err != nil {
		return upstreamOrInternal(c, err)
	}
	if user == nil {
		return utils.NotFoundResponse(c, "User not found")
	}
	return utils.SuccessResponse(c, user)
}

// Create สร้างผู้ใช้ใหม่
// POST /api/v1/users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	user, err := h.userService.Create(ctx, &req)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "User created", "username", user.Username)
	return utils.CreatedResponse(c, user)
}

// Update อัปเดตผู้ใช้
// PUT /api/v1/users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	user, err := h.userService.Update(ctx, id, &req)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, user)
}

// Delete ลบผู้ใช้
// DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	if err := h.userService.Delete(ctx, id); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "User deleted", "user_id", id)
	return utils.SuccessResponse(c, fiber.Map{"deleted": true})
}

// UploadAvatar อัปโหลดรูป avatar แล้วอัปเดต URL ที่ upstream
// POST /api/v1/users/:id/avatar (multipart field: avatar)
func (h *UserHandler) UploadAvatar(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return utils.BadRequestResponse(c, "Avatar file is required")
	}
	if fileHeader.Size > h.maxUploadSize {
		return utils.BadRequestResponse(c, serviceimpl.ErrUploadTooBig.Error())
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "Unable to read uploaded file")
	}
	defer file.Close()

	user, err := h.userService.UploadAvatar(ctx, id, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "Avatar updated", "user_id", id)
	return utils.SuccessResponse(c, user)
}
