package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"elfateh-admin/application/serviceimpl"
	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/services"
	"elfateh-admin/pkg/logger"
	"elfateh-admin/pkg/utils"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login ล็อกอินผ่าน upstream แล้วออก gateway token
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	resp, err := h.authService.Login(ctx, &req)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrLoginFailed) {
			return utils.UnauthorizedResponse(c, err.Error())
		}
		logger.ErrorContext(ctx, "Login failed", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, resp)
}

// Logout ล้าง session (token + admin)
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if err := h.authService.Logout(ctx); err != nil {
		logger.ErrorContext(ctx, "Logout failed", "error", err)
		return utils.InternalServerErrorResponse(c)
	}
	return utils.SuccessResponse(c, fiber.Map{"loggedOut": true})
}

// Session สถานะ session ปัจจุบัน + username ที่จำไว้
// GET /api/v1/auth/session
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	ctx := c.UserContext()

	resp := dto.SessionResponse{
		Authenticated:      h.authService.IsAuthenticated(ctx),
		RememberedUsername: h.authService.RememberedUsername(ctx),
	}
	if resp.Authenticated {
		resp.Admin = h.authService.CurrentUser(ctx)
	}
	return utils.SuccessResponse(c, resp)
}

// RegisterAdmin สมัคร admin ใหม่ผ่าน upstream
// POST /api/v1/auth/create-admin
func (h *AuthHandler) RegisterAdmin(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	if err := h.authService.RegisterAdmin(ctx, &req); err != nil {
		logger.ErrorContext(ctx, "Admin registration failed", "username", req.Username, "error", err)
		return utils.BadRequestResponse(c, "Failed to create admin")
	}

	return utils.CreatedResponse(c, fiber.Map{"username": req.Username})
}
