package dto

import "elfateh-admin/domain/models"

// === Requests ===

type LoginRequest struct {
	Username   string `json:"username" validate:"required,min=1,max=100"`
	Password   string `json:"password" validate:"required,min=1"`
	RememberMe bool   `json:"rememberMe"`
}

type RegisterAdminRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// === Responses ===

type LoginResponse struct {
	Token string           `json:"token"`
	Admin models.AdminUser `json:"admin"`
}

type SessionResponse struct {
	Authenticated      bool              `json:"authenticated"`
	Admin              *models.AdminUser `json:"admin,omitempty"`
	RememberedUsername string            `json:"rememberedUsername,omitempty"`
}
