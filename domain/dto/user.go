package dto

import "elfateh-admin/domain/models"

// === Requests ===

type CreateUserRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=30"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"firstName" validate:"omitempty,max=50"`
	LastName  string `json:"lastName" validate:"omitempty,max=50"`
	Role      string `json:"role" validate:"omitempty,oneof=admin manager customer"`
}

type UpdateUserRequest struct {
	Username  *string `json:"username" validate:"omitempty,min=3,max=30"`
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
	FirstName *string `json:"firstName" validate:"omitempty,max=50"`
	LastName  *string `json:"lastName" validate:"omitempty,max=50"`
	Role      *string `json:"role" validate:"omitempty,oneof=admin manager customer"`
	Avatar    *string `json:"avatar" validate:"omitempty,url"`
	IsActive  *bool   `json:"isActive"`
}

// === Responses ===

type UserListResponse struct {
	Users []models.StoreUser `json:"users"`
}

type AvatarResponse struct {
	URL string `json:"url"`
}
