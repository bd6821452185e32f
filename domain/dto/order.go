package dto

import "elfateh-admin/domain/models"

// === Requests ===

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed processing shipped delivered cancelled"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" validate:"required,oneof=pending paid failed refunded"`
}

// OrderListQuery filters ของหน้า orders (server-side pagination)
type OrderListQuery struct {
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	Status    string `query:"status"`
	Search    string `query:"search"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	Sort      string `query:"sort"`
}

// === Responses ===

type OrderPage = Page[models.Order]

type OrderStatusResponse struct {
	Updated bool   `json:"updated"`
	Status  string `json:"status"`
}
