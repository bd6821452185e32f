package services

import (
	"context"

	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
)

// SettingsService การตั้งค่าร้าน + ตัวช่วยคำนวณที่หน้าอื่นใช้
type SettingsService interface {
	// Get ค่าปัจจุบัน (defaults ทับด้วยของที่เก็บไว้)
	Get(ctx context.Context) models.Settings

	// Update merge partial ลงค่าปัจจุบันแล้ว persist
	Update(ctx context.Context, req *dto.UpdateSettingsRequest) (models.Settings, error)

	// Reset กลับเป็นค่า default ทั้งหมด
	Reset(ctx context.Context) (models.Settings, error)

	// CalculateShippingCost คืน 0 เมื่อยอด >= freeShippingThreshold
	// (เท่ากับ threshold พอดีก็ฟรี) นอกนั้นคืน flat shippingCost
	CalculateShippingCost(ctx context.Context, orderTotal float64) float64

	// CalculateTax คืน amount * taxRate / 100
	CalculateTax(ctx context.Context, amount float64) float64

	// FormatPrice เช่น "150.00 ج.م"
	FormatPrice(ctx context.Context, price float64) string
}
