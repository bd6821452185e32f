package models

import (
	"fmt"
	"time"
)

// ประเภทส่วนลด
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// Coupon คูปองส่วนลด (upstream เรียกว่า discount code)
type Coupon struct {
	ID             string     `json:"id"`
	Code           string     `json:"code"`
	Discount       float64    `json:"discount"`
	DiscountType   string     `json:"discountType,omitempty"`
	MinOrderAmount float64    `json:"minOrderAmount,omitempty"`
	MaxDiscount    float64    `json:"maxDiscount,omitempty"`
	UsageLimit     int        `json:"usageLimit,omitempty"`
	UsedCount      int        `json:"usedCount"`
	IsActive       bool       `json:"isActive"`
	Description    string     `json:"description,omitempty"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// IsPercentage ตีความประเภทส่วนลดตาม heuristic เดิมของ dashboard:
// ถ้าไม่ได้ระบุ discountType ให้ถือว่า discount <= 100 เป็นเปอร์เซ็นต์
// NOTE: heuristic นี้ผิดได้กับส่วนลดคงที่ <= 100 (inherited ambiguity —
// คงพฤติกรรมเดิมไว้จนกว่า product จะ confirm)
func (cp *Coupon) IsPercentage() bool {
	if cp.DiscountType == DiscountTypePercentage {
		return true
	}
	if cp.DiscountType == "" && cp.Discount <= 100 {
		return true
	}
	return false
}

// FormatDiscount แสดงส่วนลดเป็นข้อความ เช่น "50%" หรือ "150 EGP"
// currency คือรหัสสกุลเงินจาก settings
func (cp *Coupon) FormatDiscount(currency string) string {
	if cp.IsPercentage() {
		return fmt.Sprintf("%s%%", trimFloat(cp.Discount))
	}
	return fmt.Sprintf("%s %s", trimFloat(cp.Discount), currency)
}

// IsExpired ตรวจสอบว่าคูปองหมดอายุ
func (cp *Coupon) IsExpired() bool {
	return cp.ExpiresAt != nil && cp.ExpiresAt.Before(time.Now())
}

// IsExhausted ตรวจสอบว่าใช้ครบ limit แล้ว
func (cp *Coupon) IsExhausted() bool {
	return cp.UsageLimit > 0 && cp.UsedCount >= cp.UsageLimit
}

// trimFloat ตัด .00 ออกถ้าเป็นจำนวนเต็ม
func trimFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
