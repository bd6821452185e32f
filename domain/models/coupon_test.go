package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCouponIsPercentage(t *testing.T) {
	tests := []struct {
		name         string
		discountType string
		discount     float64
		expected     bool
	}{
		{"explicit percentage", DiscountTypePercentage, 150, true},
		{"explicit fixed wins over small discount", DiscountTypeFixed, 50, false},
		{"untyped small discount treated as percentage", "", 50, true},
		{"untyped boundary 100 treated as percentage", "", 100, true},
		{"untyped large discount treated as fixed", "", 150, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp := Coupon{DiscountType: tt.discountType, Discount: tt.discount}
			assert.Equal(t, tt.expected, cp.IsPercentage())
		})
	}
}

func TestCouponFormatDiscount(t *testing.T) {
	tests := []struct {
		name     string
		coupon   Coupon
		expected string
	}{
		{"percentage", Coupon{Discount: 50}, "50%"},
		{"fixed amount with currency", Coupon{Discount: 150}, "150 EGP"},
		{"fractional percentage keeps decimals", Coupon{Discount: 12.5}, "12.5%"},
		{"explicit fixed under 100", Coupon{DiscountType: DiscountTypeFixed, Discount: 75}, "75 EGP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.coupon.FormatDiscount("EGP"))
		})
	}
}

func TestCouponIsExpired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	assert.False(t, (&Coupon{}).IsExpired(), "no expiry means never expired")
	assert.True(t, (&Coupon{ExpiresAt: &past}).IsExpired())
	assert.False(t, (&Coupon{ExpiresAt: &future}).IsExpired())
}

func TestCouponIsExhausted(t *testing.T) {
	assert.False(t, (&Coupon{UsageLimit: 0, UsedCount: 999}).IsExhausted(), "no limit means never exhausted")
	assert.True(t, (&Coupon{UsageLimit: 10, UsedCount: 10}).IsExhausted())
	assert.False(t, (&Coupon{UsageLimit: 10, UsedCount: 9}).IsExhausted())
}
