package dto

import "elfateh-admin/pkg/pagination"

// ListQuery พารามิเตอร์ list ที่ใช้ร่วมกันทุก resource
type ListQuery struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
}

// Page ผลลัพธ์แบบแบ่งหน้า
type Page[T any] struct {
	Items []T             `json:"items"`
	Info  pagination.Info `json:"pagination"`
}

// NewPage สร้าง Page พร้อมคำนวณ pagination info
func NewPage[T any](items []T, page, limit, total int) Page[T] {
	return Page[T]{
		Items: items,
		Info:  pagination.Compute(page, limit, total),
	}
}
