package models

import "time"

// AdminUser ผู้ดูแลระบบที่ล็อกอินเข้า dashboard
type AdminUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"` // admin, super-admin
	Avatar   string `json:"avatar,omitempty"`
}

// StoreUser ผู้ใช้ของร้าน (จัดการผ่านหน้า users)
type StoreUser struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Role      string     `json:"role"`
	Avatar    string     `json:"avatar,omitempty"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}
