package ports

import "io"

// StoragePort interface สำหรับ object storage ที่เก็บรูปภาพ
// (สินค้า หมวดหมู่ avatar) — ทำให้เปลี่ยน provider ได้ง่าย
type StoragePort interface {
	// UploadFile อัปโหลดไฟล์ไปยัง storage
	// path: เส้นทางที่จะเก็บไฟล์ (เช่น "images/products/uuid-name.jpg")
	// contentType: MIME type ของไฟล์
	// return: URL ที่เข้าถึงไฟล์ได้
	UploadFile(file io.Reader, path string, contentType string) (string, error)

	// DeleteFile ลบไฟล์จาก storage
	DeleteFile(path string) error

	// GetFileURL รับ URL สำหรับเข้าถึงไฟล์
	GetFileURL(path string) string

	// GetProviderName ชื่อ provider (s3)
	GetProviderName() string
}
