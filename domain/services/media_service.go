package services

import (
	"context"
	"io"
)

// MediaService อัปโหลดรูปภาพขึ้น object storage แล้วคืน URL
// ให้ฟอร์มสินค้า/หมวดหมู่เอาไปใช้
type MediaService interface {
	UploadImage(ctx context.Context, kind, filename, contentType string, file io.Reader) (string, error)
}
