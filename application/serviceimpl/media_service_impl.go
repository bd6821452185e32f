package serviceimpl

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"elfateh-admin/domain/ports"
	"elfateh-admin/domain/services"
	"elfateh-admin/pkg/logger"
)

type mediaService struct {
	storage ports.StoragePort
}

func NewMediaService(storage ports.StoragePort) services.MediaService {
	return &mediaService{storage: storage}
}

// UploadImage ตั้งชื่อไฟล์ใหม่เป็น slug + uuid กันชนกันและกัน path traversal
// kind แยก directory ตามการใช้งาน (products, categories, avatars)
func (s *mediaService) UploadImage(ctx context.Context, kind, filename, contentType string, file io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrUploadNotImage
	}

	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), ext)

	name := slug.Make(base)
	if name == "" {
		name = "image"
	}

	path := "images/" + kind + "/" + uuid.New().String()[:8] + "-" + name + ext

	url, err := s.storage.UploadFile(file, path, contentType)
	if err != nil {
		logger.ErrorContext(ctx, "Image upload failed", "path", path, "error", err)
		return "", ErrUploadFailed
	}

	logger.InfoContext(ctx, "Image uploaded", "path", path, "provider", s.storage.GetProviderName())
	return url, nil
}
