package serviceimpl

import (
	"context"
	"errors"
	"io"

	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
	"elfateh-admin/domain/repositories"
	"elfateh-admin/domain/services"
	"elfateh-admin/infrastructure/upstream"
	"elfateh-admin/pkg/logger"
)

type userService struct {
	repo  repositories.UserRepository
	media services.MediaService
}

func NewUserService(repo repositories.UserRepository, media services.MediaService) services.UserService {
	return &userService{repo: repo, media: media}
}

func (s *userService) List(ctx context.Context) ([]models.StoreUser, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		var envErr *upstream.UnexpectedEnvelopeError
		if errors.As(err, &envErr) {
			return nil, err
		}
		logger.ErrorContext(ctx, "Failed to load users", "error", err)
		return nil, ErrUsersLoad
	}
	return users, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*models.StoreUser, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		var envErr *upstream.UnexpectedEnvelopeError
		if errors.As(err, &envErr) {
			return nil, err
		}
		logger.WarnContext(ctx, "Failed to load user", "user_id", id, "error", err)
		return nil, nil
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.StoreUser, error) {
	user := &models.StoreUser{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		IsActive:  true,
	}

	created, err := s.repo.Create(ctx, user, req.Password)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create user", "username", req.Username, "error", err)
		return nil, ErrUserCreate
	}
	return created, nil
}

func (s *userService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*models.StoreUser, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil || existing == nil {
		logger.WarnContext(ctx, "User to update not found", "user_id", id, "error", err)
		return nil, ErrUserUpdate
	}

	applyString(&existing.Username, req.Username)
	applyString(&existing.Email, req.Email)
	applyString(&existing.FirstName, req.FirstName)
	applyString(&existing.LastName, req.LastName)
	applyString(&existing.Role, req.Role)
	applyString(&existing.Avatar, req.Avatar)
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	updated, err := s.repo.Update(ctx, id, existing)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update user", "user_id", id, "error", err)
		return nil, ErrUserUpdate
	}
	return updated, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete user", "user_id", id, "error", err)
		return ErrUserDelete
	}
	return nil
}

// UploadAvatar เก็บรูปขึ้น storage ก่อน ได้ URL แล้วค่อยอัปเดต upstream
func (s *userService) UploadAvatar(ctx context.Context, id, filename, contentType string, file io.Reader) (*models.StoreUser, error) {
	url, err := s.media.UploadImage(ctx, "avatars", filename, contentType, file)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.SetAvatar(ctx, id, url)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to set avatar", "user_id", id, "error", err)
		return nil, ErrUserUpdate
	}
	return user, nil
}
