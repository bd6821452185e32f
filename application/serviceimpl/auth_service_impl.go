package serviceimpl

import (
	"context"
	"errors"
	"time"

	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
	"elfateh-admin/domain/repositories"
	"elfateh-admin/domain/services"
	"elfateh-admin/infrastructure/upstream"
	"elfateh-admin/pkg/logger"
	"elfateh-admin/pkg/utils"
)

type authService struct {
	authRepo    repositories.AuthRepository
	sessionRepo repositories.SessionRepository
	jwtSecret   string
	tokenTTL    time.Duration
}

func NewAuthService(authRepo repositories.AuthRepository, sessionRepo repositories.SessionRepository, jwtSecret string) services.AuthService {
	return &authService{
		authRepo:    authRepo,
		sessionRepo: sessionRepo,
		jwtSecret:   jwtSecret,
		tokenTTL:    24 * time.Hour,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, upstreamToken, err := s.authRepo.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, upstream.ErrInvalidCredentials) {
			return nil, ErrLoginFailed
		}
		logger.ErrorContext(ctx, "Upstream login failed", "error", err)
		return nil, err
	}

	// เก็บ token + admin ก่อน — ถ้าเก็บไม่ได้ request ถัดไปจะไม่มี token
	// ถือว่า login ไม่สำเร็จ
	if err := s.sessionRepo.SaveToken(ctx, upstreamToken); err != nil {
		logger.ErrorContext(ctx, "Failed to persist auth token", "error", err)
		return nil, err
	}
	if err := s.sessionRepo.SaveAdmin(ctx, admin); err != nil {
		logger.ErrorContext(ctx, "Failed to persist admin user", "error", err)
		return nil, err
	}

	// remember me เก็บ/ล้างแยกจาก auth state
	if req.RememberMe {
		if err := s.sessionRepo.SaveRememberedUsername(ctx, req.Username); err != nil {
			logger.WarnContext(ctx, "Failed to remember username", "error", err)
		}
	} else {
		if err := s.sessionRepo.ClearRememberedUsername(ctx); err != nil {
			logger.WarnContext(ctx, "Failed to clear remembered username", "error", err)
		}
	}
	if err := s.sessionRepo.SetRememberMe(ctx, req.RememberMe); err != nil {
		logger.WarnContext(ctx, "Failed to persist remember-me flag", "error", err)
	}

	gatewayToken, err := utils.GenerateToken(admin.ID, admin.Username, admin.Email, admin.Role, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Admin logged in", "username", admin.Username)

	return &dto.LoginResponse{Token: gatewayToken, Admin: *admin}, nil
}

// Logout ลบเฉพาะ token + admin — remembered username อยู่รอด logout
func (s *authService) Logout(ctx context.Context) error {
	return s.sessionRepo.ClearAuth(ctx)
}

// IsAuthenticated จริงก็ต่อเมื่อมีทั้งสองอย่าง
// token เดี่ยว ๆ หรือ admin เดี่ยว ๆ ถือว่า session พัง
func (s *authService) IsAuthenticated(ctx context.Context) bool {
	token, err := s.sessionRepo.Token(ctx)
	if err != nil || token == "" {
		return false
	}
	admin, err := s.sessionRepo.Admin(ctx)
	return err == nil && admin != nil
}

func (s *authService) CurrentUser(ctx context.Context) *models.AdminUser {
	admin, err := s.sessionRepo.Admin(ctx)
	if err != nil {
		logger.WarnContext(ctx, "Failed to read admin from session", "error", err)
		return nil
	}
	return admin
}

func (s *authService) RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) error {
	return s.authRepo.CreateAdmin(ctx, req.Username, req.Email, req.Password)
}

func (s *authService) RememberedUsername(ctx context.Context) string {
	username, err := s.sessionRepo.RememberedUsername(ctx)
	if err != nil {
		return ""
	}
	return username
}
