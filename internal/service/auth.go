package service

import (
	"context"
	"database/sql"
	"errors"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
	"volunteerhub-backend/internal/security"
)

type authService struct {
	volunteerRepo  repository.VolunteerRepository
	adminRepo      repository.AdminUserRepository
	superAdminRepo repository.SuperAdminRepository
}

func NewAuthService(volunteerRepo repository.VolunteerRepository, adminRepo repository.AdminUserRepository, superAdminRepo repository.SuperAdminRepository) AuthService {
	return &authService{
		volunteerRepo:  volunteerRepo,
		adminRepo:      adminRepo,
		superAdminRepo: superAdminRepo,
	}
}

// VolunteerLogin uses the tolerant verifier: accounts migrated from
// the legacy system may still carry a plaintext password.
func (s *authService) VolunteerLogin(ctx context.Context, email, password string) (*domain.Volunteer, error) {
	if email == "" || password == "" {
		return nil, invalid("email", "email and password are required")
	}
	v, err := s.volunteerRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !security.VerifyPassword(v.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return v, nil
}

func (s *authService) StaffLogin(ctx context.Context, username, password string) (*domain.AdminUser, error) {
	if username == "" || password == "" {
		return nil, invalid("username", "username and password are required")
	}
	a, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !security.VerifyPasswordStrict(a.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return a, nil
}

func (s *authService) SuperAdminLogin(ctx context.Context, username, password string) (*domain.SuperAdmin, error) {
	if username == "" || password == "" {
		return nil, invalid("username", "username and password are required")
	}
	sa, err := s.superAdminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !security.VerifyPasswordStrict(sa.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return sa, nil
}
