package service

import (
	"context"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
	"volunteerhub-backend/internal/security"
)

type adminService struct {
	orgRepo        repository.OrganizationRepository
	prefectureRepo repository.PrefectureRepository
	adminRepo      repository.AdminUserRepository
	superAdminRepo repository.SuperAdminRepository
	categoryRepo   repository.CategoryRepository
}

func NewAdminService(orgRepo repository.OrganizationRepository, prefectureRepo repository.PrefectureRepository, adminRepo repository.AdminUserRepository, superAdminRepo repository.SuperAdminRepository, categoryRepo repository.CategoryRepository) AdminService {
	return &adminService{
		orgRepo:        orgRepo,
		prefectureRepo: prefectureRepo,
		adminRepo:      adminRepo,
		superAdminRepo: superAdminRepo,
		categoryRepo:   categoryRepo,
	}
}

func (s *adminService) RegisterOrganization(ctx context.Context, prefectureName, orgName, applicationDate string) (*domain.Organization, error) {
	if prefectureName == "" || orgName == "" {
		return nil, invalid("name", "prefecture and organization name are required")
	}
	if applicationDate == "" {
		applicationDate = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", applicationDate); err != nil {
		return nil, invalid("application_date", "application date must be YYYY-MM-DD")
	}

	pref, err := s.prefectureRepo.GetByName(ctx, prefectureName)
	if err != nil {
		return nil, invalid("prefecture_name", "unknown prefecture")
	}

	org := &domain.Organization{
		PrefectureID:    pref.ID,
		Name:            orgName,
		IsActive:        true,
		ApplicationDate: applicationDate,
	}
	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *adminService) DeactivateOrganization(ctx context.Context, orgID int32) error {
	return s.orgRepo.Deactivate(ctx, orgID)
}

func (s *adminService) ListRegions(ctx context.Context, prefectureFilter string) ([]domain.RegisteredRegion, error) {
	return s.orgRepo.ListRegions(ctx, prefectureFilter)
}

func (s *adminService) AddPrefecture(ctx context.Context, name string) (*domain.Prefecture, error) {
	if name == "" {
		return nil, invalid("name", "prefecture name is required")
	}
	p := &domain.Prefecture{Name: name}
	if err := s.prefectureRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *adminService) ListPrefectures(ctx context.Context) ([]domain.Prefecture, error) {
	return s.prefectureRepo.List(ctx)
}

func (s *adminService) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	return s.orgRepo.ListActive(ctx)
}

func (s *adminService) ListOrganizationsByPrefecture(ctx context.Context, prefectureID int32) ([]domain.Organization, error) {
	return s.orgRepo.ListByPrefecture(ctx, prefectureID)
}

func (s *adminService) CreateAdminUser(ctx context.Context, orgID int32, username, password string, role domain.AdminRole) error {
	if username == "" || password == "" {
		return invalid("username", "username and password are required")
	}
	if role != domain.AdminRoleOrgAdmin && role != domain.AdminRoleStaff {
		return invalid("role", "invalid role")
	}
	hash, err := security.HashPassword(password)
	if err != nil {
		return err
	}
	return s.adminRepo.Create(ctx, &domain.AdminUser{
		OrganizationID: orgID,
		Username:       username,
		PasswordHash:   hash,
		Role:           role,
	})
}

func (s *adminService) UpdateAdminUser(ctx context.Context, username string, orgID int32, role domain.AdminRole, newPassword string) error {
	if role != domain.AdminRoleOrgAdmin && role != domain.AdminRoleStaff {
		return invalid("role", "invalid role")
	}
	hash := ""
	if newPassword != "" {
		var err error
		hash, err = security.HashPassword(newPassword)
		if err != nil {
			return err
		}
	}
	return s.adminRepo.Update(ctx, username, orgID, role, hash)
}

func (s *adminService) DeleteAdminUser(ctx context.Context, username string) error {
	return s.adminRepo.Delete(ctx, username)
}

func (s *adminService) ListAdminUsers(ctx context.Context) ([]domain.AdminUser, error) {
	return s.adminRepo.List(ctx)
}

func (s *adminService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if name == "" {
		return nil, invalid("category_name", "category name is required")
	}
	c := &domain.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *adminService) UpdateCategory(ctx context.Context, id int32, name string) error {
	if name == "" {
		return invalid("category_name", "category name is required")
	}
	return s.categoryRepo.Update(ctx, id, name)
}

func (s *adminService) DeleteCategory(ctx context.Context, id int32) error {
	return s.categoryRepo.Delete(ctx, id)
}

func (s *adminService) CreateSuperAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return invalid("username", "username and password are required")
	}
	hash, err := security.HashPassword(password)
	if err != nil {
		return err
	}
	return s.superAdminRepo.Create(ctx, &domain.SuperAdmin{Username: username, PasswordHash: hash})
}

func (s *adminService) ListSuperAdmins(ctx context.Context) ([]domain.SuperAdmin, error) {
	return s.superAdminRepo.List(ctx)
}

// DeleteSuperAdmin refuses to remove the caller's own account so the
// platform cannot lock itself out.
func (s *adminService) DeleteSuperAdmin(ctx context.Context, caller, username string) error {
	if caller == username {
		return ErrSelfDelete
	}
	return s.superAdminRepo.Delete(ctx, username)
}
