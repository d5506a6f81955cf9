package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/repository"
	"volunteerhub-backend/internal/security"
)

type staffService struct {
	volunteerRepo repository.VolunteerRepository
	orgRepo       repository.OrganizationRepository
	adminRepo     repository.AdminUserRepository
	sink          NotificationSink
	baseURL       string
}

func NewStaffService(volunteerRepo repository.VolunteerRepository, orgRepo repository.OrganizationRepository, adminRepo repository.AdminUserRepository, sink NotificationSink, baseURL string) StaffService {
	return &staffService{
		volunteerRepo: volunteerRepo,
		orgRepo:       orgRepo,
		adminRepo:     adminRepo,
		sink:          sink,
		baseURL:       baseURL,
	}
}

func (s *staffService) OrgName(ctx context.Context, orgID int32) (string, error) {
	return s.orgRepo.GetName(ctx, orgID)
}

func (s *staffService) ListVolunteers(ctx context.Context, orgID int32) ([]domain.Volunteer, error) {
	return s.volunteerRepo.ListByOrg(ctx, orgID)
}

func (s *staffService) GetVolunteer(ctx context.Context, volunteerID, orgID int32) (*domain.Volunteer, error) {
	return s.volunteerRepo.GetScoped(ctx, volunteerID, orgID)
}

func (s *staffService) CreateVolunteer(ctx context.Context, orgID int32, in VolunteerInput) (*domain.Volunteer, error) {
	if err := validateVolunteerInput(in, true); err != nil {
		return nil, err
	}
	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	v := &domain.Volunteer{
		OrganizationID: orgID,
		Username:       in.Username,
		PasswordHash:   hash,
		FullName:       in.FullName,
		NationalID:     in.NationalID,
		Email:          in.Email,
		PhoneNumber:    in.PhoneNumber,
		BirthYear:      in.BirthYear,
		Gender:         in.Gender,
		PostalCode:     in.PostalCode,
		Address:        in.Address,
	}
	if err := s.volunteerRepo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *staffService) UpdateVolunteer(ctx context.Context, volunteerID, orgID int32, in VolunteerInput) error {
	if err := validateVolunteerInput(in, false); err != nil {
		return err
	}
	v := &domain.Volunteer{
		ID:          volunteerID,
		Username:    in.Username,
		FullName:    in.FullName,
		NationalID:  in.NationalID,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		BirthYear:   in.BirthYear,
		Gender:      in.Gender,
		PostalCode:  in.PostalCode,
		Address:     in.Address,
	}
	if in.Password != "" {
		hash, err := security.HashPassword(in.Password)
		if err != nil {
			return err
		}
		v.PasswordHash = hash
	}
	return s.volunteerRepo.UpdateScoped(ctx, v, orgID)
}

func (s *staffService) DeleteVolunteer(ctx context.Context, volunteerID, orgID int32) error {
	if _, err := s.volunteerRepo.GetScoped(ctx, volunteerID, orgID); err != nil {
		return err
	}
	return s.volunteerRepo.Delete(ctx, volunteerID)
}

// InviteVolunteer registers the account with a generated temporary
// password and mails the credentials together with a login link.
func (s *staffService) InviteVolunteer(ctx context.Context, orgID int32, in VolunteerInput) (*domain.Volunteer, error) {
	tempPassword := uuid.NewString()[:8]
	in.Password = tempPassword

	v, err := s.CreateVolunteer(ctx, orgID, in)
	if err != nil {
		return nil, err
	}

	orgName, err := s.orgRepo.GetName(ctx, orgID)
	if err != nil {
		orgName = ""
	}
	subject := "【地域支援Hub】アカウント登録のご案内"
	body := fmt.Sprintf("%s 様\n\n%s よりボランティアアカウントが発行されました。\n\nメールアドレス: %s\n仮パスワード: %s\n\n以下のリンクからログインし、パスワードを変更してください:\n%s/volunteer/login\n\n地域支援Hub",
		v.FullName, orgName, v.Email, tempPassword, s.baseURL)
	if err := s.sink.Send(ctx, v.Email, v.FullName, subject, body); err != nil {
		// The account exists either way; staff can resend manually.
		logger.Error("invitation email failed", "volunteer_id", v.ID, "error", err)
	}
	return v, nil
}

func (s *staffService) ListStaffAccounts(ctx context.Context, orgID int32) ([]domain.AdminUser, error) {
	return s.adminRepo.ListByOrg(ctx, orgID)
}

func (s *staffService) CreateStaffAccount(ctx context.Context, orgID int32, username, password string) error {
	if username == "" || password == "" {
		return invalid("username", "username and password are required")
	}
	hash, err := security.HashPassword(password)
	if err != nil {
		return err
	}
	a := &domain.AdminUser{
		OrganizationID: orgID,
		Username:       username,
		PasswordHash:   hash,
		Role:           domain.AdminRoleStaff,
	}
	return s.adminRepo.Create(ctx, a)
}
