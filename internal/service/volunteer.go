package service

import (
	"context"
	"regexp"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
	"volunteerhub-backend/internal/security"
)

var nationalIDPattern = regexp.MustCompile(`^\d{12}$`)

type volunteerService struct {
	volunteerRepo   repository.VolunteerRepository
	applicationRepo repository.ApplicationRepository
}

func NewVolunteerService(volunteerRepo repository.VolunteerRepository, applicationRepo repository.ApplicationRepository) VolunteerService {
	return &volunteerService{
		volunteerRepo:   volunteerRepo,
		applicationRepo: applicationRepo,
	}
}

func validateVolunteerInput(in VolunteerInput, requirePassword bool) error {
	if in.Username == "" {
		return invalid("username", "username is required")
	}
	if requirePassword && in.Password == "" {
		return invalid("password", "password is required")
	}
	if in.FullName == "" {
		return invalid("full_name", "full name is required")
	}
	if in.Email == "" {
		return invalid("email", "email is required")
	}
	if in.NationalID == "" {
		return invalid("mynumber", "mynumber is required")
	}
	if !nationalIDPattern.MatchString(in.NationalID) {
		return invalid("mynumber", "mynumber must be exactly 12 digits")
	}
	return nil
}

func (s *volunteerService) Register(ctx context.Context, in VolunteerInput, orgID int32) (*domain.Volunteer, error) {
	if err := validateVolunteerInput(in, true); err != nil {
		return nil, err
	}
	exists, err := s.volunteerRepo.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrDuplicate
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

func (s *volunteerService) Get(ctx context.Context, volunteerID int32) (*domain.Volunteer, error) {
	return s.volunteerRepo.GetByID(ctx, volunteerID)
}

func (s *volunteerService) UpdateProfile(ctx context.Context, volunteerID int32, in ProfileUpdateInput) error {
	if in.CurrentPassword == "" {
		return invalid("current_password", "current password is required")
	}
	if in.Email == "" {
		return invalid("email", "email is required")
	}
	if in.NationalID != "" && !nationalIDPattern.MatchString(in.NationalID) {
		return invalid("mynumber", "mynumber must be exactly 12 digits")
	}

	v, err := s.volunteerRepo.GetByID(ctx, volunteerID)
	if err != nil {
		return err
	}
	if !security.VerifyPassword(v.PasswordHash, in.CurrentPassword) {
		return ErrInvalidCredentials
	}

	newHash := ""
	if in.NewPassword != "" {
		newHash, err = security.HashPassword(in.NewPassword)
		if err != nil {
			return err
		}
	}
	return s.volunteerRepo.UpdateProfile(ctx, volunteerID, in.Email, in.PhoneNumber, in.NationalID, newHash)
}

func (s *volunteerService) ListInterests(ctx context.Context, volunteerID int32) ([]int32, error) {
	return s.volunteerRepo.ListInterests(ctx, volunteerID)
}

func (s *volunteerService) SetInterests(ctx context.Context, volunteerID int32, categoryIDs []int32) error {
	return s.volunteerRepo.ReplaceInterests(ctx, volunteerID, categoryIDs)
}

func (s *volunteerService) ListFavorites(ctx context.Context, volunteerID int32) ([]int32, error) {
	return s.volunteerRepo.ListFavorites(ctx, volunteerID)
}

func (s *volunteerService) SetFavorites(ctx context.Context, volunteerID int32, orgIDs []int32) error {
	return s.volunteerRepo.ReplaceFavorites(ctx, volunteerID, orgIDs)
}

func (s *volunteerService) ListActivities(ctx context.Context, volunteerID int32) ([]domain.Activity, error) {
	return s.applicationRepo.ListActivities(ctx, volunteerID)
}
