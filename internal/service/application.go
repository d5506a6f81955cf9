package service

import (
	"context"
	"errors"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type applicationService struct {
	applicationRepo repository.ApplicationRepository
	recruitmentRepo repository.RecruitmentRepository
}

func NewApplicationService(applicationRepo repository.ApplicationRepository, recruitmentRepo repository.RecruitmentRepository) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		recruitmentRepo: recruitmentRepo,
	}
}

func (s *applicationService) Apply(ctx context.Context, recruitmentID, volunteerID int32) error {
	err := s.applicationRepo.Create(ctx, recruitmentID, volunteerID)
	if errors.Is(err, repository.ErrDuplicate) {
		return ErrAlreadyApplied
	}
	return err
}

// ListByRecruitment checks that the recruitment belongs to the caller
// before exposing its applicants.
func (s *applicationService) ListByRecruitment(ctx context.Context, recruitmentID, orgID int32) ([]domain.Applicant, error) {
	if _, err := s.recruitmentRepo.GetStaffDetail(ctx, recruitmentID, orgID); err != nil {
		return nil, err
	}
	return s.applicationRepo.ListByRecruitment(ctx, recruitmentID)
}

func (s *applicationService) ListByOrg(ctx context.Context, orgID int32, sortBy, sortOrder string) ([]domain.OrgApplication, error) {
	return s.applicationRepo.ListByOrg(ctx, orgID, sortBy, sortOrder)
}

func (s *applicationService) GetDetail(ctx context.Context, applicationID, orgID int32) (*domain.ApplicationDetail, error) {
	return s.applicationRepo.GetDetail(ctx, applicationID, orgID)
}

func (s *applicationService) UpdateStatus(ctx context.Context, applicationID, orgID int32, status string) error {
	st := domain.ApplicationStatus(status)
	if !st.Valid() {
		return invalid("status", "invalid application status")
	}
	return s.applicationRepo.UpdateStatus(ctx, applicationID, orgID, st)
}

func (s *applicationService) BatchApprove(ctx context.Context, orgID int32, ids []int32) (int64, error) {
	if len(ids) == 0 {
		return 0, invalid("application_ids", "no application ids given")
	}
	owned, err := s.applicationRepo.FilterOwnedIDs(ctx, orgID, ids)
	if err != nil {
		return 0, err
	}
	if len(owned) != len(ids) {
		return 0, ErrForbidden
	}
	return s.applicationRepo.ApprovePending(ctx, owned)
}
