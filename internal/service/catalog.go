package service

import (
	"context"
	"fmt"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/repository"
)

type catalogService struct {
	recruitmentRepo repository.RecruitmentRepository
	categoryRepo    repository.CategoryRepository
	volunteerRepo   repository.VolunteerRepository
	sink            NotificationSink
	baseURL         string
}

func NewCatalogService(recruitmentRepo repository.RecruitmentRepository, categoryRepo repository.CategoryRepository, volunteerRepo repository.VolunteerRepository, sink NotificationSink, baseURL string) CatalogService {
	return &catalogService{
		recruitmentRepo: recruitmentRepo,
		categoryRepo:    categoryRepo,
		volunteerRepo:   volunteerRepo,
		sink:            sink,
		baseURL:         baseURL,
	}
}

func (s *catalogService) ListPublic(ctx context.Context, orgID, prefectureID int32, category string) ([]domain.PublicRecruitment, error) {
	return s.recruitmentRepo.ListPublic(ctx, orgID, prefectureID, category)
}

func (s *catalogService) GetPublicDetail(ctx context.Context, id int32) (*domain.PublicRecruitmentDetail, error) {
	return s.recruitmentRepo.GetPublicDetail(ctx, id)
}

func (s *catalogService) ListByOrg(ctx context.Context, orgID int32) ([]domain.StaffRecruitmentSummary, error) {
	return s.recruitmentRepo.ListByOrg(ctx, orgID)
}

func (s *catalogService) GetStaffDetail(ctx context.Context, id, orgID int32) (*domain.StaffRecruitmentDetail, error) {
	return s.recruitmentRepo.GetStaffDetail(ctx, id, orgID)
}

func (s *catalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.List(ctx)
}

func validateRecruitmentInput(in RecruitmentInput) error {
	if in.Title == "" {
		return invalid("title", "title is required")
	}
	if in.Description == "" {
		return invalid("description", "description is required")
	}
	if in.ActivityDate == "" {
		return invalid("activity_date", "activity date is required")
	}
	if in.Deadline == "" {
		return invalid("deadline", "deadline is required")
	}
	if in.Email == "" {
		return invalid("email", "contact email is required")
	}
	if in.Status == "" {
		return invalid("status", "status is required")
	}
	if _, err := time.Parse("2006-01-02", in.ActivityDate); err != nil {
		return invalid("activity_date", "activity date must be YYYY-MM-DD")
	}
	if _, err := time.Parse("2006-01-02", in.Deadline); err != nil {
		return invalid("deadline", "deadline must be YYYY-MM-DD")
	}
	return nil
}

func (s *catalogService) Create(ctx context.Context, orgID int32, in RecruitmentInput) (int32, error) {
	if err := validateRecruitmentInput(in); err != nil {
		return 0, err
	}
	rec := &domain.Recruitment{
		OrganizationID: orgID,
		Title:          in.Title,
		Description:    in.Description,
		StartDate:      in.ActivityDate,
		EndDate:        in.Deadline,
		ContactPhone:   in.PhoneNumber,
		ContactEmail:   in.Email,
		Status:         domain.ParsePublicStatus(in.Status),
	}
	if err := s.recruitmentRepo.Create(ctx, rec, in.Categories); err != nil {
		return 0, err
	}

	// Interested volunteers hear about new openings right away; the
	// request does not wait for the fan-out.
	if rec.Status == domain.RecruitmentStatusOpen && len(in.Categories) > 0 {
		go s.notifyInterested(rec.ID, rec.Title, in.Categories)
	}
	return rec.ID, nil
}

func (s *catalogService) Update(ctx context.Context, id, orgID int32, in RecruitmentInput) error {
	if err := validateRecruitmentInput(in); err != nil {
		return err
	}
	rec := &domain.Recruitment{
		ID:           id,
		Title:        in.Title,
		Description:  in.Description,
		StartDate:    in.ActivityDate,
		EndDate:      in.Deadline,
		ContactPhone: in.PhoneNumber,
		ContactEmail: in.Email,
		Status:       domain.ParsePublicStatus(in.Status),
	}
	return s.recruitmentRepo.Update(ctx, rec, in.Categories, orgID)
}

func (s *catalogService) notifyInterested(recruitmentID int32, title string, categoryIDs []int32) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	_, orgName, _, err := s.recruitmentRepo.GetNotificationInfo(ctx, recruitmentID)
	if err != nil {
		logger.Error("notification lookup failed", "recruitment_id", recruitmentID, "error", err)
		return
	}
	contacts, err := s.volunteerRepo.ListInterestedContacts(ctx, categoryIDs)
	if err != nil {
		logger.Error("interested volunteer lookup failed", "recruitment_id", recruitmentID, "error", err)
		return
	}

	// The login link carries the detail page as next so the volunteer
	// lands there after authenticating.
	link := fmt.Sprintf("%s/volunteer/login?next=/opportunity/%d", s.baseURL, recruitmentID)
	subject := fmt.Sprintf("【地域支援Hub】新しい募集のお知らせ: %s", title)
	for _, c := range contacts {
		body := fmt.Sprintf("%s 様\n\nご関心のある分野で新しい募集が公開されました。\n\n募集: %s\n主催: %s\n\n詳細はこちらからログインしてご確認ください:\n%s\n\n地域支援Hub",
			c.FullName, title, orgName, link)
		if err := s.sink.Send(ctx, c.Email, c.FullName, subject, body); err != nil {
			logger.Error("notification send failed", "recruitment_id", recruitmentID, "to", c.Email, "error", err)
		}
	}
	logger.Info("notification fan-out finished", "recruitment_id", recruitmentID, "recipients", len(contacts))
}
