package service_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"volunteerhub-backend/internal/domain"
)

type MockVolunteerRepo struct {
	mock.Mock
}

func (m *MockVolunteerRepo) Create(ctx context.Context, v *domain.Volunteer) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVolunteerRepo) GetByID(ctx context.Context, id int32) (*domain.Volunteer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepo) GetByEmail(ctx context.Context, email string) (*domain.Volunteer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockVolunteerRepo) ListByOrg(ctx context.Context, orgID int32) ([]domain.Volunteer, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepo) GetScoped(ctx context.Context, id, orgID int32) (*domain.Volunteer, error) {
	args := m.Called(ctx, id, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepo) UpdateScoped(ctx context.Context, v *domain.Volunteer, orgID int32) error {
	args := m.Called(ctx, v, orgID)
	return args.Error(0)
}

func (m *MockVolunteerRepo) UpdateProfile(ctx context.Context, id int32, email, phone, nationalID, passwordHash string) error {
	args := m.Called(ctx, id, email, phone, nationalID, passwordHash)
	return args.Error(0)
}

func (m *MockVolunteerRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVolunteerRepo) ListInterests(ctx context.Context, volunteerID int32) ([]int32, error) {
	args := m.Called(ctx, volunteerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int32), args.Error(1)
}

func (m *MockVolunteerRepo) ReplaceInterests(ctx context.Context, volunteerID int32, categoryIDs []int32) error {
	args := m.Called(ctx, volunteerID, categoryIDs)
	return args.Error(0)
}

func (m *MockVolunteerRepo) ListFavorites(ctx context.Context, volunteerID int32) ([]int32, error) {
	args := m.Called(ctx, volunteerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int32), args.Error(1)
}

func (m *MockVolunteerRepo) ReplaceFavorites(ctx context.Context, volunteerID int32, orgIDs []int32) error {
	args := m.Called(ctx, volunteerID, orgIDs)
	return args.Error(0)
}

func (m *MockVolunteerRepo) ListInterestedContacts(ctx context.Context, categoryIDs []int32) ([]domain.VolunteerContact, error) {
	args := m.Called(ctx, categoryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VolunteerContact), args.Error(1)
}

type MockRecruitmentRepo struct {
	mock.Mock
}

func (m *MockRecruitmentRepo) Create(ctx context.Context, r *domain.Recruitment, categoryIDs []int32) error {
	args := m.Called(ctx, r, categoryIDs)
	return args.Error(0)
}

func (m *MockRecruitmentRepo) Update(ctx context.Context, r *domain.Recruitment, categoryIDs []int32, orgID int32) error {
	args := m.Called(ctx, r, categoryIDs, orgID)
	return args.Error(0)
}

func (m *MockRecruitmentRepo) ListPublic(ctx context.Context, orgID, prefectureID int32, category string) ([]domain.PublicRecruitment, error) {
	args := m.Called(ctx, orgID, prefectureID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PublicRecruitment), args.Error(1)
}

func (m *MockRecruitmentRepo) GetPublicDetail(ctx context.Context, id int32) (*domain.PublicRecruitmentDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PublicRecruitmentDetail), args.Error(1)
}

func (m *MockRecruitmentRepo) ListByOrg(ctx context.Context, orgID int32) ([]domain.StaffRecruitmentSummary, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StaffRecruitmentSummary), args.Error(1)
}

func (m *MockRecruitmentRepo) GetStaffDetail(ctx context.Context, id, orgID int32) (*domain.StaffRecruitmentDetail, error) {
	args := m.Called(ctx, id, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffRecruitmentDetail), args.Error(1)
}

func (m *MockRecruitmentRepo) GetNotificationInfo(ctx context.Context, id int32) (string, string, int32, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.String(1), args.Get(2).(int32), args.Error(3)
}

type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepo) GetByID(ctx context.Context, id int32) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepo) Update(ctx context.Context, id int32, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockCategoryRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepo) NameMap(ctx context.Context) (map[string]int32, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int32), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, recruitmentID, volunteerID int32) error {
	args := m.Called(ctx, recruitmentID, volunteerID)
	return args.Error(0)
}

func (m *MockApplicationRepo) ListByRecruitment(ctx context.Context, recruitmentID int32) ([]domain.Applicant, error) {
	args := m.Called(ctx, recruitmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Applicant), args.Error(1)
}

func (m *MockApplicationRepo) ListByOrg(ctx context.Context, orgID int32, sortBy, sortOrder string) ([]domain.OrgApplication, error) {
	args := m.Called(ctx, orgID, sortBy, sortOrder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrgApplication), args.Error(1)
}

func (m *MockApplicationRepo) GetDetail(ctx context.Context, applicationID, orgID int32) (*domain.ApplicationDetail, error) {
	args := m.Called(ctx, applicationID, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationDetail), args.Error(1)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, applicationID, orgID int32, status domain.ApplicationStatus) error {
	args := m.Called(ctx, applicationID, orgID, status)
	return args.Error(0)
}

func (m *MockApplicationRepo) FilterOwnedIDs(ctx context.Context, orgID int32, ids []int32) ([]int32, error) {
	args := m.Called(ctx, orgID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int32), args.Error(1)
}

func (m *MockApplicationRepo) ApprovePending(ctx context.Context, ids []int32) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApplicationRepo) ListActivities(ctx context.Context, volunteerID int32) ([]domain.Activity, error) {
	args := m.Called(ctx, volunteerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Activity), args.Error(1)
}

func (m *MockApplicationRepo) GetCertificateData(ctx context.Context, applicationID, recruitmentID, volunteerID int32) (*domain.CertificateData, error) {
	args := m.Called(ctx, applicationID, recruitmentID, volunteerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CertificateData), args.Error(1)
}

type MockAdminUserRepo struct {
	mock.Mock
}

func (m *MockAdminUserRepo) Create(ctx context.Context, a *domain.AdminUser) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAdminUserRepo) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepo) Update(ctx context.Context, username string, orgID int32, role domain.AdminRole, passwordHash string) error {
	args := m.Called(ctx, username, orgID, role, passwordHash)
	return args.Error(0)
}

func (m *MockAdminUserRepo) Delete(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func (m *MockAdminUserRepo) List(ctx context.Context) ([]domain.AdminUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepo) ListByOrg(ctx context.Context, orgID int32) ([]domain.AdminUser, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepo) GetOrgAdminAddress(ctx context.Context, orgID int32) (string, error) {
	args := m.Called(ctx, orgID)
	return args.String(0), args.Error(1)
}

type MockSuperAdminRepo struct {
	mock.Mock
}

func (m *MockSuperAdminRepo) Create(ctx context.Context, s *domain.SuperAdmin) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSuperAdminRepo) GetByUsername(ctx context.Context, username string) (*domain.SuperAdmin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SuperAdmin), args.Error(1)
}

func (m *MockSuperAdminRepo) List(ctx context.Context) ([]domain.SuperAdmin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SuperAdmin), args.Error(1)
}

func (m *MockSuperAdminRepo) Delete(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

type MockOrganizationRepo struct {
	mock.Mock
}

func (m *MockOrganizationRepo) Create(ctx context.Context, o *domain.Organization) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrganizationRepo) GetName(ctx context.Context, id int32) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockOrganizationRepo) ListActive(ctx context.Context) ([]domain.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Organization), args.Error(1)
}

func (m *MockOrganizationRepo) ListByPrefecture(ctx context.Context, prefectureID int32) ([]domain.Organization, error) {
	args := m.Called(ctx, prefectureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Organization), args.Error(1)
}

func (m *MockOrganizationRepo) Deactivate(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrganizationRepo) ListRegions(ctx context.Context, prefectureFilter string) ([]domain.RegisteredRegion, error) {
	args := m.Called(ctx, prefectureFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RegisteredRegion), args.Error(1)
}

type MockPrefectureRepo struct {
	mock.Mock
}

func (m *MockPrefectureRepo) Create(ctx context.Context, p *domain.Prefecture) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPrefectureRepo) List(ctx context.Context) ([]domain.Prefecture, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prefecture), args.Error(1)
}

func (m *MockPrefectureRepo) GetByName(ctx context.Context, name string) (*domain.Prefecture, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prefecture), args.Error(1)
}

type MockInquiryRepo struct {
	mock.Mock
}

func (m *MockInquiryRepo) Create(ctx context.Context, q *domain.Inquiry) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

// capturedMail is one message recorded by the capturing sink.
type capturedMail struct {
	To      string
	ToName  string
	Subject string
	Body    string
	ReplyTo string
}

// captureSink records every send instead of delivering it. Safe for
// the notification goroutine.
type captureSink struct {
	mu   sync.Mutex
	sent []capturedMail
}

func (s *captureSink) Send(ctx context.Context, toEmail, toName, subject, body string) error {
	return s.SendWithReplyTo(ctx, toEmail, toName, subject, body, "")
}

func (s *captureSink) SendWithReplyTo(ctx context.Context, toEmail, toName, subject, body, replyTo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, capturedMail{To: toEmail, ToName: toName, Subject: subject, Body: body, ReplyTo: replyTo})
	return nil
}

func (s *captureSink) messages() []capturedMail {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]capturedMail, len(s.sent))
	copy(out, s.sent)
	return out
}
