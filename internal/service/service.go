package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"volunteerhub-backend/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyApplied     = errors.New("already applied to this opportunity")
	ErrForbidden          = errors.New("operation not allowed")
	ErrSelfDelete         = errors.New("cannot delete own account")
)

// ValidationError reports a field-level input problem; handlers map it
// to HTTP 400 with the message as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

type AuthService interface {
	VolunteerLogin(ctx context.Context, email, password string) (*domain.Volunteer, error)
	StaffLogin(ctx context.Context, username, password string) (*domain.AdminUser, error)
	SuperAdminLogin(ctx context.Context, username, password string) (*domain.SuperAdmin, error)
}

// VolunteerInput carries the fields of a volunteer registration or a
// staff-side edit.
type VolunteerInput struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	NationalID  string `json:"mynumber"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	BirthYear   *int32 `json:"birth_year"`
	Gender      string `json:"gender"`
	PostalCode  string `json:"postal_code"`
	Address     string `json:"address"`
}

// ProfileUpdateInput carries a volunteer's own profile edit. The
// current password is always required.
type ProfileUpdateInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number"`
	NationalID      string `json:"mynumber"`
}

type VolunteerService interface {
	Register(ctx context.Context, in VolunteerInput, orgID int32) (*domain.Volunteer, error)
	Get(ctx context.Context, volunteerID int32) (*domain.Volunteer, error)
	UpdateProfile(ctx context.Context, volunteerID int32, in ProfileUpdateInput) error
	ListInterests(ctx context.Context, volunteerID int32) ([]int32, error)
	SetInterests(ctx context.Context, volunteerID int32, categoryIDs []int32) error
	ListFavorites(ctx context.Context, volunteerID int32) ([]int32, error)
	SetFavorites(ctx context.Context, volunteerID int32, orgIDs []int32) error
	ListActivities(ctx context.Context, volunteerID int32) ([]domain.Activity, error)
}

// RecruitmentInput carries the staff create/update form. Status uses
// the public vocabulary (published/draft/closed).
type RecruitmentInput struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	ActivityDate string  `json:"activity_date"`
	Deadline     string  `json:"deadline"`
	PhoneNumber  string  `json:"phone_number"`
	Email        string  `json:"email"`
	Status       string  `json:"status"`
	Categories   []int32 `json:"categories"`
}

type CatalogService interface {
	ListPublic(ctx context.Context, orgID, prefectureID int32, category string) ([]domain.PublicRecruitment, error)
	GetPublicDetail(ctx context.Context, id int32) (*domain.PublicRecruitmentDetail, error)
	ListByOrg(ctx context.Context, orgID int32) ([]domain.StaffRecruitmentSummary, error)
	GetStaffDetail(ctx context.Context, id, orgID int32) (*domain.StaffRecruitmentDetail, error)
	Create(ctx context.Context, orgID int32, in RecruitmentInput) (int32, error)
	Update(ctx context.Context, id, orgID int32, in RecruitmentInput) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type ApplicationService interface {
	Apply(ctx context.Context, recruitmentID, volunteerID int32) error
	ListByRecruitment(ctx context.Context, recruitmentID, orgID int32) ([]domain.Applicant, error)
	ListByOrg(ctx context.Context, orgID int32, sortBy, sortOrder string) ([]domain.OrgApplication, error)
	GetDetail(ctx context.Context, applicationID, orgID int32) (*domain.ApplicationDetail, error)
	UpdateStatus(ctx context.Context, applicationID, orgID int32, status string) error
	// BatchApprove refuses the whole batch when any id falls outside
	// the caller's org; otherwise only Pending rows flip to Approved.
	BatchApprove(ctx context.Context, orgID int32, ids []int32) (int64, error)
}

type BulkImportService interface {
	Import(ctx context.Context, orgID int32, file multipart.File, publish bool) (*domain.ImportReport, error)
}

type CertificateService interface {
	// Generate renders the participation certificate PDF, verifying
	// that the application, recruitment and volunteer agree.
	Generate(ctx context.Context, applicationID, recruitmentID, volunteerID int32) ([]byte, string, error)
}

type StaffService interface {
	OrgName(ctx context.Context, orgID int32) (string, error)
	ListVolunteers(ctx context.Context, orgID int32) ([]domain.Volunteer, error)
	GetVolunteer(ctx context.Context, volunteerID, orgID int32) (*domain.Volunteer, error)
	CreateVolunteer(ctx context.Context, orgID int32, in VolunteerInput) (*domain.Volunteer, error)
	UpdateVolunteer(ctx context.Context, volunteerID, orgID int32, in VolunteerInput) error
	DeleteVolunteer(ctx context.Context, volunteerID, orgID int32) error
	// InviteVolunteer creates the account with a generated temporary
	// password and emails the credentials.
	InviteVolunteer(ctx context.Context, orgID int32, in VolunteerInput) (*domain.Volunteer, error)
	ListStaffAccounts(ctx context.Context, orgID int32) ([]domain.AdminUser, error)
	CreateStaffAccount(ctx context.Context, orgID int32, username, password string) error
}

type AdminService interface {
	RegisterOrganization(ctx context.Context, prefectureName, orgName, applicationDate string) (*domain.Organization, error)
	DeactivateOrganization(ctx context.Context, orgID int32) error
	ListRegions(ctx context.Context, prefectureFilter string) ([]domain.RegisteredRegion, error)
	AddPrefecture(ctx context.Context, name string) (*domain.Prefecture, error)
	ListPrefectures(ctx context.Context) ([]domain.Prefecture, error)
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
	ListOrganizationsByPrefecture(ctx context.Context, prefectureID int32) ([]domain.Organization, error)

	CreateAdminUser(ctx context.Context, orgID int32, username, password string, role domain.AdminRole) error
	UpdateAdminUser(ctx context.Context, username string, orgID int32, role domain.AdminRole, newPassword string) error
	DeleteAdminUser(ctx context.Context, username string) error
	ListAdminUsers(ctx context.Context) ([]domain.AdminUser, error)

	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int32, name string) error
	DeleteCategory(ctx context.Context, id int32) error

	CreateSuperAdmin(ctx context.Context, username, password string) error
	ListSuperAdmins(ctx context.Context) ([]domain.SuperAdmin, error)
	DeleteSuperAdmin(ctx context.Context, caller, username string) error
}

type InquiryService interface {
	// SubmitRecruitmentInquiry stores the inquiry and relays it to the
	// owning organization's admin address.
	SubmitRecruitmentInquiry(ctx context.Context, recruitmentID int32, volunteerID *int32, text string) error
	// SubmitContactInquiry relays a public contact-form message to the
	// platform operator.
	SubmitContactInquiry(ctx context.Context, in domain.ContactInquiry) error
}

// NotificationSink delivers one email. The production implementation
// talks to SendGrid; tests substitute a capturing sink.
type NotificationSink interface {
	Send(ctx context.Context, toEmail, toName, subject, body string) error
	// SendWithReplyTo is used for relayed inquiries so the recipient
	// can answer the original sender directly.
	SendWithReplyTo(ctx context.Context, toEmail, toName, subject, body, replyTo string) error
}
