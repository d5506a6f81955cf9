package repository

import (
	"context"
	"errors"

	"volunteerhub-backend/internal/domain"
)

// ErrDuplicate is returned when an insert or update hits a unique
// constraint (pgcode 23505). Handlers map it to HTTP 409.
var ErrDuplicate = errors.New("duplicate record")

// ErrNotOwned is returned when a mutation's WHERE clause scoped by
// organization matched zero rows: the target either does not exist or
// belongs to another tenant. The two cases are deliberately
// indistinguishable.
var ErrNotOwned = errors.New("record not found or not owned by organization")

type VolunteerRepository interface {
	Create(ctx context.Context, v *domain.Volunteer) error
	GetByID(ctx context.Context, id int32) (*domain.Volunteer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Volunteer, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	ListByOrg(ctx context.Context, orgID int32) ([]domain.Volunteer, error)
	GetScoped(ctx context.Context, id, orgID int32) (*domain.Volunteer, error)
	UpdateScoped(ctx context.Context, v *domain.Volunteer, orgID int32) error
	UpdateProfile(ctx context.Context, id int32, email, phone, nationalID, passwordHash string) error
	Delete(ctx context.Context, id int32) error

	ListInterests(ctx context.Context, volunteerID int32) ([]int32, error)
	ReplaceInterests(ctx context.Context, volunteerID int32, categoryIDs []int32) error
	ListFavorites(ctx context.Context, volunteerID int32) ([]int32, error)
	ReplaceFavorites(ctx context.Context, volunteerID int32, orgIDs []int32) error

	// ListInterestedContacts returns distinct volunteers whose declared
	// interests intersect the given category set.
	ListInterestedContacts(ctx context.Context, categoryIDs []int32) ([]domain.VolunteerContact, error)
}

type OrganizationRepository interface {
	Create(ctx context.Context, o *domain.Organization) error
	GetName(ctx context.Context, id int32) (string, error)
	ListActive(ctx context.Context) ([]domain.Organization, error)
	ListByPrefecture(ctx context.Context, prefectureID int32) ([]domain.Organization, error)
	Deactivate(ctx context.Context, id int32) error
	ListRegions(ctx context.Context, prefectureFilter string) ([]domain.RegisteredRegion, error)
}

type PrefectureRepository interface {
	Create(ctx context.Context, p *domain.Prefecture) error
	List(ctx context.Context) ([]domain.Prefecture, error)
	GetByName(ctx context.Context, name string) (*domain.Prefecture, error)
}

type AdminUserRepository interface {
	Create(ctx context.Context, a *domain.AdminUser) error
	GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	Update(ctx context.Context, username string, orgID int32, role domain.AdminRole, passwordHash string) error
	Delete(ctx context.Context, username string) error
	List(ctx context.Context) ([]domain.AdminUser, error)
	ListByOrg(ctx context.Context, orgID int32) ([]domain.AdminUser, error)
	GetOrgAdminAddress(ctx context.Context, orgID int32) (string, error)
}

type SuperAdminRepository interface {
	Create(ctx context.Context, s *domain.SuperAdmin) error
	GetByUsername(ctx context.Context, username string) (*domain.SuperAdmin, error)
	List(ctx context.Context) ([]domain.SuperAdmin, error)
	Delete(ctx context.Context, username string) error
}

type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int32) (*domain.Category, error)
	Update(ctx context.Context, id int32, name string) error
	Delete(ctx context.Context, id int32) error
	// NameMap returns trimmed category name -> id for the bulk importer.
	NameMap(ctx context.Context) (map[string]int32, error)
}

type RecruitmentRepository interface {
	// Create inserts the recruitment and its category associations in
	// one transaction; a failure rolls the whole row back.
	Create(ctx context.Context, r *domain.Recruitment, categoryIDs []int32) error
	// Update mutates only when the recruitment belongs to orgID and
	// replaces the category set; returns ErrNotOwned on zero rows.
	Update(ctx context.Context, r *domain.Recruitment, categoryIDs []int32, orgID int32) error
	ListPublic(ctx context.Context, orgID, prefectureID int32, category string) ([]domain.PublicRecruitment, error)
	GetPublicDetail(ctx context.Context, id int32) (*domain.PublicRecruitmentDetail, error)
	ListByOrg(ctx context.Context, orgID int32) ([]domain.StaffRecruitmentSummary, error)
	GetStaffDetail(ctx context.Context, id, orgID int32) (*domain.StaffRecruitmentDetail, error)
	GetNotificationInfo(ctx context.Context, id int32) (title, orgName string, orgID int32, err error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, recruitmentID, volunteerID int32) error
	ListByRecruitment(ctx context.Context, recruitmentID int32) ([]domain.Applicant, error)
	ListByOrg(ctx context.Context, orgID int32, sortBy, sortOrder string) ([]domain.OrgApplication, error)
	GetDetail(ctx context.Context, applicationID, orgID int32) (*domain.ApplicationDetail, error)
	// UpdateStatus is ownership-scoped through an EXISTS clause and
	// returns ErrNotOwned when no row changed.
	UpdateStatus(ctx context.Context, applicationID, orgID int32, status domain.ApplicationStatus) error
	// FilterOwnedIDs narrows the candidate ids to those whose
	// recruitment belongs to orgID.
	FilterOwnedIDs(ctx context.Context, orgID int32, ids []int32) ([]int32, error)
	// ApprovePending flips the given applications to Approved, touching
	// only rows still Pending, and reports how many actually changed.
	ApprovePending(ctx context.Context, ids []int32) (int64, error)
	ListActivities(ctx context.Context, volunteerID int32) ([]domain.Activity, error)
	GetCertificateData(ctx context.Context, applicationID, recruitmentID, volunteerID int32) (*domain.CertificateData, error)
}

type InquiryRepository interface {
	Create(ctx context.Context, q *domain.Inquiry) error
}
