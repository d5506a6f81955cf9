package postgres

import (
	"database/sql"
	"errors"

	"volunteerhub-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.VolunteerRepository
	repository.OrganizationRepository
	repository.PrefectureRepository
	repository.AdminUserRepository
	repository.SuperAdminRepository
	repository.CategoryRepository
	repository.RecruitmentRepository
	repository.ApplicationRepository
	repository.InquiryRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		VolunteerRepository:    NewVolunteerRepository(db),
		OrganizationRepository: NewOrganizationRepository(db),
		PrefectureRepository:   NewPrefectureRepository(db),
		AdminUserRepository:    NewAdminUserRepository(db),
		SuperAdminRepository:   NewSuperAdminRepository(db),
		CategoryRepository:     NewCategoryRepository(db),
		RecruitmentRepository:  NewRecruitmentRepository(db),
		ApplicationRepository:  NewApplicationRepository(db),
		InquiryRepository:      NewInquiryRepository(db),
	}
}

// isUniqueViolation reports whether err is a Postgres unique
// constraint violation (pgcode 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
