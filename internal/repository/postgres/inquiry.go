package postgres

import (
	"context"
	"database/sql"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type inquiryRepository struct {
	db *sql.DB
}

func NewInquiryRepository(db *sql.DB) repository.InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Create(ctx context.Context, q *domain.Inquiry) error {
	query := `INSERT INTO inquiries (recruitment_id, volunteer_id, inquiry_text, inquiry_date)
	          VALUES ($1, $2, $3, NOW()) RETURNING inquiry_id`
	return r.db.QueryRowContext(ctx, query, q.RecruitmentID, q.VolunteerID, q.Text).Scan(&q.ID)
}
