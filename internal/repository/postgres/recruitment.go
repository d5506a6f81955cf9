package postgres

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type recruitmentRepository struct {
	db *sql.DB
}

func NewRecruitmentRepository(db *sql.DB) repository.RecruitmentRepository {
	return &recruitmentRepository{db: db}
}

func (r *recruitmentRepository) Create(ctx context.Context, rec *domain.Recruitment, categoryIDs []int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO recruitments (organization_id, title, description, start_date, end_date, contact_phone_number, contact_email, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING recruitment_id`
	err = tx.QueryRowContext(ctx, query, rec.OrganizationID, rec.Title, rec.Description,
		rec.StartDate, rec.EndDate, rec.ContactPhone, rec.ContactEmail, rec.Status).Scan(&rec.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}

	if err := insertCategoryLinks(ctx, tx, rec.ID, categoryIDs); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *recruitmentRepository) Update(ctx context.Context, rec *domain.Recruitment, categoryIDs []int32, orgID int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `UPDATE recruitments
	          SET title = $1, description = $2, start_date = $3, end_date = $4,
	              contact_phone_number = $5, contact_email = $6, status = $7
	          WHERE recruitment_id = $8 AND organization_id = $9`
	res, err := tx.ExecContext(ctx, query, rec.Title, rec.Description, rec.StartDate, rec.EndDate,
		rec.ContactPhone, rec.ContactEmail, rec.Status, rec.ID, orgID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotOwned
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM recruitment_category_map WHERE recruitment_id = $1`, rec.ID); err != nil {
		return err
	}
	if err := insertCategoryLinks(ctx, tx, rec.ID, categoryIDs); err != nil {
		return err
	}
	return tx.Commit()
}

func insertCategoryLinks(ctx context.Context, tx *sql.Tx, recruitmentID int32, categoryIDs []int32) error {
	for _, cid := range categoryIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO recruitment_category_map (recruitment_id, category_id) VALUES ($1, $2)`,
			recruitmentID, cid)
		if err != nil {
			return err
		}
	}
	return nil
}

// categoryAgg concatenates the category names of one recruitment into
// a single display string.
const categoryAgg = `(SELECT COALESCE(string_agg(c.category_name, ', ' ORDER BY c.category_id), '')
	FROM recruitment_category_map m
	JOIN recruitment_categories c ON m.category_id = c.category_id
	WHERE m.recruitment_id = r.recruitment_id)`

// categoryFirst picks the lowest-id category name for views that show
// a single category.
const categoryFirst = `(SELECT COALESCE(MIN(c.category_name), '')
	FROM recruitment_category_map m
	JOIN recruitment_categories c ON m.category_id = c.category_id
	WHERE m.recruitment_id = r.recruitment_id
	  AND c.category_id = (SELECT MIN(m2.category_id) FROM recruitment_category_map m2 WHERE m2.recruitment_id = r.recruitment_id))`

func (r *recruitmentRepository) ListPublic(ctx context.Context, orgID, prefectureID int32, category string) ([]domain.PublicRecruitment, error) {
	query := `SELECT r.recruitment_id, r.title, r.description, o.name, ` + categoryAgg + `
	          FROM recruitments r
	          JOIN organizations o ON r.organization_id = o.organization_id
	          WHERE r.status = 'Open' AND o.is_active = TRUE`
	args := []any{}
	if orgID != 0 {
		args = append(args, orgID)
		query += ` AND r.organization_id = $1`
	} else if prefectureID != 0 {
		args = append(args, prefectureID)
		query += ` AND o.prefecture_id = $1`
	}
	// "all" is the front-end's unfiltered choice, not a category name.
	if category != "" && category != "all" {
		args = append(args, category)
		query += ` AND EXISTS (SELECT 1 FROM recruitment_category_map m
		            JOIN recruitment_categories c ON m.category_id = c.category_id
		            WHERE m.recruitment_id = r.recruitment_id AND c.category_name = $` + strconv.Itoa(len(args)) + `)`
	}
	query += ` ORDER BY r.start_date DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PublicRecruitment
	for rows.Next() {
		var p domain.PublicRecruitment
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.OrganizationName, &p.Category); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *recruitmentRepository) GetPublicDetail(ctx context.Context, id int32) (*domain.PublicRecruitmentDetail, error) {
	d := &domain.PublicRecruitmentDetail{}
	var start, end time.Time
	query := `SELECT r.recruitment_id, r.title, r.description, r.start_date, r.end_date,
	                 COALESCE(r.contact_phone_number, ''), COALESCE(r.contact_email, ''), ` + categoryFirst + `
	          FROM recruitments r
	          WHERE r.recruitment_id = $1 AND r.status = 'Open'`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&d.ID, &d.Title, &d.Description, &start, &end, &d.ContactPhone, &d.ContactEmail, &d.Category)
	if err != nil {
		return nil, err
	}
	d.StartDate = start.Format("2006-01-02")
	d.EndDate = end.Format("2006-01-02")
	return d, nil
}

func (r *recruitmentRepository) ListByOrg(ctx context.Context, orgID int32) ([]domain.StaffRecruitmentSummary, error) {
	query := `SELECT r.recruitment_id, r.title, r.start_date, r.end_date, r.status,
	                 (SELECT COUNT(*) FROM applications a WHERE a.recruitment_id = r.recruitment_id)
	          FROM recruitments r
	          WHERE r.organization_id = $1
	          ORDER BY r.end_date DESC`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.StaffRecruitmentSummary
	for rows.Next() {
		var s domain.StaffRecruitmentSummary
		var start, end time.Time
		var status domain.RecruitmentStatus
		if err := rows.Scan(&s.ID, &s.Title, &start, &end, &status, &s.AppliedCount); err != nil {
			return nil, err
		}
		s.Date = start.Format("2006-01-02")
		s.Deadline = end.Format("2006-01-02")
		s.Status = status.PublicStatus()
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *recruitmentRepository) GetStaffDetail(ctx context.Context, id, orgID int32) (*domain.StaffRecruitmentDetail, error) {
	d := &domain.StaffRecruitmentDetail{}
	var start, end time.Time
	var status domain.RecruitmentStatus
	query := `SELECT r.recruitment_id, r.title, r.description, r.start_date, r.end_date,
	                 COALESCE(r.contact_phone_number, ''), COALESCE(r.contact_email, ''), r.status,
	                 (SELECT COUNT(*) FROM applications a WHERE a.recruitment_id = r.recruitment_id)
	          FROM recruitments r
	          WHERE r.recruitment_id = $1 AND r.organization_id = $2`
	err := r.db.QueryRowContext(ctx, query, id, orgID).
		Scan(&d.ID, &d.Title, &d.Description, &start, &end, &d.PhoneNumber, &d.Email, &status, &d.AppliedCount)
	if err != nil {
		return nil, err
	}
	d.ActivityDate = start.Format("2006-01-02")
	d.Deadline = end.Format("2006-01-02")
	d.Status = status.PublicStatus()

	rows, err := r.db.QueryContext(ctx,
		`SELECT category_id FROM recruitment_category_map WHERE recruitment_id = $1 ORDER BY category_id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	d.Categories = []int32{}
	for rows.Next() {
		var cid int32
		if err := rows.Scan(&cid); err != nil {
			return nil, err
		}
		d.Categories = append(d.Categories, cid)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Attributes the edit form renders but the schema does not carry.
	d.TimeFrame = ""
	d.RequiredCount = 1
	d.Location = "未指定"
	d.RequiredSkills = "特になし"
	return d, nil
}

func (r *recruitmentRepository) GetNotificationInfo(ctx context.Context, id int32) (string, string, int32, error) {
	var title, orgName string
	var orgID int32
	query := `SELECT r.title, o.name, o.organization_id
	          FROM recruitments r
	          JOIN organizations o ON r.organization_id = o.organization_id
	          WHERE r.recruitment_id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&title, &orgName, &orgID)
	return title, orgName, orgID, err
}
