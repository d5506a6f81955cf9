package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"

	"github.com/lib/pq"
)

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, recruitmentID, volunteerID int32) error {
	query := `INSERT INTO applications (recruitment_id, volunteer_id, application_date, status)
	          VALUES ($1, $2, NOW(), 'Pending')`
	_, err := r.db.ExecContext(ctx, query, recruitmentID, volunteerID)
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	return err
}

func (r *applicationRepository) ListByRecruitment(ctx context.Context, recruitmentID int32) ([]domain.Applicant, error) {
	query := `SELECT a.application_id, v.full_name, v.email, a.status
	          FROM applications a
	          JOIN volunteers v ON a.volunteer_id = v.volunteer_id
	          WHERE a.recruitment_id = $1
	          ORDER BY a.application_date DESC`
	rows, err := r.db.QueryContext(ctx, query, recruitmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Applicant
	for rows.Next() {
		var a domain.Applicant
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Status); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// applicationSortColumns whitelists the sortable columns of the
// org-wide listing. Anything else falls back to application_date.
var applicationSortColumns = map[string]string{
	"application_date":  "a.application_date",
	"applicant_name":    "v.full_name",
	"opportunity_title": "r.title",
	"status":            "a.status",
}

func (r *applicationRepository) ListByOrg(ctx context.Context, orgID int32, sortBy, sortOrder string) ([]domain.OrgApplication, error) {
	column, ok := applicationSortColumns[sortBy]
	if !ok {
		column = "a.application_date"
	}
	direction := "DESC"
	if sortOrder == "asc" {
		direction = "ASC"
	}

	query := fmt.Sprintf(`SELECT a.application_id, a.application_date, a.status, v.full_name, v.username, r.title
	          FROM applications a
	          JOIN volunteers v ON a.volunteer_id = v.volunteer_id
	          JOIN recruitments r ON a.recruitment_id = r.recruitment_id
	          WHERE r.organization_id = $1
	          ORDER BY %s %s`, column, direction)
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.OrgApplication
	for rows.Next() {
		var a domain.OrgApplication
		var appliedAt time.Time
		if err := rows.Scan(&a.ApplicationID, &appliedAt, &a.Status, &a.ApplicantName, &a.ApplicantUsername, &a.OpportunityTitle); err != nil {
			return nil, err
		}
		a.ApplicationDate = appliedAt.Format("2006-01-02")
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *applicationRepository) GetDetail(ctx context.Context, applicationID, orgID int32) (*domain.ApplicationDetail, error) {
	d := &domain.ApplicationDetail{}
	var appliedAt, start, end time.Time
	query := `SELECT a.application_id, a.application_date, a.status,
	                 v.volunteer_id, v.full_name, v.email, COALESCE(v.phone_number, ''),
	                 r.recruitment_id, r.title, r.description, r.start_date, r.end_date,
	                 o.name, COALESCE((SELECT u.username FROM admin_users u
	                                   WHERE u.organization_id = o.organization_id AND u.role = 'OrgAdmin'
	                                   LIMIT 1), '')
	          FROM applications a
	          JOIN volunteers v ON a.volunteer_id = v.volunteer_id
	          JOIN recruitments r ON a.recruitment_id = r.recruitment_id
	          JOIN organizations o ON r.organization_id = o.organization_id
	          WHERE a.application_id = $1 AND r.organization_id = $2`
	err := r.db.QueryRowContext(ctx, query, applicationID, orgID).Scan(
		&d.ApplicationID, &appliedAt, &d.Status,
		&d.VolunteerID, &d.ApplicantName, &d.ApplicantEmail, &d.ApplicantPhone,
		&d.RecruitmentID, &d.RecruitmentTitle, &d.Description, &start, &end,
		&d.OrganizationName, &d.ManagerName)
	if err != nil {
		return nil, err
	}
	d.ApplicationDate = appliedAt.Format("2006-01-02")
	d.StartDate = start.Format("2006-01-02")
	d.EndDate = end.Format("2006-01-02")
	return d, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, applicationID, orgID int32, status domain.ApplicationStatus) error {
	query := `UPDATE applications a SET status = $1
	          WHERE a.application_id = $2
	            AND EXISTS (SELECT 1 FROM recruitments r
	                        WHERE r.recruitment_id = a.recruitment_id AND r.organization_id = $3)`
	res, err := r.db.ExecContext(ctx, query, status, applicationID, orgID)
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
	return nil
}

func (r *applicationRepository) FilterOwnedIDs(ctx context.Context, orgID int32, ids []int32) ([]int32, error) {
	query := `SELECT a.application_id
	          FROM applications a
	          JOIN recruitments r ON a.recruitment_id = r.recruitment_id
	          WHERE r.organization_id = $1 AND a.application_id = ANY($2)`
	rows, err := r.db.QueryContext(ctx, query, orgID, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *applicationRepository) ApprovePending(ctx context.Context, ids []int32) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE applications SET status = 'Approved' WHERE application_id = ANY($1) AND status = 'Pending'`,
		pq.Array(ids))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *applicationRepository) ListActivities(ctx context.Context, volunteerID int32) ([]domain.Activity, error) {
	query := `SELECT a.application_id, r.recruitment_id, r.title, r.description,
	                 r.start_date, r.end_date, a.application_date, a.status
	          FROM applications a
	          JOIN recruitments r ON a.recruitment_id = r.recruitment_id
	          WHERE a.volunteer_id = $1
	          ORDER BY a.application_date DESC`
	rows, err := r.db.QueryContext(ctx, query, volunteerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Activity
	for rows.Next() {
		var a domain.Activity
		var start, end, appliedAt time.Time
		if err := rows.Scan(&a.ApplicationID, &a.RecruitmentID, &a.Title, &a.Description, &start, &end, &appliedAt, &a.Status); err != nil {
			return nil, err
		}
		a.StartDate = start.Format("2006-01-02")
		a.EndDate = end.Format("2006-01-02")
		a.ApplicationDate = appliedAt.Format("2006-01-02")
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetCertificateData requires all three ids to agree so a volunteer
// cannot print a certificate for someone else's application.
func (r *applicationRepository) GetCertificateData(ctx context.Context, applicationID, recruitmentID, volunteerID int32) (*domain.CertificateData, error) {
	d := &domain.CertificateData{}
	var start, end time.Time
	query := `SELECT v.full_name, r.title, r.description, r.start_date, r.end_date
	          FROM applications a
	          JOIN volunteers v ON a.volunteer_id = v.volunteer_id
	          JOIN recruitments r ON a.recruitment_id = r.recruitment_id
	          WHERE a.application_id = $1 AND a.recruitment_id = $2 AND a.volunteer_id = $3
	            AND a.status = 'Approved'`
	err := r.db.QueryRowContext(ctx, query, applicationID, recruitmentID, volunteerID).
		Scan(&d.VolunteerName, &d.Title, &d.Description, &start, &end)
	if err != nil {
		return nil, err
	}
	d.StartDate = start.Format("2006-01-02")
	d.EndDate = end.Format("2006-01-02")
	return d, nil
}
