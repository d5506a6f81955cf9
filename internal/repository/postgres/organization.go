package postgres

import (
	"context"
	"database/sql"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type organizationRepository struct {
	db *sql.DB
}

func NewOrganizationRepository(db *sql.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) Create(ctx context.Context, o *domain.Organization) error {
	query := `INSERT INTO organizations (prefecture_id, name, application_date, is_active)
	          VALUES ($1, $2, $3, TRUE) RETURNING organization_id`
	err := r.db.QueryRowContext(ctx, query, o.PrefectureID, o.Name, o.ApplicationDate).Scan(&o.ID)
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	if err != nil {
		return err
	}
	o.IsActive = true
	return nil
}

func (r *organizationRepository) GetName(ctx context.Context, id int32) (string, error) {
	var name string
	err := r.db.QueryRowContext(ctx, `SELECT name FROM organizations WHERE organization_id = $1`, id).Scan(&name)
	return name, err
}

func (r *organizationRepository) ListActive(ctx context.Context) ([]domain.Organization, error) {
	query := `SELECT organization_id, prefecture_id, name, is_active, application_date FROM organizations
	          WHERE is_active = TRUE ORDER BY name`
	return r.list(ctx, query)
}

func (r *organizationRepository) ListByPrefecture(ctx context.Context, prefectureID int32) ([]domain.Organization, error) {
	query := `SELECT organization_id, prefecture_id, name, is_active, application_date FROM organizations
	          WHERE prefecture_id = $1 ORDER BY name`
	return r.list(ctx, query, prefectureID)
}

func (r *organizationRepository) Deactivate(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `UPDATE organizations SET is_active = FALSE WHERE organization_id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *organizationRepository) ListRegions(ctx context.Context, prefectureFilter string) ([]domain.RegisteredRegion, error) {
	query := `SELECT p.name, o.name, o.organization_id
	          FROM prefectures p
	          JOIN organizations o ON p.prefecture_id = o.prefecture_id
	          WHERE o.is_active = TRUE`
	args := []any{}
	if prefectureFilter != "" {
		query += ` AND p.name ILIKE $1`
		args = append(args, "%"+prefectureFilter+"%")
	}
	query += ` ORDER BY p.name, o.name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RegisteredRegion
	for rows.Next() {
		var reg domain.RegisteredRegion
		if err := rows.Scan(&reg.PrefectureName, &reg.OrganizationName, &reg.OrganizationID); err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	return out, rows.Err()
}

func (r *organizationRepository) list(ctx context.Context, query string, args ...any) ([]domain.Organization, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Organization
	for rows.Next() {
		var o domain.Organization
		var appDate time.Time
		if err := rows.Scan(&o.ID, &o.PrefectureID, &o.Name, &o.IsActive, &appDate); err != nil {
			return nil, err
		}
		o.ApplicationDate = appDate.Format("2006-01-02")
		out = append(out, o)
	}
	return out, rows.Err()
}

type prefectureRepository struct {
	db *sql.DB
}

func NewPrefectureRepository(db *sql.DB) repository.PrefectureRepository {
	return &prefectureRepository{db: db}
}

func (r *prefectureRepository) Create(ctx context.Context, p *domain.Prefecture) error {
	query := `INSERT INTO prefectures (name) VALUES ($1) RETURNING prefecture_id`
	err := r.db.QueryRowContext(ctx, query, p.Name).Scan(&p.ID)
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	return err
}

func (r *prefectureRepository) List(ctx context.Context) ([]domain.Prefecture, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT prefecture_id, name FROM prefectures ORDER BY prefecture_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Prefecture
	for rows.Next() {
		var p domain.Prefecture
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *prefectureRepository) GetByName(ctx context.Context, name string) (*domain.Prefecture, error) {
	p := &domain.Prefecture{}
	err := r.db.QueryRowContext(ctx, `SELECT prefecture_id, name FROM prefectures WHERE name = $1`, name).Scan(&p.ID, &p.Name)
	if err != nil {
		return nil, err
	}
	return p, nil
}
