package postgres

import (
	"context"
	"database/sql"
	"strings"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type categoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *domain.Category) error {
	query := `INSERT INTO recruitment_categories (category_name) VALUES ($1) RETURNING category_id`
	err := r.db.QueryRowContext(ctx, query, c.Name).Scan(&c.ID)
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	return err
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT category_id, category_name FROM recruitment_categories ORDER BY category_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *categoryRepository) GetByID(ctx context.Context, id int32) (*domain.Category, error) {
	c := &domain.Category{}
	err := r.db.QueryRowContext(ctx, `SELECT category_id, category_name FROM recruitment_categories WHERE category_id = $1`, id).
		Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *categoryRepository) Update(ctx context.Context, id int32, name string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE recruitment_categories SET category_name = $1 WHERE category_id = $2`, name, id)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
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

func (r *categoryRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recruitment_categories WHERE category_id = $1`, id)
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

// NameMap keys by the trimmed display name so CSV rows with stray
// whitespace still resolve.
func (r *categoryRepository) NameMap(ctx context.Context) (map[string]int32, error) {
	cats, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	m := make(map[string]int32, len(cats))
	for _, c := range cats {
		m[strings.TrimSpace(c.Name)] = c.ID
	}
	return m, nil
}
