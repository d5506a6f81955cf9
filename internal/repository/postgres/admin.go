package postgres

import (
	"context"
	"database/sql"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type adminUserRepository struct {
	db *sql.DB
}

func NewAdminUserRepository(db *sql.DB) repository.AdminUserRepository {
	return &adminUserRepository{db: db}
}

func (r *adminUserRepository) Create(ctx context.Context, a *domain.AdminUser) error {
	query := `INSERT INTO admin_users (organization_id, username, password_hash, role)
	          VALUES ($1, $2, $3, $4) RETURNING admin_id`
	err := r.db.QueryRowContext(ctx, query, a.OrganizationID, a.Username, a.PasswordHash, a.Role).Scan(&a.ID)
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	return err
}

func (r *adminUserRepository) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	a := &domain.AdminUser{}
	query := `SELECT admin_id, organization_id, username, password_hash, role FROM admin_users WHERE username = $1`
	err := r.db.QueryRowContext(ctx, query, username).Scan(&a.ID, &a.OrganizationID, &a.Username, &a.PasswordHash, &a.Role)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Update rewrites org and role; the password only when a new hash is
// supplied.
func (r *adminUserRepository) Update(ctx context.Context, username string, orgID int32, role domain.AdminRole, passwordHash string) error {
	var err error
	if passwordHash != "" {
		_, err = r.db.ExecContext(ctx,
			`UPDATE admin_users SET organization_id = $1, role = $2, password_hash = $3 WHERE username = $4`,
			orgID, role, passwordHash, username)
	} else {
		_, err = r.db.ExecContext(ctx,
			`UPDATE admin_users SET organization_id = $1, role = $2 WHERE username = $3`,
			orgID, role, username)
	}
	return err
}

func (r *adminUserRepository) Delete(ctx context.Context, username string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM admin_users WHERE username = $1`, username)
	return err
}

func (r *adminUserRepository) List(ctx context.Context) ([]domain.AdminUser, error) {
	query := `SELECT u.admin_id, u.organization_id, u.username, u.role, o.name
	          FROM admin_users u
	          JOIN organizations o ON u.organization_id = o.organization_id
	          ORDER BY u.username`
	return r.listWithOrgName(ctx, query)
}

func (r *adminUserRepository) ListByOrg(ctx context.Context, orgID int32) ([]domain.AdminUser, error) {
	query := `SELECT u.admin_id, u.organization_id, u.username, u.role, o.name
	          FROM admin_users u
	          JOIN organizations o ON u.organization_id = o.organization_id
	          WHERE u.organization_id = $1
	          ORDER BY u.role, u.username`
	return r.listWithOrgName(ctx, query, orgID)
}

// GetOrgAdminAddress returns one OrgAdmin username of the org; the
// username is the account's email address.
func (r *adminUserRepository) GetOrgAdminAddress(ctx context.Context, orgID int32) (string, error) {
	var username string
	query := `SELECT username FROM admin_users WHERE organization_id = $1 AND role = 'OrgAdmin' LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, orgID).Scan(&username)
	return username, err
}

func (r *adminUserRepository) listWithOrgName(ctx context.Context, query string, args ...any) ([]domain.AdminUser, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AdminUser
	for rows.Next() {
		var a domain.AdminUser
		if err := rows.Scan(&a.ID, &a.OrganizationID, &a.Username, &a.Role, &a.OrganizationName); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type superAdminRepository struct {
	db *sql.DB
}

func NewSuperAdminRepository(db *sql.DB) repository.SuperAdminRepository {
	return &superAdminRepository{db: db}
}

func (r *superAdminRepository) Create(ctx context.Context, s *domain.SuperAdmin) error {
	query := `INSERT INTO super_admins (username, password_hash) VALUES ($1, $2) RETURNING super_admin_id`
	err := r.db.QueryRowContext(ctx, query, s.Username, s.PasswordHash).Scan(&s.ID)
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	return err
}

func (r *superAdminRepository) GetByUsername(ctx context.Context, username string) (*domain.SuperAdmin, error) {
	s := &domain.SuperAdmin{}
	query := `SELECT super_admin_id, username, password_hash FROM super_admins WHERE username = $1`
	err := r.db.QueryRowContext(ctx, query, username).Scan(&s.ID, &s.Username, &s.PasswordHash)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *superAdminRepository) List(ctx context.Context) ([]domain.SuperAdmin, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT super_admin_id, username FROM super_admins ORDER BY username`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SuperAdmin
	for rows.Next() {
		var s domain.SuperAdmin
		if err := rows.Scan(&s.ID, &s.Username); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *superAdminRepository) Delete(ctx context.Context, username string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM super_admins WHERE username = $1`, username)
	return err
}
