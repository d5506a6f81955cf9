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

type volunteerRepository struct {
	db *sql.DB
}

func NewVolunteerRepository(db *sql.DB) repository.VolunteerRepository {
	return &volunteerRepository{db: db}
}

const volunteerColumns = `volunteer_id, organization_id, username, password_hash, full_name, COALESCE(mynumber, ''), email, COALESCE(phone_number, ''), birth_year, COALESCE(gender, ''), COALESCE(postal_code, ''), COALESCE(address, ''), registration_date`

func scanVolunteer(row interface{ Scan(...any) error }) (*domain.Volunteer, error) {
	v := &domain.Volunteer{}
	var registeredOn time.Time
	err := row.Scan(&v.ID, &v.OrganizationID, &v.Username, &v.PasswordHash, &v.FullName, &v.NationalID,
		&v.Email, &v.PhoneNumber, &v.BirthYear, &v.Gender, &v.PostalCode, &v.Address, &registeredOn)
	if err != nil {
		return nil, err
	}
	v.RegisteredOn = registeredOn.Format("2006-01-02")
	return v, nil
}

func (r *volunteerRepository) Create(ctx context.Context, v *domain.Volunteer) error {
	query := `INSERT INTO volunteers (organization_id, username, password_hash, full_name, mynumber, email, phone_number, birth_year, gender, postal_code, address, registration_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW()) RETURNING volunteer_id`
	err := r.db.QueryRowContext(ctx, query, v.OrganizationID, v.Username, v.PasswordHash, v.FullName,
		v.NationalID, v.Email, v.PhoneNumber, v.BirthYear, v.Gender, v.PostalCode, v.Address).Scan(&v.ID)
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	return err
}

func (r *volunteerRepository) GetByID(ctx context.Context, id int32) (*domain.Volunteer, error) {
	query := `SELECT ` + volunteerColumns + ` FROM volunteers WHERE volunteer_id = $1`
	return scanVolunteer(r.db.QueryRowContext(ctx, query, id))
}

func (r *volunteerRepository) GetByEmail(ctx context.Context, email string) (*domain.Volunteer, error) {
	query := `SELECT ` + volunteerColumns + ` FROM volunteers WHERE email = $1`
	return scanVolunteer(r.db.QueryRowContext(ctx, query, email))
}

func (r *volunteerRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var id int32
	query := `SELECT volunteer_id FROM volunteers WHERE username = $1 OR email = $2 LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, username, email).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *volunteerRepository) ListByOrg(ctx context.Context, orgID int32) ([]domain.Volunteer, error) {
	query := `SELECT ` + volunteerColumns + ` FROM volunteers WHERE organization_id = $1 ORDER BY volunteer_id`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Volunteer
	for rows.Next() {
		v, err := scanVolunteer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}

func (r *volunteerRepository) GetScoped(ctx context.Context, id, orgID int32) (*domain.Volunteer, error) {
	query := `SELECT ` + volunteerColumns + ` FROM volunteers WHERE volunteer_id = $1 AND organization_id = $2`
	return scanVolunteer(r.db.QueryRowContext(ctx, query, id, orgID))
}

// UpdateScoped applies a staff edit within the volunteer's own
// organization. An empty PasswordHash means "leave unchanged".
func (r *volunteerRepository) UpdateScoped(ctx context.Context, v *domain.Volunteer, orgID int32) error {
	sets := []string{"full_name = $1", "email = $2", "phone_number = $3", "birth_year = $4", "gender = $5", "postal_code = $6", "address = $7"}
	args := []any{v.FullName, v.Email, v.PhoneNumber, v.BirthYear, v.Gender, v.PostalCode, v.Address}
	if v.PasswordHash != "" {
		args = append(args, v.PasswordHash)
		sets = append(sets, fmt.Sprintf("password_hash = $%d", len(args)))
	}
	args = append(args, v.ID, orgID)
	query := "UPDATE volunteers SET "
	for i, s := range sets {
		if i > 0 {
			query += ", "
		}
		query += s
	}
	query += fmt.Sprintf(" WHERE volunteer_id = $%d AND organization_id = $%d", len(args)-1, len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
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

// UpdateProfile applies the volunteer's own profile edit. Empty
// nationalID / passwordHash mean "leave unchanged".
func (r *volunteerRepository) UpdateProfile(ctx context.Context, id int32, email, phone, nationalID, passwordHash string) error {
	sets := []string{"email = $1", "phone_number = $2"}
	args := []any{email, phone}
	if nationalID != "" {
		args = append(args, nationalID)
		sets = append(sets, fmt.Sprintf("mynumber = $%d", len(args)))
	}
	if passwordHash != "" {
		args = append(args, passwordHash)
		sets = append(sets, fmt.Sprintf("password_hash = $%d", len(args)))
	}
	args = append(args, id)
	query := "UPDATE volunteers SET "
	for i, s := range sets {
		if i > 0 {
			query += ", "
		}
		query += s
	}
	query += fmt.Sprintf(" WHERE volunteer_id = $%d", len(args))

	_, err := r.db.ExecContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	return err
}

// Delete removes the volunteer and every dependent row. One
// transaction, so a failed cascade leaves nothing half-deleted.
func (r *volunteerRepository) Delete(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM applications WHERE volunteer_id = $1`,
		`DELETE FROM volunteer_category_interests WHERE volunteer_id = $1`,
		`DELETE FROM volunteer_favorite_organizations WHERE volunteer_id = $1`,
	} {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return err
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM volunteers WHERE volunteer_id = $1`, id)
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
	return tx.Commit()
}

func (r *volunteerRepository) ListInterests(ctx context.Context, volunteerID int32) ([]int32, error) {
	return r.listIDs(ctx, `SELECT category_id FROM volunteer_category_interests WHERE volunteer_id = $1`, volunteerID)
}

func (r *volunteerRepository) ReplaceInterests(ctx context.Context, volunteerID int32, categoryIDs []int32) error {
	return r.replaceSet(ctx,
		`DELETE FROM volunteer_category_interests WHERE volunteer_id = $1`,
		`INSERT INTO volunteer_category_interests (volunteer_id, category_id) VALUES ($1, $2)`,
		volunteerID, categoryIDs)
}

func (r *volunteerRepository) ListFavorites(ctx context.Context, volunteerID int32) ([]int32, error) {
	return r.listIDs(ctx, `SELECT organization_id FROM volunteer_favorite_organizations WHERE volunteer_id = $1`, volunteerID)
}

func (r *volunteerRepository) ReplaceFavorites(ctx context.Context, volunteerID int32, orgIDs []int32) error {
	return r.replaceSet(ctx,
		`DELETE FROM volunteer_favorite_organizations WHERE volunteer_id = $1`,
		`INSERT INTO volunteer_favorite_organizations (volunteer_id, organization_id) VALUES ($1, $2)`,
		volunteerID, orgIDs)
}

func (r *volunteerRepository) ListInterestedContacts(ctx context.Context, categoryIDs []int32) ([]domain.VolunteerContact, error) {
	query := `SELECT DISTINCT v.full_name, v.email
	          FROM volunteers v
	          JOIN volunteer_category_interests vci ON v.volunteer_id = vci.volunteer_id
	          WHERE vci.category_id = ANY($1)`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(categoryIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.VolunteerContact
	for rows.Next() {
		var c domain.VolunteerContact
		if err := rows.Scan(&c.FullName, &c.Email); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *volunteerRepository) listIDs(ctx context.Context, query string, volunteerID int32) ([]int32, error) {
	rows, err := r.db.QueryContext(ctx, query, volunteerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int32{}
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// replaceSet implements the delete-then-reinsert semantics of the
// interest and favorite join tables inside one transaction.
func (r *volunteerRepository) replaceSet(ctx context.Context, deleteStmt, insertStmt string, volunteerID int32, ids []int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteStmt, volunteerID); err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx, insertStmt, volunteerID, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}
