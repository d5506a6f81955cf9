package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
	"volunteerhub-backend/internal/repository/postgres"
)

func newMockDB(t *testing.T) (sqlmock.Sqlmock, repository.VolunteerRepository) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return mock, postgres.NewVolunteerRepository(db)
}

func TestVolunteerRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("ReturnsGeneratedID", func(t *testing.T) {
		mock, repo := newMockDB(t)

		mock.ExpectQuery("INSERT INTO volunteers").
			WithArgs(int32(1), "hanako", "hash", "田中花子", "123456789012", "hanako@example.jp", "", nil, "", "", "").
			WillReturnRows(sqlmock.NewRows([]string{"volunteer_id"}).AddRow(int32(15)))

		v := &domain.Volunteer{
			OrganizationID: 1,
			Username:       "hanako",
			PasswordHash:   "hash",
			FullName:       "田中花子",
			NationalID:     "123456789012",
			Email:          "hanako@example.jp",
		}
		err := repo.Create(ctx, v)
		assert.NoError(t, err)
		assert.Equal(t, int32(15), v.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UniqueViolationMapsToDuplicate", func(t *testing.T) {
		mock, repo := newMockDB(t)

		mock.ExpectQuery("INSERT INTO volunteers").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, &domain.Volunteer{Username: "hanako"})
		assert.ErrorIs(t, err, repository.ErrDuplicate)
	})
}

func TestVolunteerRepository_GetByEmail(t *testing.T) {
	mock, repo := newMockDB(t)
	registered := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"volunteer_id", "organization_id", "username", "password_hash", "full_name", "mynumber",
		"email", "phone_number", "birth_year", "gender", "postal_code", "address", "registration_date",
	}).AddRow(int32(15), int32(1), "hanako", "hash", "田中花子", "123456789012",
		"hanako@example.jp", "", int32(1990), "", "", "", registered)
	mock.ExpectQuery("SELECT .+ FROM volunteers WHERE email").
		WithArgs("hanako@example.jp").
		WillReturnRows(rows)

	v, err := repo.GetByEmail(context.Background(), "hanako@example.jp")
	require.NoError(t, err)
	assert.Equal(t, int32(15), v.ID)
	assert.Equal(t, "2026-04-01", v.RegisteredOn)
}

func TestVolunteerRepository_UpdateScoped(t *testing.T) {
	ctx := context.Background()

	t.Run("ZeroRowsMeansNotOwned", func(t *testing.T) {
		mock, repo := newMockDB(t)

		mock.ExpectExec("UPDATE volunteers SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateScoped(ctx, &domain.Volunteer{ID: 15}, 99)
		assert.ErrorIs(t, err, repository.ErrNotOwned)
	})

	t.Run("BlankPasswordLeftUnchanged", func(t *testing.T) {
		mock, repo := newMockDB(t)

		mock.ExpectExec(`UPDATE volunteers SET full_name = \$1, email = \$2, phone_number = \$3, birth_year = \$4, gender = \$5, postal_code = \$6, address = \$7 WHERE volunteer_id = \$8 AND organization_id = \$9`).
			WithArgs("田中花子", "hanako@example.jp", "", nil, "", "", "", int32(15), int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateScoped(ctx, &domain.Volunteer{
			ID:       15,
			FullName: "田中花子",
			Email:    "hanako@example.jp",
		}, 1)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NewPasswordHashPersisted", func(t *testing.T) {
		mock, repo := newMockDB(t)

		mock.ExpectExec(`UPDATE volunteers SET full_name = \$1, email = \$2, phone_number = \$3, birth_year = \$4, gender = \$5, postal_code = \$6, address = \$7, password_hash = \$8 WHERE volunteer_id = \$9 AND organization_id = \$10`).
			WithArgs("田中花子", "hanako@example.jp", "", nil, "", "", "", "newhash", int32(15), int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateScoped(ctx, &domain.Volunteer{
			ID:           15,
			FullName:     "田中花子",
			Email:        "hanako@example.jp",
			PasswordHash: "newhash",
		}, 1)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVolunteerRepository_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("BlankOptionalFieldsLeftOut", func(t *testing.T) {
		mock, repo := newMockDB(t)

		// Only email, phone and the id appear when mynumber and the
		// password are unchanged.
		mock.ExpectExec(`UPDATE volunteers SET email = \$1, phone_number = \$2 WHERE volunteer_id = \$3`).
			WithArgs("new@example.jp", "090-0000-0000", int32(15)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateProfile(ctx, 15, "new@example.jp", "090-0000-0000", "", "")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AllFieldsPresent", func(t *testing.T) {
		mock, repo := newMockDB(t)

		mock.ExpectExec(`UPDATE volunteers SET email = \$1, phone_number = \$2, mynumber = \$3, password_hash = \$4 WHERE volunteer_id = \$5`).
			WithArgs("new@example.jp", "", "123456789012", "newhash", int32(15)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateProfile(ctx, 15, "new@example.jp", "", "123456789012", "newhash")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVolunteerRepository_ReplaceInterests(t *testing.T) {
	mock, repo := newMockDB(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM volunteer_category_interests").
		WithArgs(int32(15)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO volunteer_category_interests").
		WithArgs(int32(15), int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO volunteer_category_interests").
		WithArgs(int32(15), int32(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ReplaceInterests(ctx, 15, []int32{1, 3})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVolunteerRepository_DeleteCascades(t *testing.T) {
	mock, repo := newMockDB(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM applications").WithArgs(int32(15)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM volunteer_category_interests").WithArgs(int32(15)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM volunteer_favorite_organizations").WithArgs(int32(15)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM volunteers").WithArgs(int32(15)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(ctx, 15)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
