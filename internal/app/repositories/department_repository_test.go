package repositories_test

import (
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/personnel/internal/app/models"
	"github.com/yigit/personnel/internal/app/repositories"
	"github.com/yigit/personnel/internal/pkg/apperrors"
)

var (
	insertDepartment = regexp.QuoteMeta(`INSERT INTO departments (name) VALUES ($1) RETURNING id`)
	selectDepartment = regexp.QuoteMeta(`SELECT id, name FROM departments WHERE id = $1`)
	updateDepartment = regexp.QuoteMeta(`UPDATE departments SET name = $1 WHERE id = $2 RETURNING id, name`)
	deleteDepartment = regexp.QuoteMeta(`DELETE FROM departments WHERE id = $1`)
)

func TestDepartmentRepository_Create(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repositories.NewDepartmentRepository(mock)
		mock.ExpectQuery(insertDepartment).
			WithArgs("Sales").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(4)))

		department := &models.Department{Name: "Sales"}
		require.NoError(t, repo.Create(ctx, department))
		assert.Equal(t, int64(4), department.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repositories.NewDepartmentRepository(mock)
		mock.ExpectQuery(insertDepartment).
			WithArgs("Sales").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "departments_name_key"})

		err = repo.Create(ctx, &models.Department{Name: "Sales"})
		require.ErrorIs(t, err, apperrors.ErrDepartmentAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database failure", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repositories.NewDepartmentRepository(mock)
		mock.ExpectQuery(insertDepartment).WithArgs("Sales").WillReturnError(assert.AnError)

		err = repo.Create(ctx, &models.Department{Name: "Sales"})
		require.ErrorIs(t, err, assert.AnError)
		require.ErrorContains(t, err, "error creating department")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDepartmentRepository_GetByID(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repositories.NewDepartmentRepository(mock)
		mock.ExpectQuery(selectDepartment).
			WithArgs(int64(2)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(int64(2), "IT"))

		department, err := repo.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, &models.Department{ID: 2, Name: "IT"}, department)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repositories.NewDepartmentRepository(mock)
		mock.ExpectQuery(selectDepartment).WithArgs(int64(9)).WillReturnError(pgx.ErrNoRows)

		department, err := repo.GetByID(ctx, 9)
		require.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
		require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
		assert.Nil(t, department)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDepartmentRepository_List(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	tests := []struct {
		name        string
		skip, limit int
		sql         string
	}{
		{"explicit page", 20, 10, `SELECT id, name FROM departments ORDER BY id ASC LIMIT 10 OFFSET 20`},
		{"defaults", -1, 0, `SELECT id, name FROM departments ORDER BY id ASC LIMIT 100 OFFSET 0`},
		{"clamped limit", 0, 5000, `SELECT id, name FROM departments ORDER BY id ASC LIMIT 1000 OFFSET 0`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			repo := repositories.NewDepartmentRepository(mock)
			mock.ExpectQuery(regexp.QuoteMeta(tt.sql)).
				WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
					AddRow(int64(1), "HR").
					AddRow(int64(2), "IT"))

			departments, err := repo.List(ctx, tt.skip, tt.limit)
			require.NoError(t, err)
			require.Len(t, departments, 2)
			assert.Equal(t, "IT", departments[1].Name)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repositories.NewDepartmentRepository(mock)
		mock.ExpectQuery("SELECT id, name FROM departments").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

		departments, err := repo.List(ctx, 0, 10)
		require.NoError(t, err)
		assert.NotNil(t, departments)
		assert.Empty(t, departments)
	})
}

func TestDepartmentRepository_Update(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repositories.NewDepartmentRepository(mock)
		mock.ExpectQuery(updateDepartment).
			WithArgs("Finance", int64(3)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(int64(3), "Finance"))

		updated, err := repo.Update(ctx, &models.Department{ID: 3, Name: "Finance"})
		require.NoError(t, err)
		assert.Equal(t, "Finance", updated.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repositories.NewDepartmentRepository(mock)
		mock.ExpectQuery(updateDepartment).WithArgs("Finance", int64(3)).WillReturnError(pgx.ErrNoRows)

		_, err = repo.Update(ctx, &models.Department{ID: 3, Name: "Finance"})
		require.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	})

	t.Run("name taken", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repositories.NewDepartmentRepository(mock)
		mock.ExpectQuery(updateDepartment).
			WithArgs("Finance", int64(3)).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err = repo.Update(ctx, &models.Department{ID: 3, Name: "Finance"})
		require.ErrorIs(t, err, apperrors.ErrDepartmentAlreadyExists)
	})
}

func TestDepartmentRepository_Delete(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	tests := []struct {
		name    string
		result  pgconn.CommandTag
		err     error
		want    bool
		wantErr error
	}{
		{name: "removed", result: pgxmock.NewResult("DELETE", 1), want: true},
		{name: "missing", result: pgxmock.NewResult("DELETE", 0), want: false},
		{name: "has employees", err: &pgconn.PgError{Code: "23503"}, wantErr: apperrors.ErrDepartmentHasEmployees},
		{name: "failure", err: assert.AnError, wantErr: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			repo := repositories.NewDepartmentRepository(mock)
			exp := mock.ExpectExec(deleteDepartment).WithArgs(int64(5))
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnResult(tt.result)
			}

			deleted, err := repo.Delete(ctx, 5)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, deleted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
