package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/personnel/internal/app/models"
	"github.com/yigit/personnel/internal/pkg/apperrors"
	"github.com/yigit/personnel/internal/pkg/dberrors"
	"github.com/yigit/personnel/internal/pkg/logger"
)

const departmentsTable = "departments"

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	base
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db Database, opts ...Option) *DepartmentRepository {
	return &DepartmentRepository{base: newBase(db, opts...)}
}

// Create inserts a department and fills in its generated id
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	sql, args, err := r.sb.Insert(departmentsTable).
		Columns("name").
		Values(department.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create department query: %w", err)
	}

	ctx, done := r.begin(ctx, "department_create")
	defer done()

	if err = r.db.QueryRow(ctx, sql, args...).Scan(&department.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		logger.Ctx(ctx).Error().Err(err).Str("name", department.Name).Msg("Error executing create department query")
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	sql, args, err := r.sb.Select("id", "name").
		From(departmentsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get department query: %w", err)
	}

	ctx, done := r.begin(ctx, "department_get")
	defer done()

	var department models.Department
	if err = r.db.QueryRow(ctx, sql, args...).Scan(&department.ID, &department.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		logger.Ctx(ctx).Error().Err(err).Int64("departmentID", id).Msg("Error scanning department row")
		return nil, fmt.Errorf("error getting department by ID: %w", err)
	}

	return &department, nil
}

// List returns departments ordered by id
func (r *DepartmentRepository) List(ctx context.Context, skip, limit int) ([]*models.Department, error) {
	offset, size := page(skip, limit)
	sql, args, err := r.sb.Select("id", "name").
		From(departmentsTable).
		OrderBy("id ASC").
		Limit(size).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list departments query: %w", err)
	}

	ctx, done := r.begin(ctx, "department_list")
	defer done()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("Error executing list departments query")
		return nil, fmt.Errorf("error querying departments: %w", err)
	}
	defer rows.Close()

	departments := []*models.Department{}
	for rows.Next() {
		department := &models.Department{}
		if err := rows.Scan(&department.ID, &department.Name); err != nil {
			return nil, fmt.Errorf("error scanning department row: %w", err)
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("Error iterating department rows")
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}

	return departments, nil
}

// Update persists the department name and returns the stored row
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) (*models.Department, error) {
	sql, args, err := r.sb.Update(departmentsTable).
		Set("name", department.Name).
		Where(squirrel.Eq{"id": department.ID}).
		Suffix("RETURNING id, name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update department query: %w", err)
	}

	ctx, done := r.begin(ctx, "department_update")
	defer done()

	updated := &models.Department{}
	if err = r.db.QueryRow(ctx, sql, args...).Scan(&updated.ID, &updated.Name); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, apperrors.ErrDepartmentNotFound
		case dberrors.IsUniqueViolation(err):
			return nil, apperrors.ErrDepartmentAlreadyExists
		}
		logger.Ctx(ctx).Error().Err(err).Int64("departmentID", department.ID).Msg("Error executing update department query")
		return nil, fmt.Errorf("error updating department: %w", err)
	}

	return updated, nil
}

// Delete removes a department. It reports false when no row matched and
// refuses to orphan employees.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Delete(departmentsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build delete department query: %w", err)
	}

	ctx, done := r.begin(ctx, "department_delete")
	defer done()

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return false, apperrors.ErrDepartmentHasEmployees
		}
		logger.Ctx(ctx).Error().Err(err).Int64("departmentID", id).Msg("Error executing delete department query")
		return false, fmt.Errorf("error deleting department: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}
