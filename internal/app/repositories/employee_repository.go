package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/personnel/internal/app/models"
	"github.com/yigit/personnel/internal/pkg/apperrors"
	"github.com/yigit/personnel/internal/pkg/dberrors"
	"github.com/yigit/personnel/internal/pkg/logger"
)

const employeesTable = "employees"

// Foreign key constraints declared by the initial migration.
const (
	employeeDepartmentFK = "employees_department_id_fkey"
	employeePositionFK   = "employees_position_id_fkey"
)

var employeeColumns = []string{
	"id", "full_name", "birth_date", "start_date", "salary", "rate",
	"status", "phone_number", "email", "department_id", "position_id",
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner, e *models.Employee) error {
	return row.Scan(
		&e.ID,
		&e.FullName,
		&e.BirthDate,
		&e.StartDate,
		&e.Salary,
		&e.Rate,
		&e.Status,
		&e.PhoneNumber,
		&e.Email,
		&e.DepartmentID,
		&e.PositionID,
	)
}

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	base
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db Database, opts ...Option) *EmployeeRepository {
	return &EmployeeRepository{base: newBase(db, opts...)}
}

// referentialError translates a foreign key violation into the dangling
// reference of e it was raised for.
func referentialError(err error, e *models.Employee) error {
	if !dberrors.IsForeignKeyViolation(err) {
		return nil
	}
	switch constraint := dberrors.ConstraintName(err); {
	case constraint == employeeDepartmentFK:
		return apperrors.NewReferentialError("department_id", e.DepartmentID)
	case constraint == employeePositionFK, strings.Contains(constraint, "position"):
		return apperrors.NewReferentialError("position_id", e.PositionID)
	default:
		return apperrors.NewReferentialError("department_id", e.DepartmentID)
	}
}

// Create inserts an employee and fills in its generated id. A department or
// position id that does not exist yields *apperrors.ReferentialError.
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	sql, args, err := r.sb.Insert(employeesTable).
		Columns(employeeColumns[1:]...).
		Values(
			employee.FullName,
			employee.BirthDate,
			employee.StartDate,
			employee.Salary,
			employee.Rate,
			employee.Status,
			employee.PhoneNumber,
			employee.Email,
			employee.DepartmentID,
			employee.PositionID,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create employee query: %w", err)
	}

	ctx, done := r.begin(ctx, "employee_create")
	defer done()

	if err = r.db.QueryRow(ctx, sql, args...).Scan(&employee.ID); err != nil {
		if refErr := referentialError(err, employee); refErr != nil {
			return refErr
		}
		logger.Ctx(ctx).Error().Err(err).Str("fullName", employee.FullName).Msg("Error executing create employee query")
		return fmt.Errorf("error creating employee: %w", err)
	}

	return nil
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	sql, args, err := r.sb.Select(employeeColumns...).
		From(employeesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get employee query: %w", err)
	}

	ctx, done := r.begin(ctx, "employee_get")
	defer done()

	var employee models.Employee
	if err = scanEmployee(r.db.QueryRow(ctx, sql, args...), &employee); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		logger.Ctx(ctx).Error().Err(err).Int64("employeeID", id).Msg("Error scanning employee row")
		return nil, fmt.Errorf("error getting employee by ID: %w", err)
	}

	return &employee, nil
}

// escapeLike escapes the LIKE metacharacters of s so it matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// filterConditions composes the optional predicates of f. Absent
// predicates are left out entirely.
func filterConditions(f models.EmployeeFilter) squirrel.And {
	where := squirrel.And{}
	if f.NameSubstring != nil {
		where = append(where, squirrel.ILike{"full_name": "%" + escapeLike(*f.NameSubstring) + "%"})
	}
	if f.MinSalary != nil {
		where = append(where, squirrel.GtOrEq{"salary": *f.MinSalary})
	}
	if f.MaxSalary != nil {
		where = append(where, squirrel.LtOrEq{"salary": *f.MaxSalary})
	}
	if f.StartDateFrom != nil {
		where = append(where, squirrel.GtOrEq{"start_date": *f.StartDateFrom})
	}
	if f.StartDateTo != nil {
		where = append(where, squirrel.LtOrEq{"start_date": *f.StartDateTo})
	}
	if f.DepartmentID != nil {
		where = append(where, squirrel.Eq{"department_id": *f.DepartmentID})
	}
	return where
}

// List returns the employees matching every predicate of filter, ordered by
// id and paginated with filter.Skip and filter.Limit.
func (r *EmployeeRepository) List(ctx context.Context, filter models.EmployeeFilter) ([]*models.Employee, error) {
	offset, size := page(filter.Skip, filter.Limit)

	query := r.sb.Select(employeeColumns...).From(employeesTable)
	if where := filterConditions(filter); len(where) > 0 {
		query = query.Where(where)
	}

	sql, args, err := query.
		OrderBy("id ASC").
		Limit(size).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list employees query: %w", err)
	}

	ctx, done := r.begin(ctx, "employee_list")
	defer done()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("Error executing list employees query")
		return nil, fmt.Errorf("error querying employees: %w", err)
	}
	defer rows.Close()

	employees := []*models.Employee{}
	for rows.Next() {
		employee := &models.Employee{}
		if err := scanEmployee(rows, employee); err != nil {
			return nil, fmt.Errorf("error scanning employee row: %w", err)
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("Error iterating employee rows")
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}

	return employees, nil
}

// Count returns how many employees match the predicates of filter.
// Pagination fields are ignored.
func (r *EmployeeRepository) Count(ctx context.Context, filter models.EmployeeFilter) (int64, error) {
	query := r.sb.Select("COUNT(*)").From(employeesTable)
	if where := filterConditions(filter); len(where) > 0 {
		query = query.Where(where)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count employees query: %w", err)
	}

	ctx, done := r.begin(ctx, "employee_count")
	defer done()

	var total int64
	if err = r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("Error executing count employees query")
		return 0, fmt.Errorf("error counting employees: %w", err)
	}

	return total, nil
}

// Update writes every attribute of employee in a single statement and
// returns the stored row.
func (r *EmployeeRepository) Update(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	sql, args, err := r.sb.Update(employeesTable).
		Set("full_name", employee.FullName).
		Set("birth_date", employee.BirthDate).
		Set("start_date", employee.StartDate).
		Set("salary", employee.Salary).
		Set("rate", employee.Rate).
		Set("status", employee.Status).
		Set("phone_number", employee.PhoneNumber).
		Set("email", employee.Email).
		Set("department_id", employee.DepartmentID).
		Set("position_id", employee.PositionID).
		Where(squirrel.Eq{"id": employee.ID}).
		Suffix("RETURNING " + strings.Join(employeeColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update employee query: %w", err)
	}

	ctx, done := r.begin(ctx, "employee_update")
	defer done()

	updated := &models.Employee{}
	if err = scanEmployee(r.db.QueryRow(ctx, sql, args...), updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		if refErr := referentialError(err, employee); refErr != nil {
			return nil, refErr
		}
		logger.Ctx(ctx).Error().Err(err).Int64("employeeID", employee.ID).Msg("Error executing update employee query")
		return nil, fmt.Errorf("error updating employee: %w", err)
	}

	return updated, nil
}

// Delete removes an employee, reporting whether a row existed
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Delete(employeesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build delete employee query: %w", err)
	}

	ctx, done := r.begin(ctx, "employee_delete")
	defer done()

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Int64("employeeID", id).Msg("Error executing delete employee query")
		return false, fmt.Errorf("error deleting employee: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}
