package services

import (
	"context"
	"fmt"

	"github.com/yigit/personnel/internal/app/models"
	"github.com/yigit/personnel/internal/app/validation"
	"github.com/yigit/personnel/internal/pkg/logger"
	"github.com/yigit/personnel/internal/pkg/metrics"
)

const employeeEntity = "employee"

// EmployeeService defines the interface for employee-related operations
type EmployeeService interface {
	Get(ctx context.Context, id int64) (*models.Employee, error)
	List(ctx context.Context, filter models.EmployeeFilter) ([]*models.Employee, error)
	Count(ctx context.Context, filter models.EmployeeFilter) (int64, error)
	Create(ctx context.Context, fields validation.Fields) (*models.Employee, error)
	Update(ctx context.Context, id int64, fields validation.Fields) (*models.Employee, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// employeeServiceImpl implements the EmployeeService interface
type employeeServiceImpl struct {
	employeeRepo EmployeeStore
	metrics      *metrics.Metrics
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(employeeRepo EmployeeStore, m *metrics.Metrics) EmployeeService {
	return &employeeServiceImpl{
		employeeRepo: employeeRepo,
		metrics:      m,
	}
}

// Get retrieves an employee by ID
func (s *employeeServiceImpl) Get(ctx context.Context, id int64) (*models.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

// List returns the employees matching filter, ordered by id
func (s *employeeServiceImpl) List(ctx context.Context, filter models.EmployeeFilter) ([]*models.Employee, error) {
	return s.employeeRepo.List(ctx, filter)
}

// Count returns how many employees match filter, ignoring its window
func (s *employeeServiceImpl) Count(ctx context.Context, filter models.EmployeeFilter) (int64, error) {
	return s.employeeRepo.Count(ctx, filter)
}

// Create validates fields and stores a new employee. Dangling department or
// position ids surface as *apperrors.ReferentialError.
func (s *employeeServiceImpl) Create(ctx context.Context, fields validation.Fields) (*models.Employee, error) {
	employee, err := validation.ValidateEmployeeCreate(fields)
	if err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Create(ctx, &employee); err != nil {
		return nil, fmt.Errorf("error creating employee: %w", err)
	}

	logger.Ctx(ctx).Info().Int64("employeeID", employee.ID).Msg("Employee created")
	s.metrics.RecordChange(employeeEntity, actionCreate)
	return &employee, nil
}

// Update merges the fields present in the request into the stored employee.
// Unknown ids fail before anything is written; an empty patch is a no-op.
func (s *employeeServiceImpl) Update(ctx context.Context, id int64, fields validation.Fields) (*models.Employee, error) {
	patch, err := validation.ValidateEmployeeUpdate(fields)
	if err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return employee, nil
	}

	patch.Apply(employee)
	updated, err := s.employeeRepo.Update(ctx, employee)
	if err != nil {
		return nil, fmt.Errorf("error updating employee: %w", err)
	}

	s.metrics.RecordChange(employeeEntity, actionUpdate)
	return updated, nil
}

// Delete removes an employee. It reports false when the id is unknown.
func (s *employeeServiceImpl) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.employeeRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("error deleting employee: %w", err)
	}
	if deleted {
		logger.Ctx(ctx).Info().Int64("employeeID", id).Msg("Employee deleted")
		s.metrics.RecordChange(employeeEntity, actionDelete)
	}
	return deleted, nil
}
