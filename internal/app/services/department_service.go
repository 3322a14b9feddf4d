package services

import (
	"context"
	"fmt"

	"github.com/yigit/personnel/internal/app/models"
	"github.com/yigit/personnel/internal/app/validation"
	"github.com/yigit/personnel/internal/pkg/metrics"
)

const departmentEntity = "department"

// DepartmentService defines the interface for department-related operations
type DepartmentService interface {
	Get(ctx context.Context, id int64) (*models.Department, error)
	List(ctx context.Context, skip, limit int) ([]*models.Department, error)
	Create(ctx context.Context, fields validation.Fields) (*models.Department, error)
	Update(ctx context.Context, id int64, fields validation.Fields) (*models.Department, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// departmentServiceImpl implements the DepartmentService interface
type departmentServiceImpl struct {
	departmentRepo DepartmentStore
	metrics        *metrics.Metrics
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo DepartmentStore, m *metrics.Metrics) DepartmentService {
	return &departmentServiceImpl{
		departmentRepo: departmentRepo,
		metrics:        m,
	}
}

// Get retrieves a department by ID
func (s *departmentServiceImpl) Get(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

// List returns one window of departments ordered by id
func (s *departmentServiceImpl) List(ctx context.Context, skip, limit int) ([]*models.Department, error) {
	return s.departmentRepo.List(ctx, skip, limit)
}

// Create validates fields and stores a new department
func (s *departmentServiceImpl) Create(ctx context.Context, fields validation.Fields) (*models.Department, error) {
	department, err := validation.ValidateDepartmentCreate(fields)
	if err != nil {
		return nil, err
	}

	if err := s.departmentRepo.Create(ctx, &department); err != nil {
		return nil, fmt.Errorf("error creating department: %w", err)
	}

	s.metrics.RecordChange(departmentEntity, actionCreate)
	return &department, nil
}

// Update renames a department. An empty patch returns the stored department.
func (s *departmentServiceImpl) Update(ctx context.Context, id int64, fields validation.Fields) (*models.Department, error) {
	patch, err := validation.ValidateDepartmentUpdate(fields)
	if err != nil {
		return nil, err
	}

	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return department, nil
	}

	patch.Apply(department)
	updated, err := s.departmentRepo.Update(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("error updating department: %w", err)
	}

	s.metrics.RecordChange(departmentEntity, actionUpdate)
	return updated, nil
}

// Delete removes a department. It reports false when the id is unknown.
func (s *departmentServiceImpl) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.departmentRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("error deleting department: %w", err)
	}
	if deleted {
		s.metrics.RecordChange(departmentEntity, actionDelete)
	}
	return deleted, nil
}
