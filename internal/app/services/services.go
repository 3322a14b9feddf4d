package services

import (
	"context"

	"github.com/yigit/personnel/internal/app/models"
	"github.com/yigit/personnel/internal/app/repositories"
	"github.com/yigit/personnel/internal/pkg/metrics"
)

// Change actions reported to metrics
const (
	actionCreate = "create"
	actionUpdate = "update"
	actionDelete = "delete"
)

// DepartmentStore persists departments
type DepartmentStore interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	List(ctx context.Context, skip, limit int) ([]*models.Department, error)
	Update(ctx context.Context, department *models.Department) (*models.Department, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// PositionStore persists positions
type PositionStore interface {
	Create(ctx context.Context, position *models.Position) error
	GetByID(ctx context.Context, id int64) (*models.Position, error)
	List(ctx context.Context, skip, limit int) ([]*models.Position, error)
	Update(ctx context.Context, position *models.Position) (*models.Position, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// EmployeeStore persists employees and answers filtered listings
type EmployeeStore interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
	List(ctx context.Context, filter models.EmployeeFilter) ([]*models.Employee, error)
	Count(ctx context.Context, filter models.EmployeeFilter) (int64, error)
	Update(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Services groups the business services handed to the presentation layer
type Services struct {
	DepartmentService DepartmentService
	PositionService   PositionService
	EmployeeService   EmployeeService
}

// NewServices wires every service to its repository
func NewServices(repos *repositories.Repositories, m *metrics.Metrics) *Services {
	return &Services{
		DepartmentService: NewDepartmentService(repos.DepartmentRepository, m),
		PositionService:   NewPositionService(repos.PositionRepository, m),
		EmployeeService:   NewEmployeeService(repos.EmployeeRepository, m),
	}
}
