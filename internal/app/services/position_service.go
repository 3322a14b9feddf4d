package services

import (
	"context"
	"fmt"

	"github.com/yigit/personnel/internal/app/models"
	"github.com/yigit/personnel/internal/app/validation"
	"github.com/yigit/personnel/internal/pkg/metrics"
)

const positionEntity = "position"

// PositionService defines the interface for position-related operations
type PositionService interface {
	Get(ctx context.Context, id int64) (*models.Position, error)
	List(ctx context.Context, skip, limit int) ([]*models.Position, error)
	Create(ctx context.Context, fields validation.Fields) (*models.Position, error)
	Update(ctx context.Context, id int64, fields validation.Fields) (*models.Position, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// positionServiceImpl implements the PositionService interface
type positionServiceImpl struct {
	positionRepo PositionStore
	metrics      *metrics.Metrics
}

// NewPositionService creates a new position service instance
func NewPositionService(positionRepo PositionStore, m *metrics.Metrics) PositionService {
	return &positionServiceImpl{
		positionRepo: positionRepo,
		metrics:      m,
	}
}

// Get retrieves a position by ID
func (s *positionServiceImpl) Get(ctx context.Context, id int64) (*models.Position, error) {
	return s.positionRepo.GetByID(ctx, id)
}

// List returns one window of positions ordered by id
func (s *positionServiceImpl) List(ctx context.Context, skip, limit int) ([]*models.Position, error) {
	return s.positionRepo.List(ctx, skip, limit)
}

// Create validates fields and stores a new position
func (s *positionServiceImpl) Create(ctx context.Context, fields validation.Fields) (*models.Position, error) {
	position, err := validation.ValidatePositionCreate(fields)
	if err != nil {
		return nil, err
	}

	if err := s.positionRepo.Create(ctx, &position); err != nil {
		return nil, fmt.Errorf("error creating position: %w", err)
	}

	s.metrics.RecordChange(positionEntity, actionCreate)
	return &position, nil
}

// Update renames a position. An empty patch returns the stored position.
func (s *positionServiceImpl) Update(ctx context.Context, id int64, fields validation.Fields) (*models.Position, error) {
	patch, err := validation.ValidatePositionUpdate(fields)
	if err != nil {
		return nil, err
	}

	position, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return position, nil
	}

	patch.Apply(position)
	updated, err := s.positionRepo.Update(ctx, position)
	if err != nil {
		return nil, fmt.Errorf("error updating position: %w", err)
	}

	s.metrics.RecordChange(positionEntity, actionUpdate)
	return updated, nil
}

// Delete removes a position. It reports false when the id is unknown.
func (s *positionServiceImpl) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.positionRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("error deleting position: %w", err)
	}
	if deleted {
		s.metrics.RecordChange(positionEntity, actionDelete)
	}
	return deleted, nil
}
