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

const positionsTable = "positions"

// PositionRepository handles database operations for positions
type PositionRepository struct {
	base
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db Database, opts ...Option) *PositionRepository {
	return &PositionRepository{base: newBase(db, opts...)}
}

// Create inserts a position and fills in its generated id
func (r *PositionRepository) Create(ctx context.Context, position *models.Position) error {
	sql, args, err := r.sb.Insert(positionsTable).
		Columns("name").
		Values(position.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create position query: %w", err)
	}

	ctx, done := r.begin(ctx, "position_create")
	defer done()

	if err = r.db.QueryRow(ctx, sql, args...).Scan(&position.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrPositionAlreadyExists
		}
		logger.Ctx(ctx).Error().Err(err).Str("name", position.Name).Msg("Error executing create position query")
		return fmt.Errorf("error creating position: %w", err)
	}

	return nil
}

// GetByID retrieves a position by ID
func (r *PositionRepository) GetByID(ctx context.Context, id int64) (*models.Position, error) {
	sql, args, err := r.sb.Select("id", "name").
		From(positionsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get position query: %w", err)
	}

	ctx, done := r.begin(ctx, "position_get")
	defer done()

	var position models.Position
	if err = r.db.QueryRow(ctx, sql, args...).Scan(&position.ID, &position.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPositionNotFound
		}
		logger.Ctx(ctx).Error().Err(err).Int64("positionID", id).Msg("Error scanning position row")
		return nil, fmt.Errorf("error getting position by ID: %w", err)
	}

	return &position, nil
}

// List returns positions ordered by id
func (r *PositionRepository) List(ctx context.Context, skip, limit int) ([]*models.Position, error) {
	offset, size := page(skip, limit)
	sql, args, err := r.sb.Select("id", "name").
		From(positionsTable).
		OrderBy("id ASC").
		Limit(size).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list positions query: %w", err)
	}

	ctx, done := r.begin(ctx, "position_list")
	defer done()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("Error executing list positions query")
		return nil, fmt.Errorf("error querying positions: %w", err)
	}
	defer rows.Close()

	positions := []*models.Position{}
	for rows.Next() {
		position := &models.Position{}
		if err := rows.Scan(&position.ID, &position.Name); err != nil {
			return nil, fmt.Errorf("error scanning position row: %w", err)
		}
		positions = append(positions, position)
	}

	if err := rows.Err(); err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("Error iterating position rows")
		return nil, fmt.Errorf("error iterating position rows: %w", err)
	}

	return positions, nil
}

// Update persists the position name and returns the stored row
func (r *PositionRepository) Update(ctx context.Context, position *models.Position) (*models.Position, error) {
	sql, args, err := r.sb.Update(positionsTable).
		Set("name", position.Name).
		Where(squirrel.Eq{"id": position.ID}).
		Suffix("RETURNING id, name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update position query: %w", err)
	}

	ctx, done := r.begin(ctx, "position_update")
	defer done()

	updated := &models.Position{}
	if err = r.db.QueryRow(ctx, sql, args...).Scan(&updated.ID, &updated.Name); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, apperrors.ErrPositionNotFound
		case dberrors.IsUniqueViolation(err):
			return nil, apperrors.ErrPositionAlreadyExists
		}
		logger.Ctx(ctx).Error().Err(err).Int64("positionID", position.ID).Msg("Error executing update position query")
		return nil, fmt.Errorf("error updating position: %w", err)
	}

	return updated, nil
}

// Delete removes a position. It reports false when no row matched and
// refuses to orphan employees.
func (r *PositionRepository) Delete(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Delete(positionsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build delete position query: %w", err)
	}

	ctx, done := r.begin(ctx, "position_delete")
	defer done()

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return false, apperrors.ErrPositionHasEmployees
		}
		logger.Ctx(ctx).Error().Err(err).Int64("positionID", id).Msg("Error executing delete position query")
		return false, fmt.Errorf("error deleting position: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}
