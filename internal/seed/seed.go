// Package seed inserts the reference data a fresh installation starts with.
package seed

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/personnel/internal/db"
	"github.com/yigit/personnel/internal/pkg/logger"
)

// Default reference rows. Existing names are left untouched.
var (
	DefaultDepartments = []string{"Human Resources", "Engineering", "Sales", "Finance"}
	DefaultPositions   = []string{"Manager", "Engineer", "Analyst", "Specialist"}
)

// CreateDefaultData inserts the default departments and positions in one
// transaction. Running it again is a no-op.
func CreateDefaultData(ctx context.Context, database db.TxBeginner) error {
	logger.Info().Msg("Checking/Creating default data (Departments/Positions)...")

	err := db.RunInTx(ctx, database, func(ctx context.Context, tx pgx.Tx) error {
		departments, err := insertNames(ctx, tx, "departments", DefaultDepartments)
		if err != nil {
			return err
		}
		positions, err := insertNames(ctx, tx, "positions", DefaultPositions)
		if err != nil {
			return err
		}
		logger.Info().
			Int64("departments", departments).
			Int64("positions", positions).
			Msg("Default data created")
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create default data: %w", err)
	}
	return nil
}

func insertNames(ctx context.Context, tx pgx.Tx, table string, names []string) (int64, error) {
	if len(names) == 0 {
		return 0, nil
	}

	insert := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Insert(table).
		Columns("name").
		Suffix("ON CONFLICT (name) DO NOTHING")
	for _, name := range names {
		insert = insert.Values(name)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build %s seed query: %w", table, err)
	}

	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to seed %s: %w", table, err)
	}
	return tag.RowsAffected(), nil
}
