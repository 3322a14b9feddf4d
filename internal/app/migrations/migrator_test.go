package migrations_test

import (
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/personnel/internal/app/migrations"
)

const (
	createTracking = "CREATE TABLE IF NOT EXISTS schema_migrations"
	checkApplied   = `SELECT EXISTS\(SELECT 1 FROM schema_migrations WHERE version = \$1\)`
	recordApplied  = "INSERT INTO schema_migrations"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"sql/002_more.sql": {Data: []byte("CREATE INDEX idx ON t (c);")},
		"sql/001_init.sql": {Data: []byte("CREATE TABLE t (c INT);")},
		"sql/README.md":    {Data: []byte("ignored")},
		"sql/nested/x.sql": {Data: []byte("ignored")},
	}
}

func TestMigrateFS_AppliesPendingInOrder(t *testing.T) {
	t.Parallel()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(createTracking).WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	mock.ExpectQuery(checkApplied).WithArgs("001").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	mock.ExpectQuery(checkApplied).WithArgs("002").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX idx ON t (c);")).WillReturnResult(pgxmock.NewResult("CREATE INDEX", 0))
	mock.ExpectExec(recordApplied).WithArgs("002", pgxmock.AnyArg()).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err = migrations.NewMigrator(mock).MigrateFS(t.Context(), testFS(), "sql")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateFS_FailedStatement(t *testing.T) {
	t.Parallel()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(createTracking).WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectQuery(checkApplied).WithArgs("001").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE t (c INT);")).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err = migrations.NewMigrator(mock).MigrateFS(t.Context(), testFS(), "sql")

	require.ErrorIs(t, err, assert.AnError)
	require.ErrorContains(t, err, "sql/001_init.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateFS_TrackingTableFailure(t *testing.T) {
	t.Parallel()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(createTracking).WillReturnError(assert.AnError)

	err = migrations.NewMigrator(mock).MigrateFS(t.Context(), testFS(), "sql")

	require.ErrorContains(t, err, "failed to create migration tracking table")
}
