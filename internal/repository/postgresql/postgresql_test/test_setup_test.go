package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/cmlabs-hris/attendance-engine/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-engine/internal/repository/postgresql"
)

// TestDatabaseSetup holds the connection shared by the repository tests.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and applies the schema.
// The test is skipped when the variable is unset.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(context.Background(), dsn, database.PoolConfig{MaxConns: 4, MinConns: 1})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	setup := &TestDatabaseSetup{DB: db}
	ctx := context.Background()
	if err := postgresql.Migrate(ctx, db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := setup.TruncateAllTables(ctx); err != nil {
		t.Fatalf("failed to truncate test database: %v", err)
	}

	t.Cleanup(setup.Close)
	return setup
}

// TruncateAllTables removes every row written by the engine tables.
func (s *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := s.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"clock_events",
		"team_members",
		"teams",
		"leave_periods",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

// Close closes the database connection
func (s *TestDatabaseSetup) Close() {
	s.DB.Close()
}
