package repository_test

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"content-platform/internal/infrastructure/database"
)

// TestDB is a migrated PostgreSQL container shared by the tests of one function.
type TestDB struct {
	Pool      *pgxpool.Pool
	Container testcontainers.Container
}

// allTables lists every table, children first.
var allTables = []string{
	"reports",
	"article_saves",
	"article_comments",
	"articles",
	"subscriptions",
	"external_principals",
	"local_principals",
}

// SetupTestDB starts PostgreSQL, applies the schema migrations and connects.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	ctx := context.Background()

	_, currentFile, _, _ := runtime.Caller(0)
	migrationsPath := filepath.Join(filepath.Dir(currentFile), "..", "..", "migrations")

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("content_test"),
		postgres.WithUsername("content"),
		postgres.WithPassword("content"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	tdb := &TestDB{Container: container}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		tdb.Cleanup(t)
		t.Fatalf("connection string: %v", err)
	}

	if _, err := database.Migrate(migrationsPath, dsn); err != nil {
		tdb.Cleanup(t)
		t.Fatalf("migrate: %v", err)
	}

	tdb.Pool, err = database.Open(ctx, dsn, database.PoolLimits{MaxConns: 8})
	if err != nil {
		tdb.Cleanup(t)
		t.Fatalf("open pool: %v", err)
	}
	return tdb
}

// Cleanup closes the pool and terminates the container.
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	if tdb.Pool != nil {
		tdb.Pool.Close()
	}
	if tdb.Container != nil {
		if err := tdb.Container.Terminate(context.Background()); err != nil {
			t.Logf("terminate container: %v", err)
		}
	}
}

// Reset empties every table.
func (tdb *TestDB) Reset(t *testing.T) {
	t.Helper()
	stmt := fmt.Sprintf("TRUNCATE TABLE %s CASCADE", strings.Join(allTables, ", "))
	if _, err := tdb.Pool.Exec(context.Background(), stmt); err != nil {
		t.Fatalf("reset tables: %v", err)
	}
}
