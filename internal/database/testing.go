package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SetupTestDB connects to the database named by MATCHCAST_TEST_DATABASE_URL
// and installs the schema. Tests that need a live database are skipped when
// the variable is unset.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("MATCHCAST_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("MATCHCAST_TEST_DATABASE_URL not set, skipping database test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("failed to create test database pool: %v", err)
	}

	db := &DB{pool: pool}
	if err := db.Ping(ctx); err != nil {
		t.Fatalf("failed to ping test database: %v", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		t.Fatalf("failed to install schema: %v", err)
	}

	return db
}

// TeardownTestDB truncates the test tables and closes the connection.
func TeardownTestDB(t *testing.T, db *DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.pool.Exec(ctx, "TRUNCATE matches, team_stats"); err != nil {
		t.Logf("warning: failed to truncate test tables: %v", err)
	}
	db.Close()
}
