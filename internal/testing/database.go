package testing

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/xraykit/xraykit/db"
)

// CreateTestDB creates a fully migrated SQLite test database in a
// temporary directory. Automatically registers cleanup via t.Cleanup().
func CreateTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.OpenWithMigrations(filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
	})

	return conn
}
