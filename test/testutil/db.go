package testutil

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"notely/internal/repo"
)

func OpenTestDB(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	db, err := repo.Open(filepath.Join(t.TempDir(), "notely_test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := repo.ApplyMigrations(db); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	return db, func() {
		_ = db.Close()
	}
}
