package repository

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/christainc3213/Intex-II-V3/internal/config"
	"github.com/christainc3213/Intex-II-V3/internal/database"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.NewSQLite(config.DBConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}
