package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"github.com/christainc3213/Intex-II-V3/internal/config"
)

// NewSQLite opens the SQLite database, configures pragmas, and runs
// migrations. Transactions take the write lock up front (_txlock=
// immediate) so concurrent writers serialize instead of failing at
// commit; show_id assignment depends on this.
func NewSQLite(cfg config.DBConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_txlock=immediate", cfg.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer; keep the pool small.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", pragma, err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	slog.Info("connected to SQLite", "path", cfg.Path)
	return db, nil
}

func runMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS movies_titles (
			show_id TEXT PRIMARY KEY,
			type TEXT NOT NULL DEFAULT 'Movie',
			title TEXT NOT NULL,
			director TEXT DEFAULT '',
			"cast" TEXT DEFAULT '',
			country TEXT DEFAULT '',
			release_year INTEGER DEFAULT 0,
			rating TEXT DEFAULT '',
			duration TEXT DEFAULT '',
			description TEXT DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS movies_genres (
			show_id TEXT NOT NULL REFERENCES movies_titles(show_id) ON DELETE CASCADE,
			genre TEXT NOT NULL,
			PRIMARY KEY (show_id, genre)
		)`,
		`CREATE TABLE IF NOT EXISTS movies_ratings (
			user_id INTEGER NOT NULL,
			show_id TEXT NOT NULL,
			rating INTEGER NOT NULL,
			PRIMARY KEY (user_id, show_id)
		)`,
		`CREATE TABLE IF NOT EXISTS movies_users (
			user_id INTEGER PRIMARY KEY,
			name TEXT DEFAULT '',
			phone TEXT DEFAULT '',
			email TEXT DEFAULT '',
			age INTEGER DEFAULT 0,
			gender TEXT DEFAULT '',
			city TEXT DEFAULT '',
			state TEXT DEFAULT '',
			zip INTEGER DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS user_subscriptions (
			user_id INTEGER NOT NULL REFERENCES movies_users(user_id) ON DELETE CASCADE,
			service TEXT NOT NULL,
			PRIMARY KEY (user_id, service)
		)`,
		`CREATE TABLE IF NOT EXISTS interactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			interaction_id TEXT NOT NULL,
			event_type TEXT NOT NULL,
			movie_id TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		// Index for substring search and the paging scan order.
		`CREATE INDEX IF NOT EXISTS idx_movies_titles_title ON movies_titles(title)`,
		`CREATE INDEX IF NOT EXISTS idx_interactions_interaction_id ON interactions(interaction_id)`,
	}

	// Precomputed recommendation tables. An offline batch job owns
	// their contents; the server only reads them. Browse tables are
	// keyed by user_id, detail tables by show_id, and every table has
	// the same ten nullable slot columns.
	for _, t := range []string{
		"collab_browse_rec",
		"act_collab_browse_rec",
		"com_collab_browse_rec",
		"dram_collab_browse_rec",
	} {
		migrations = append(migrations, recTableDDL(t, "user_id INTEGER PRIMARY KEY"))
	}
	for _, t := range []string{
		"content_rec",
		"collab_details_rec",
		"act_collab_details_rec",
		"com_collab_details_rec",
		"dram_collab_details_rec",
	} {
		migrations = append(migrations, recTableDDL(t, "show_id TEXT PRIMARY KEY"))
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	slog.Info("database migrations completed")
	return nil
}

func recTableDDL(table, keyColumn string) string {
	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s", table, keyColumn)
	for i := 1; i <= 10; i++ {
		ddl += fmt.Sprintf(",\n\trec_%d TEXT", i)
	}
	return ddl + "\n)"
}
