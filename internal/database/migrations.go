package database

import (
	"database/sql"
	"fmt"
)

// Migrate creates the schema if it does not exist
func Migrate(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS students (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL,
			region TEXT NOT NULL DEFAULT '',
			dominant_emotion TEXT NOT NULL DEFAULT '',
			attendance REAL NOT NULL DEFAULT 0,
			performance REAL NOT NULL DEFAULT 0,
			latitude REAL,
			longitude REAL,
			scores TEXT NOT NULL DEFAULT '{}'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_students_emotion ON students(dominant_emotion)`,
		`CREATE INDEX IF NOT EXISTS idx_students_region ON students(region)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}
