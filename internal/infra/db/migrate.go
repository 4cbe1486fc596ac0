package db

import "database/sql"

// MigrateUp creates the application schema if it does not already exist.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS users (
    id              SERIAL PRIMARY KEY,
    first_name      TEXT,
    surname         TEXT,
    email           TEXT NOT NULL UNIQUE,
    hashed_password TEXT NOT NULL,
    is_superuser    BOOLEAN DEFAULT FALSE
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS recipes (
    id           SERIAL PRIMARY KEY,
    label        TEXT NOT NULL,
    source       TEXT,
    url          TEXT,
    submitter_id INTEGER REFERENCES users(id),
    created_at   TIMESTAMPTZ DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// email lookup happens on every login and token resolution
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email)`,
		// submitter filter for ownership checks and per-user listings
		`CREATE INDEX IF NOT EXISTS idx_recipes_submitter_id ON recipes(submitter_id)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// pg_trgm speeds up ILIKE label search; ignore errors when the
	// extension is unavailable or the role lacks privileges.
	_, _ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	_, _ = db.Exec(`CREATE INDEX IF NOT EXISTS idx_recipes_label_gin ON recipes USING gin(label gin_trgm_ops)`)

	return nil
}

// MigrateDown drops the application schema.
// Use with caution: this will delete all data in the affected tables.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS recipes CASCADE`,
		`DROP TABLE IF EXISTS users CASCADE`,
	}

	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
