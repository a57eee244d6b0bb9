package migration

import (
	"context"
	"database/sql"
	"errors"
)

// Reset drops every application table so the next Run recreates the schema
// from scratch. Destructive; gated behind the DB_RESET config flag and meant
// for fresh-start or fixture environments only.
func Reset(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("nil db")
	}

	_, err := db.ExecContext(ctx, `
DROP TABLE IF EXISTS user_skills;
DROP TABLE IF EXISTS users;
DROP TABLE IF EXISTS skills;
DROP TABLE IF EXISTS schema_migrations;
`)
	return err
}
