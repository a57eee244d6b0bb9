package seeder

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"skillhub/internal/database"
)

// UsersSeeder inserts the sample accounts. Idempotent: an existing username
// is left untouched, so reseeding never rehashes or overwrites passwords.
type UsersSeeder struct{}

func (UsersSeeder) Name() string { return "users" }

func (UsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "username", "password_hash"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Username string
		Password string
	}{
		{Username: "logan", Password: "password1"},
		{Username: "chase", Password: "password2"},
		{Username: "lincoln", Password: "password3"},
		{Username: "boots", Password: "password4"},
	}

	for _, it := range items {
		hash, err := bcrypt.GenerateFromPassword([]byte(it.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		_, err = tx.Exec(
			ctx,
			`INSERT INTO users (id, username, password_hash) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (username) DO NOTHING`,
			it.Username,
			string(hash),
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
