package seeder

import (
	"context"
	"fmt"

	"skillhub/internal/database"
)

// UserSkillsSeeder links the sample users to their skills by name, so it works
// regardless of which ids the earlier seeders generated.
type UserSkillsSeeder struct{}

func (UserSkillsSeeder) Name() string { return "user_skills" }

func (UserSkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "user_skills", "id", "user_id", "skill_id"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	pairs := []struct {
		Username string
		Skill    string
	}{
		{Username: "logan", Skill: "running"},
		{Username: "logan", Skill: "dogTricks"},
		{Username: "chase", Skill: "running"},
		{Username: "chase", Skill: "barking"},
		{Username: "chase", Skill: "meowing"},
		{Username: "lincoln", Skill: "barking"},
		{Username: "lincoln", Skill: "dogTricks"},
		{Username: "boots", Skill: "meowing"},
	}

	for _, p := range pairs {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO user_skills (id, user_id, skill_id)
			 SELECT gen_random_uuid(), u.id, s.id
			 FROM users u, skills s
			 WHERE u.username = $1 AND s.name = $2
			 ON CONFLICT (user_id, skill_id) DO NOTHING`,
			p.Username,
			p.Skill,
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
