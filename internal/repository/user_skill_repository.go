package repository

import (
	"context"

	"github.com/google/uuid"

	"skillhub/internal/database"
)

// UserSkill is one user↔skill association row.
type UserSkill struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	SkillID uuid.UUID
}

type UserSkillRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error)
	Create(ctx context.Context, us UserSkill) (UserSkill, error)
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

func (r *PostgresUserSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, skill_id FROM user_skills WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserSkill, 0)
	for rows.Next() {
		var us UserSkill
		if err := rows.Scan(&us.ID, &us.UserID, &us.SkillID); err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserSkillRepository) Create(ctx context.Context, us UserSkill) (UserSkill, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO user_skills (id, user_id, skill_id) VALUES ($1, $2, $3) RETURNING id, user_id, skill_id`,
		us.ID, us.UserID, us.SkillID,
	)

	var created UserSkill
	if err := row.Scan(&created.ID, &created.UserID, &created.SkillID); err != nil {
		if isUniqueViolation(err) {
			return UserSkill{}, ErrDuplicateUserSkill
		}
		if isForeignKeyViolation(err) {
			return UserSkill{}, ErrUnknownReference
		}
		return UserSkill{}, err
	}
	return created, nil
}

// Delete removes the association matching both ids. Deleting a row that does
// not exist is not an error.
func (r *PostgresUserSkillRepository) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM user_skills WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	return err
}
