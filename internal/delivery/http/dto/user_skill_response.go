package dto

import "github.com/google/uuid"

type UserSkillResponse struct {
	ID      uuid.UUID `json:"id"`
	UserID  uuid.UUID `json:"user_id"`
	SkillID uuid.UUID `json:"skill_id"`
}
